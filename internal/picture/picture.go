// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package picture resolves image references from a deck into bytes the
// presentation writer can embed. Local paths are read from disk; http and
// https paths are downloaded with retries.
package picture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/deckgen/internal/httputil"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Errors returned by Source.Fetch.
var (
	ErrNotFound       = errors.New("file not found")
	ErrTooLarge       = errors.New("image too large")
	ErrUnsupported    = errors.New("unsupported image format")
	ErrRemoteDisabled = errors.New("remote images disabled")
)

// embeddable maps decoder format names to the MIME types a slide can hold.
// tiff and webp decode but cannot be embedded.
var embeddable = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
}

// Picture is a decoded-enough image: its bytes, format and pixel size.
type Picture struct {
	Data   []byte
	Format string
	MIME   string
	Width  int
	Height int
}

// Source fetches pictures according to an ImageConfig.
type Source struct {
	cfg    types.ImageConfig
	client *http.Client
	log    logrus.FieldLogger
}

// NewSource returns a Source. A nil client gets one with cfg.Timeout.
func NewSource(cfg types.ImageConfig, client *http.Client, log logrus.FieldLogger) *Source {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = types.DefaultImageMaxBytes
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Source{cfg: cfg, client: client, log: log}
}

// IsRemote reports whether path is an http or https URL.
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch loads and identifies the picture at path.
func (s *Source) Fetch(ctx context.Context, path string) (*Picture, error) {
	var (
		data []byte
		err  error
	)
	if IsRemote(path) {
		data, err = s.download(ctx, path)
	} else {
		data, err = s.read(path)
	}
	if err != nil {
		return nil, err
	}
	return Identify(data, path)
}

func (s *Source) read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > s.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, info.Size(), s.cfg.MaxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	return data, nil
}

func (s *Source) download(ctx context.Context, url string) ([]byte, error) {
	if !s.cfg.AllowRemote {
		return nil, ErrRemoteDisabled
	}
	header := http.Header{}
	if s.cfg.UserAgent != "" {
		header.Set("User-Agent", s.cfg.UserAgent)
	}
	if s.cfg.AuthToken != "" {
		header.Set("Authorization", "Bearer "+s.cfg.AuthToken)
	}
	data, err := httputil.GetLimited(ctx, s.client, url, header, s.cfg.MaxRetries, s.cfg.MaxBytes, s.log)
	if errors.Is(err, httputil.ErrTooLarge) {
		return nil, fmt.Errorf("%w: %v", ErrTooLarge, err)
	}
	if err != nil {
		return nil, fmt.Errorf("downloading: %w", err)
	}
	return data, nil
}

// Identify sniffs the image format from data. name is only used to
// recognise SVG, which has no raster header.
func Identify(data []byte, name string) (*Picture, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if isSVG(data, name) {
			return &Picture{Data: data, Format: "svg", MIME: embeddable["svg"]}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	mime, ok := embeddable[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
	return &Picture{
		Data:   data,
		Format: format,
		MIME:   mime,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func isSVG(data []byte, name string) bool {
	if !strings.EqualFold(filepath.Ext(name), ".svg") {
		return false
	}
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(head, []byte("<svg"))
}
