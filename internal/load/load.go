// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package load reads deck documents from disk and turns them into validated
// types.Deck values. JSON is the primary format; .yaml and .yml files are
// decoded with the same key names.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Format selects the document decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates the deck document at path.
func Load(path string) (*types.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.ParseError{Path: path, Err: err}
	}
	return parse(data, FormatFor(path), path)
}

// Parse decodes and validates an in-memory deck document.
func Parse(data []byte, format Format) (*types.Deck, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, path string) (*types.Deck, error) {
	var doc document
	if err := decode(data, format, &doc); err != nil {
		return nil, &types.ParseError{Path: path, Err: err}
	}
	return doc.deck()
}

func decode(data []byte, format Format, doc *document) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(doc); err != nil {
			return err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return errors.New("unexpected data after top-level object")
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
