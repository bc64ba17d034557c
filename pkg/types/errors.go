// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below.
var (
	ErrParse      = errors.New("parse error")
	ErrMissingKey = errors.New("missing key")
	ErrStructural = errors.New("structural error")
	ErrImage      = errors.New("image error")
)

// ParseError reports an unreadable or malformed deck document. Fatal.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing deck: %v", e.Err)
	}
	return fmt.Sprintf("parsing deck %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// MissingKeyError reports a required key that is absent. Key is the dotted
// document path, e.g. "presentation.slides[1].content[0].text". Fatal.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key %q", e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// StructuralError reports a document that parses but cannot be built: an
// unknown layout, a ragged table, an out-of-range level or colour. Slide is
// the 0-based slide index, or -1 when the error is not tied to a slide. Fatal.
type StructuralError struct {
	Slide  int
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Slide < 0 {
		return msg
	}
	return fmt.Sprintf("slide %d: %s", e.Slide+1, msg)
}

func (e *StructuralError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStructural}
	}
	return []error{ErrStructural, e.Err}
}

// ImageError reports a picture that could not be inserted. It is logged and
// the slide continues without the picture.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() []error { return []error{ErrImage, e.Err} }
