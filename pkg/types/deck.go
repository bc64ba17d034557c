// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Deck is a fully loaded deck description. Defaults have been applied and the
// structure validated by the loader; builders treat it as read-only.
type Deck struct {
	// Title becomes the document title property.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author becomes the document creator property.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// TableOfContents requests a generated contents slide after the content slides.
	TableOfContents bool `json:"table_of_contents" yaml:"table_of_contents"`

	// Slides lists the slide descriptors in presentation order.
	Slides []Slide `json:"slides" yaml:"slides"`
}

// DefaultLayout is the layout index used when a slide descriptor omits one
// (Title and Content).
const DefaultLayout = 1

// Slide describes one content slide.
type Slide struct {
	// Layout selects a template from the layout catalog (default 1).
	Layout int `json:"layout" yaml:"layout"`

	// Title is the slide title. Empty titles are not listed in the table of contents.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Subtitle is placed by the subtitle policy when HasSubtitle is set.
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	HasSubtitle bool   `json:"-" yaml:"-"`

	// Content is placed in the full-width region.
	Content []ContentItem `json:"-" yaml:"-"`

	// LeftContent and RightContent are only used by the two-column layout.
	LeftContent  []ContentItem `json:"-" yaml:"-"`
	RightContent []ContentItem `json:"-" yaml:"-"`

	Images []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
}

// ContentKind discriminates ContentItem variants.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentTable ContentKind = "table"
)

// ContentItem is one unit of slide content. The concrete types are TextItem
// and TableItem.
type ContentItem interface {
	Kind() ContentKind
	contentItem()
}

// TextItem is a single paragraph.
type TextItem struct {
	Text string

	// Level is the paragraph indent level, 0 through 8.
	Level int

	// Style is nil when the paragraph keeps the template font.
	Style *Style
}

// Kind implements ContentItem.
func (TextItem) Kind() ContentKind { return ContentText }
func (TextItem) contentItem()      {}

// TableItem is a grid of strings. Rows[0] sets the column count.
type TableItem struct {
	Header bool
	Rows   [][]string
}

// Kind implements ContentItem.
func (TableItem) Kind() ContentKind { return ContentTable }
func (TableItem) contentItem()      {}

// Degenerate reports whether the table has no cells to draw.
func (t TableItem) Degenerate() bool {
	return len(t.Rows) == 0 || len(t.Rows[0]) == 0
}

// Style holds optional font overrides. Nil fields leave the template default.
type Style struct {
	Bold   *bool
	Italic *bool
	// Size is in points.
	Size  *float64
	Color *RGB
}

// RGB is an sRGB colour triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as six upper-case hex digits, e.g. "003366".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Default image geometry in inches.
const (
	DefaultImageLeft   = 1.0
	DefaultImageTop    = 1.0
	DefaultImageWidth  = 4.0
	DefaultImageHeight = 3.0
)

// ImageRef places a picture on a slide. Geometry is in inches.
type ImageRef struct {
	// Path is a local file path or an http(s) URL.
	Path   string  `json:"path" yaml:"path"`
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Position names a content region on a slide.
type Position string

const (
	PositionFull  Position = "full"
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)
