// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout holds the slide templates a deck can reference by index and
// the fixed geometry used to place content on them. The catalog mirrors the
// eleven layouts of the default Office theme on a 10 x 7.5 inch slide.
package layout

import (
	"errors"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ErrUnknownLayout is returned by Lookup for an index outside the catalog.
var ErrUnknownLayout = errors.New("unknown layout")

// Box is a rectangle in inches.
type Box struct {
	Left, Top, Width, Height float64
}

// Place moves and resizes a shape to the box.
func (b Box) Place(s interface {
	SetPosition(x, y int64) *ppt.BaseShape
	SetSize(w, h int64) *ppt.BaseShape
}) {
	s.SetPosition(ppt.Inch(b.Left), ppt.Inch(b.Top))
	s.SetSize(ppt.Inch(b.Width), ppt.Inch(b.Height))
}

// Placeholder describes one template region on a layout.
type Placeholder struct {
	Kind ppt.PlaceholderType
	Idx  int
	Name string
	Box  Box

	// FontSize is the default text size in points.
	FontSize int
}

// Layout is a numbered template: a name and the placeholders it puts on a
// new slide, in z-order.
type Layout struct {
	Index        int
	Name         string
	Placeholders []Placeholder
}

// Standard layout indexes referenced by the builder.
const (
	TitleSlide      = 0
	TitleAndContent = 1
	SectionHeader   = 2
	TwoContent      = 3
	Blank           = 6
)

var (
	titleBox = Box{0.5, 0.3, 9, 1.25}
	bodyBox  = Box{0.5, 1.75, 9, 4.95}
)

func title(b Box, size int) Placeholder {
	return Placeholder{Kind: ppt.PlaceholderTitle, Idx: 0, Name: "Title 1", Box: b, FontSize: size}
}

func body(idx int, b Box, size int) Placeholder {
	return Placeholder{
		Kind:     ppt.PlaceholderBody,
		Idx:      idx,
		Name:     fmt.Sprintf("Content Placeholder %d", idx+1),
		Box:      b,
		FontSize: size,
	}
}

var catalog = []Layout{
	{Index: 0, Name: "Title Slide", Placeholders: []Placeholder{
		{Kind: ppt.PlaceholderCtrTitle, Idx: 0, Name: "Title 1", Box: Box{0.75, 2.33, 8.5, 1.61}, FontSize: 44},
		{Kind: ppt.PlaceholderSubTitle, Idx: 1, Name: "Subtitle 2", Box: Box{1.5, 4.25, 7, 1.92}, FontSize: 32},
	}},
	{Index: 1, Name: "Title and Content", Placeholders: []Placeholder{
		title(titleBox, 44),
		body(1, bodyBox, 32),
	}},
	{Index: 2, Name: "Section Header", Placeholders: []Placeholder{
		title(Box{0.79, 4.82, 8.5, 1.49}, 40),
		body(1, Box{0.79, 3.18, 8.5, 1.64}, 20),
	}},
	{Index: 3, Name: "Two Content", Placeholders: []Placeholder{
		title(titleBox, 44),
		body(1, Box{0.5, 1.75, 4.42, 4.95}, 28),
		body(2, Box{5.08, 1.75, 4.42, 4.95}, 28),
	}},
	{Index: 4, Name: "Comparison", Placeholders: []Placeholder{
		title(titleBox, 44),
		body(1, Box{0.5, 1.68, 4.42, 0.7}, 24),
		body(2, Box{0.5, 2.38, 4.42, 4.32}, 24),
		body(3, Box{5.08, 1.68, 4.42, 0.7}, 24),
		body(4, Box{5.08, 2.38, 4.42, 4.32}, 24),
	}},
	{Index: 5, Name: "Title Only", Placeholders: []Placeholder{
		title(titleBox, 44),
	}},
	{Index: 6, Name: "Blank"},
	{Index: 7, Name: "Content with Caption", Placeholders: []Placeholder{
		title(Box{0.5, 0.3, 3.29, 1.27}, 20),
		body(1, Box{3.91, 0.3, 5.59, 6.4}, 32),
		body(2, Box{0.5, 1.57, 3.29, 5.13}, 14),
	}},
	{Index: 8, Name: "Picture with Caption", Placeholders: []Placeholder{
		title(Box{1.96, 5.25, 6, 0.62}, 20),
		body(1, Box{1.96, 0.67, 6, 4.5}, 32),
		body(2, Box{1.96, 5.87, 6, 0.88}, 14),
	}},
	{Index: 9, Name: "Title and Vertical Text", Placeholders: []Placeholder{
		title(titleBox, 44),
		body(1, bodyBox, 32),
	}},
	{Index: 10, Name: "Vertical Title and Text", Placeholders: []Placeholder{
		title(Box{7.25, 0.3, 2.25, 6.4}, 44),
		body(1, Box{0.5, 0.3, 6.58, 6.4}, 32),
	}},
}

// Catalog returns every layout in index order.
func Catalog() []Layout {
	out := make([]Layout, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the layout with the given index.
func Lookup(index int) (Layout, error) {
	if index < 0 || index >= len(catalog) {
		return Layout{}, fmt.Errorf("%w %d (valid 0-%d)", ErrUnknownLayout, index, len(catalog)-1)
	}
	return catalog[index], nil
}

// IsTitle reports whether a placeholder kind holds the slide title.
func IsTitle(kind ppt.PlaceholderType) bool {
	return kind == ppt.PlaceholderTitle || kind == ppt.PlaceholderCtrTitle
}

// Instance is a slide created from a layout.
type Instance struct {
	Layout       Layout
	Slide        *ppt.Slide
	Placeholders []*ppt.PlaceholderShape
}

// Instantiate adds the layout's placeholders to s, each holding one empty
// paragraph, and returns them in layout order.
func (l Layout) Instantiate(s *ppt.Slide) Instance {
	in := Instance{Layout: l, Slide: s}
	for _, spec := range l.Placeholders {
		ph := s.CreatePlaceholderShape(spec.Kind)
		ph.SetPlaceholderIndex(spec.Idx)
		ph.SetName(spec.Name)
		spec.Box.Place(ph)
		in.Placeholders = append(in.Placeholders, ph)
	}
	return in
}

// Title returns the title placeholder, or nil when the layout has none.
func (in Instance) Title() *ppt.PlaceholderShape {
	for _, ph := range in.Placeholders {
		if IsTitle(ph.GetPlaceholderType()) {
			return ph
		}
	}
	return nil
}

// FontSize returns the default text size for a placeholder of this instance,
// or BodyFontSize when ph does not belong to it.
func (in Instance) FontSize(ph *ppt.PlaceholderShape) int {
	for i, p := range in.Placeholders {
		if p == ph {
			return in.Layout.Placeholders[i].FontSize
		}
	}
	return BodyFontSize
}
