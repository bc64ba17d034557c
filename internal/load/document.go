// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package load

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pdiddy/deckgen/pkg/types"
)

// maxLevel is the deepest paragraph level OOXML allows.
const maxLevel = 8

// The raw types mirror the document keys. Pointer fields distinguish an
// absent key from a zero value.

type document struct {
	Presentation *rawDeck `json:"presentation" yaml:"presentation"`
}

type rawDeck struct {
	Title           *string     `json:"title" yaml:"title"`
	Author          *string     `json:"author" yaml:"author"`
	TableOfContents *bool       `json:"table_of_contents" yaml:"table_of_contents"`
	Slides          *[]rawSlide `json:"slides" yaml:"slides"`
}

type rawSlide struct {
	Layout       *int       `json:"layout" yaml:"layout"`
	Title        *string    `json:"title" yaml:"title"`
	Subtitle     *string    `json:"subtitle" yaml:"subtitle"`
	Content      []rawItem  `json:"content" yaml:"content"`
	LeftContent  []rawItem  `json:"left_content" yaml:"left_content"`
	RightContent []rawItem  `json:"right_content" yaml:"right_content"`
	Images       []rawImage `json:"images" yaml:"images"`
}

type rawItem struct {
	Type   *string   `json:"type" yaml:"type"`
	Text   *string   `json:"text" yaml:"text"`
	Level  *int      `json:"level" yaml:"level"`
	Style  *rawStyle `json:"style" yaml:"style"`
	Header *bool     `json:"header" yaml:"header"`
	Data   *[][]any  `json:"data" yaml:"data"`
}

type rawStyle struct {
	Bold   *bool    `json:"bold" yaml:"bold"`
	Italic *bool    `json:"italic" yaml:"italic"`
	Size   *float64 `json:"size" yaml:"size"`
	Color  *[]int   `json:"color" yaml:"color"`
}

type rawImage struct {
	Path   *string  `json:"path" yaml:"path"`
	Left   *float64 `json:"left" yaml:"left"`
	Top    *float64 `json:"top" yaml:"top"`
	Width  *float64 `json:"width" yaml:"width"`
	Height *float64 `json:"height" yaml:"height"`
}

func (d document) deck() (*types.Deck, error) {
	if d.Presentation == nil {
		return nil, &types.MissingKeyError{Key: "presentation"}
	}
	p := d.Presentation
	if p.Slides == nil {
		return nil, &types.MissingKeyError{Key: "presentation.slides"}
	}
	if len(*p.Slides) == 0 {
		return nil, &types.StructuralError{Slide: -1, Reason: "deck has no slides"}
	}

	deck := &types.Deck{
		Title:           deref(p.Title, ""),
		Author:          deref(p.Author, ""),
		TableOfContents: deref(p.TableOfContents, false),
		Slides:          make([]types.Slide, 0, len(*p.Slides)),
	}
	for i, rs := range *p.Slides {
		s, err := rs.slide(i)
		if err != nil {
			return nil, err
		}
		deck.Slides = append(deck.Slides, s)
	}
	return deck, nil
}

func (rs rawSlide) slide(i int) (types.Slide, error) {
	key := fmt.Sprintf("presentation.slides[%d]", i)
	s := types.Slide{
		Layout:      deref(rs.Layout, types.DefaultLayout),
		Title:       deref(rs.Title, ""),
		Subtitle:    deref(rs.Subtitle, ""),
		HasSubtitle: rs.Subtitle != nil,
	}

	var err error
	if s.Content, err = items(rs.Content, i, key+".content"); err != nil {
		return s, err
	}
	if s.LeftContent, err = items(rs.LeftContent, i, key+".left_content"); err != nil {
		return s, err
	}
	if s.RightContent, err = items(rs.RightContent, i, key+".right_content"); err != nil {
		return s, err
	}

	for j, ri := range rs.Images {
		if ri.Path == nil {
			return s, &types.MissingKeyError{Key: fmt.Sprintf("%s.images[%d].path", key, j)}
		}
		s.Images = append(s.Images, types.ImageRef{
			Path:   *ri.Path,
			Left:   deref(ri.Left, types.DefaultImageLeft),
			Top:    deref(ri.Top, types.DefaultImageTop),
			Width:  deref(ri.Width, types.DefaultImageWidth),
			Height: deref(ri.Height, types.DefaultImageHeight),
		})
	}
	return s, nil
}

func items(raw []rawItem, slide int, key string) ([]types.ContentItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]types.ContentItem, 0, len(raw))
	for j, ri := range raw {
		item, err := ri.item(slide, fmt.Sprintf("%s[%d]", key, j))
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (ri rawItem) item(slide int, key string) (types.ContentItem, error) {
	if ri.Type == nil {
		return nil, &types.MissingKeyError{Key: key + ".type"}
	}
	switch types.ContentKind(*ri.Type) {
	case types.ContentText:
		return ri.text(slide, key)
	case types.ContentTable:
		return ri.table(slide, key)
	default:
		return nil, &types.StructuralError{Slide: slide, Reason: fmt.Sprintf("%s: unknown content type %q", key, *ri.Type)}
	}
}

func (ri rawItem) text(slide int, key string) (types.ContentItem, error) {
	if ri.Text == nil {
		return nil, &types.MissingKeyError{Key: key + ".text"}
	}
	t := types.TextItem{Text: *ri.Text, Level: deref(ri.Level, 0)}
	if t.Level < 0 || t.Level > maxLevel {
		return nil, &types.StructuralError{Slide: slide, Reason: fmt.Sprintf("%s: level %d outside 0-%d", key, t.Level, maxLevel)}
	}
	if ri.Style != nil {
		st, err := ri.Style.style()
		if err != nil {
			return nil, &types.StructuralError{Slide: slide, Reason: key + ".style", Err: err}
		}
		t.Style = st
	}
	return t, nil
}

func (rs rawStyle) style() (*types.Style, error) {
	st := &types.Style{Bold: rs.Bold, Italic: rs.Italic}
	if rs.Size != nil {
		if *rs.Size <= 0 || math.IsNaN(*rs.Size) {
			return nil, fmt.Errorf("size %v must be positive", *rs.Size)
		}
		st.Size = rs.Size
	}
	if rs.Color != nil {
		c := *rs.Color
		if len(c) != 3 {
			return nil, fmt.Errorf("color needs 3 components, got %d", len(c))
		}
		for _, v := range c {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("color component %d outside 0-255", v)
			}
		}
		st.Color = &types.RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
	}
	return st, nil
}

func (ri rawItem) table(slide int, key string) (types.ContentItem, error) {
	if ri.Data == nil {
		return nil, &types.MissingKeyError{Key: key + ".data"}
	}
	t := types.TableItem{Header: deref(ri.Header, false)}
	data := *ri.Data
	if len(data) == 0 || len(data[0]) == 0 {
		return t, nil
	}

	cols := len(data[0])
	t.Rows = make([][]string, len(data))
	for r, row := range data {
		if len(row) != cols {
			return nil, &types.StructuralError{
				Slide:  slide,
				Reason: fmt.Sprintf("%s.data[%d]: has %d cells, row 0 has %d", key, r, len(row), cols),
			}
		}
		t.Rows[r] = make([]string, cols)
		for c, v := range row {
			t.Rows[r][c] = cellString(v)
		}
	}
	return t, nil
}

// cellString renders a decoded cell value. Numbers keep their source text
// for JSON input.
func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
