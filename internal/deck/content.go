// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"math"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/pkg/types"
)

// SubtitleTarget picks the placeholder that receives a slide's subtitle: the
// first subTitle placeholder, else the second placeholder when at least two
// exist, else nil.
func SubtitleTarget(placeholders []*ppt.PlaceholderShape) *ppt.PlaceholderShape {
	for _, ph := range placeholders {
		if ph.GetPlaceholderType() == ppt.PlaceholderSubTitle {
			return ph
		}
	}
	if len(placeholders) >= 2 {
		return placeholders[1]
	}
	return nil
}

// textBox is a region's text shape. fresh is true until the shape's initial
// empty paragraph has been used.
type textBox struct {
	shape *ppt.RichTextShape
	fresh bool
}

// next returns the paragraph for the next line of text.
func (t *textBox) next() *ppt.Paragraph {
	if t.fresh {
		t.fresh = false
		return t.shape.GetActiveParagraph()
	}
	return t.shape.CreateParagraph()
}

// mapper places content items on one slide.
type mapper struct {
	slide  *ppt.Slide
	layout int
	log    logrus.FieldLogger

	boxes         map[types.Position]*textBox
	tablesSkipped int
}

func (m *mapper) place(slideIdx int, items []types.ContentItem, pos types.Position) error {
	for _, item := range items {
		switch it := item.(type) {
		case types.TextItem:
			m.addText(pos, it)
		case types.TableItem:
			m.addTable(it)
		default:
			return &types.StructuralError{Slide: slideIdx, Reason: fmt.Sprintf("unsupported content item %T", item)}
		}
	}
	return nil
}

// box returns the region's text box, creating it on first use.
func (m *mapper) box(pos types.Position) *textBox {
	if tb, ok := m.boxes[pos]; ok {
		return tb
	}
	if m.boxes == nil {
		m.boxes = make(map[types.Position]*textBox)
	}
	shape := m.slide.CreateRichTextShape()
	layout.ContentRegion(m.layout, pos).Place(shape)
	tb := &textBox{shape: shape, fresh: true}
	m.boxes[pos] = tb
	return tb
}

func (m *mapper) addText(pos types.Position, it types.TextItem) {
	para := m.box(pos).next()
	para.GetAlignment().Level = it.Level
	run := para.CreateTextRun(it.Text)
	font := run.GetFont().SetName(layout.DefaultFontName).SetSize(layout.BodyFontSize)
	applyStyle(font, it.Style)
}

// applyStyle overrides the font fields the style sets. Bold and italic are
// only ever switched on. Sizes are rounded to whole points.
func applyStyle(font *ppt.Font, st *types.Style) {
	if st == nil {
		return
	}
	if st.Bold != nil && *st.Bold {
		font.SetBold(true)
	}
	if st.Italic != nil && *st.Italic {
		font.SetItalic(true)
	}
	if st.Size != nil {
		font.SetSize(int(math.Round(*st.Size)))
	}
	if st.Color != nil {
		font.SetColor(ppt.NewColor(st.Color.Hex()))
	}
}

func (m *mapper) addTable(t types.TableItem) {
	if t.Degenerate() {
		m.log.Debug("skipping empty table")
		m.tablesSkipped++
		return
	}

	rows, cols := len(t.Rows), len(t.Rows[0])
	shape := m.slide.CreateTableShape(rows, cols)
	layout.TableBox(rows).Place(shape)

	for r, row := range t.Rows {
		for c, text := range row {
			para := shape.GetCell(r, c).GetParagraphs()[0]
			para.GetAlignment().Horizontal = ppt.HorizontalCenter
			font := para.CreateTextRun(text).GetFont().
				SetName(layout.DefaultFontName).
				SetSize(layout.BodyFontSize)
			if t.Header && r == 0 {
				font.SetBold(true).SetSize(layout.TableHeaderFontSize)
			}
		}
	}
}
