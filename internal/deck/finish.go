// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"strconv"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/pdiddy/deckgen/internal/layout"
)

// TOCEntries returns the contents lines for the collected titles. The first
// title is the deck's opening slide and is not listed; line i names the
// (i+1)-th title.
func TOCEntries(titles []string) []string {
	if len(titles) < 2 {
		return nil
	}
	out := make([]string, 0, len(titles)-1)
	for i, t := range titles[1:] {
		out = append(out, fmt.Sprintf("%d. %s", i+1, t))
	}
	return out
}

// addTOC appends the contents slide and reports whether it was added.
func (b *Builder) addTOC() bool {
	entries := TOCEntries(b.titles)
	if len(entries) == 0 {
		b.log.Debug("table of contents needs at least two titles")
		return false
	}

	l, _ := layout.Lookup(layout.TitleAndContent)
	in := l.Instantiate(b.newSlide())
	if ph := in.Title(); ph != nil {
		setText(ph, b.tocTitle, in.FontSize(ph))
	}

	shape := in.Slide.CreateRichTextShape()
	layout.TOCRegion.Place(shape)
	for i, line := range entries {
		para := shape.GetActiveParagraph()
		if i > 0 {
			para = shape.CreateParagraph()
		}
		para.CreateTextRun(line).GetFont().
			SetName(layout.DefaultFontName).
			SetSize(layout.TOCFontSize)
	}
	return true
}

// numberSlides puts the 1-based position on every slide.
func numberSlides(pres *ppt.Presentation) {
	for i, slide := range pres.GetAllSlides() {
		shape := slide.CreateRichTextShape()
		shape.SetName("Slide Number")
		layout.SlideNumberBox.Place(shape)
		para := shape.GetActiveParagraph()
		para.GetAlignment().Horizontal = ppt.HorizontalRight
		para.CreateTextRun(strconv.Itoa(i + 1)).GetFont().
			SetName(layout.DefaultFontName).
			SetSize(layout.SlideNumberFontSize)
	}
}
