// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck turns a loaded types.Deck into an in-memory presentation.
// One Builder owns the output document and the title accumulator for one
// run; Build may be called again to start a fresh document.
package deck

import (
	"context"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/internal/picture"
	"github.com/pdiddy/deckgen/pkg/types"
)

// PictureFetcher resolves an image path to embeddable bytes.
// *picture.Source implements it.
type PictureFetcher interface {
	Fetch(ctx context.Context, path string) (*picture.Picture, error)
}

// Result is the outcome of a successful build.
type Result struct {
	Presentation *ppt.Presentation

	// Titles holds the non-empty slide titles in presentation order.
	Titles []string

	Stats types.RunStats
}

// Builder maps slide descriptors onto presentation slides.
type Builder struct {
	pictures PictureFetcher
	log      logrus.FieldLogger
	tocTitle string

	pres   *ppt.Presentation
	spare  *ppt.Slide
	titles []string
	stats  types.RunStats
}

// NewBuilder returns a Builder. tocTitle is the heading of the generated
// contents slide; empty means types.DefaultTOCTitle.
func NewBuilder(pictures PictureFetcher, log logrus.FieldLogger, tocTitle string) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if tocTitle == "" {
		tocTitle = types.DefaultTOCTitle
	}
	return &Builder{pictures: pictures, log: log, tocTitle: tocTitle}
}

// Build creates one slide per descriptor, then the optional contents slide,
// then numbers every slide. Only fatal errors are returned; image failures
// are logged and counted.
func (b *Builder) Build(ctx context.Context, d *types.Deck) (*Result, error) {
	if len(d.Slides) == 0 {
		return nil, &types.StructuralError{Slide: -1, Reason: "deck has no slides"}
	}

	b.pres = ppt.New()
	b.spare = b.pres.GetActiveSlide()
	b.titles = nil
	b.stats = types.RunStats{}

	props := b.pres.GetDocumentProperties()
	props.Title = d.Title
	props.Creator = d.Author
	props.LastModifiedBy = d.Author

	for i, s := range d.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.addSlide(ctx, i, s); err != nil {
			return nil, err
		}
	}
	b.stats.ContentSlides = len(d.Slides)

	if d.TableOfContents {
		b.stats.TOC = b.addTOC()
	}
	numberSlides(b.pres)
	b.stats.Slides = b.pres.GetSlideCount()

	return &Result{Presentation: b.pres, Titles: b.titles, Stats: b.stats}, nil
}

// newSlide hands out the blank slide ppt.New creates before allocating more.
func (b *Builder) newSlide() *ppt.Slide {
	if s := b.spare; s != nil {
		b.spare = nil
		return s
	}
	return b.pres.CreateSlide()
}

func (b *Builder) addSlide(ctx context.Context, i int, s types.Slide) error {
	l, err := layout.Lookup(s.Layout)
	if err != nil {
		return &types.StructuralError{Slide: i, Reason: "resolving layout", Err: err}
	}
	in := l.Instantiate(b.newSlide())
	log := b.log.WithFields(logrus.Fields{"slide": i + 1, "layout": l.Name})

	if s.Title != "" {
		b.titles = append(b.titles, s.Title)
		if ph := in.Title(); ph != nil {
			setText(ph, s.Title, in.FontSize(ph))
		} else {
			log.Debug("layout has no title placeholder; title only listed")
		}
	}

	switch {
	case !s.HasSubtitle:
	case l.Index != layout.TitleSlide:
		log.Debug("subtitle ignored outside the title slide layout")
	default:
		if ph := SubtitleTarget(in.Placeholders); ph != nil {
			setText(ph, s.Subtitle, in.FontSize(ph))
		} else {
			log.Debug("no placeholder for subtitle")
		}
	}

	m := &mapper{slide: in.Slide, layout: l.Index, log: log}
	if err := m.place(i, s.Content, types.PositionFull); err != nil {
		return err
	}
	if l.Index == layout.TwoContent {
		if err := m.place(i, s.LeftContent, types.PositionLeft); err != nil {
			return err
		}
		if err := m.place(i, s.RightContent, types.PositionRight); err != nil {
			return err
		}
	} else if len(s.LeftContent) > 0 || len(s.RightContent) > 0 {
		log.Debug("column content ignored outside the two-column layout")
	}
	b.stats.TablesSkipped += m.tablesSkipped

	for _, ref := range s.Images {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.addImage(ctx, in.Slide, ref); err != nil {
			log.WithField("path", ref.Path).WithError(err).Warn("skipping image")
			b.stats.ImagesSkipped++
			continue
		}
		b.stats.ImagesInserted++
	}
	return nil
}

// setText replaces a placeholder's text with one run in the default font at
// the given size.
func setText(ph *ppt.PlaceholderShape, text string, size int) {
	ph.SetText(text)
	for _, el := range ph.GetActiveParagraph().GetElements() {
		if run, ok := el.(*ppt.TextRun); ok {
			run.GetFont().SetName(layout.DefaultFontName).SetSize(size)
		}
	}
}
