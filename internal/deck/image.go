// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"context"
	"errors"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/pkg/types"
)

var errNoPictureSource = errors.New("no picture source configured")

// addImage fetches the picture and adds it to the slide at the reference's
// geometry. Failures come back as *types.ImageError and leave the slide
// untouched.
func (b *Builder) addImage(ctx context.Context, slide *ppt.Slide, ref types.ImageRef) error {
	if b.pictures == nil {
		return &types.ImageError{Path: ref.Path, Err: errNoPictureSource}
	}
	pic, err := b.pictures.Fetch(ctx, ref.Path)
	if err != nil {
		return &types.ImageError{Path: ref.Path, Err: err}
	}

	shape := slide.CreateDrawingShape()
	shape.SetImageData(pic.Data, pic.MIME)
	shape.SetName(ref.Path)
	layout.Box{Left: ref.Left, Top: ref.Top, Width: ref.Width, Height: ref.Height}.Place(shape)
	return nil
}
