// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"errors"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		wantName string
		wantErr  bool
	}{
		{name: "title slide", index: 0, wantName: "Title Slide"},
		{name: "default content layout", index: 1, wantName: "Title and Content"},
		{name: "two columns", index: 3, wantName: "Two Content"},
		{name: "last layout", index: 10, wantName: "Vertical Title and Text"},
		{name: "negative index", index: -1, wantErr: true},
		{name: "past the end", index: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Lookup(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownLayout))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, l.Name)
			assert.Equal(t, tt.index, l.Index)
		})
	}
}

func TestCatalog_IndexesMatchPositions(t *testing.T) {
	for i, l := range Catalog() {
		assert.Equal(t, i, l.Index, "layout %q", l.Name)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Name = "changed"
	l, err := Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, "Title Slide", l.Name)
}

func TestInstantiate(t *testing.T) {
	p := ppt.New()
	slide := p.GetActiveSlide()

	l, err := Lookup(TitleSlide)
	require.NoError(t, err)
	in := l.Instantiate(slide)

	require.Len(t, in.Placeholders, 2)
	assert.Equal(t, ppt.PlaceholderCtrTitle, in.Placeholders[0].GetPlaceholderType())
	assert.Equal(t, ppt.PlaceholderSubTitle, in.Placeholders[1].GetPlaceholderType())
	assert.Equal(t, 1, in.Placeholders[1].GetPlaceholderIndex())
	assert.Equal(t, ppt.Inch(1.5), in.Placeholders[1].GetOffsetX())
	assert.Len(t, slide.GetShapes(), 2)

	require.NotNil(t, in.Title())
	assert.Same(t, in.Placeholders[0], in.Title())
	assert.Equal(t, 44, in.FontSize(in.Placeholders[0]))
	assert.Equal(t, 32, in.FontSize(in.Placeholders[1]))
}

func TestInstantiate_BlankHasNoTitle(t *testing.T) {
	p := ppt.New()
	l, err := Lookup(Blank)
	require.NoError(t, err)

	in := l.Instantiate(p.GetActiveSlide())
	assert.Empty(t, in.Placeholders)
	assert.Nil(t, in.Title())
}

func TestContentRegion(t *testing.T) {
	tests := []struct {
		name   string
		layout int
		pos    types.Position
		want   Box
	}{
		{name: "two column left", layout: TwoContent, pos: types.PositionLeft, want: LeftRegion},
		{name: "two column right", layout: TwoContent, pos: types.PositionRight, want: RightRegion},
		{name: "two column plain content", layout: TwoContent, pos: types.PositionFull, want: RightRegion},
		{name: "single column ignores left", layout: TitleAndContent, pos: types.PositionLeft, want: FullRegion},
		{name: "single column full", layout: TitleAndContent, pos: types.PositionFull, want: FullRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentRegion(tt.layout, tt.pos))
		})
	}
}

func TestColumnsAreDisjoint(t *testing.T) {
	assert.Less(t, LeftRegion.Left+LeftRegion.Width, RightRegion.Left)
}

func TestTableBox(t *testing.T) {
	b := TableBox(4)
	assert.Equal(t, 1.0, b.Left)
	assert.Equal(t, 2.0, b.Top)
	assert.Equal(t, 8.0, b.Width)
	assert.InDelta(t, 2.4, b.Height, 1e-9)
}
