// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func run(id string, started time.Time, status types.RunStatus) types.RunRecord {
	return types.RunRecord{
		ID:         id,
		Input:      "deck.json",
		Status:     status,
		StartedAt:  started,
		FinishedAt: started.Add(250 * time.Millisecond),
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	ok := run("a", base, types.RunSucceeded)
	ok.Output = "presentation_20260501_120000.pptx"
	ok.Stats = types.RunStats{Slides: 5, ContentSlides: 4, TOC: true, ImagesInserted: 2, ImagesSkipped: 1}
	require.NoError(t, s.Record(ctx, ok))

	failed := run("b", base.Add(time.Minute), types.RunFailed)
	failed.Error = `missing required key "presentation.slides"`
	require.NoError(t, s.Record(ctx, failed))

	got, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "b", got[0].ID, "newest first")
	assert.Equal(t, types.RunFailed, got[0].Status)
	assert.Equal(t, failed.Error, got[0].Error)
	assert.Empty(t, got[0].Output)

	assert.Equal(t, ok.Output, got[1].Output)
	assert.Equal(t, ok.Stats, got[1].Stats)
	assert.True(t, ok.StartedAt.Equal(got[1].StartedAt))
	assert.Equal(t, 250*time.Millisecond, got[1].Duration())
}

func TestRecent_Limit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Record(ctx, run(id, base.Add(time.Duration(i)*time.Second), types.RunSucceeded)))
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestRecent_SubSecondOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(ctx, run("whole", base, types.RunSucceeded)))
	require.NoError(t, s.Record(ctx, run("later", base.Add(500*time.Millisecond), types.RunSucceeded)))

	got, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "later", got[0].ID)
}

func TestRecord_ReplacesSameID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	r := run("a", time.Now(), types.RunFailed)
	require.NoError(t, s.Record(ctx, r))
	r.Status = types.RunSucceeded
	require.NoError(t, s.Record(ctx, r))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.RunSucceeded, got[0].Status)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), run("a", time.Now(), types.RunSucceeded)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestExport(t *testing.T) {
	runs := []types.RunRecord{run("a", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), types.RunSucceeded)}

	var y bytes.Buffer
	require.NoError(t, ExportYAML(&y, runs))
	var fromYAML []map[string]any
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "a", fromYAML[0]["id"])
	assert.Equal(t, "succeeded", fromYAML[0]["status"])

	var j bytes.Buffer
	require.NoError(t, ExportJSON(&j, runs))
	var fromJSON []map[string]any
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "deck.json", fromJSON[0]["input"])

	j.Reset()
	require.NoError(t, ExportJSON(&j, nil))
	assert.Equal(t, "[]\n", j.String())
}
