// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/internal/layout"
	"github.com/pdiddy/deckgen/pkg/types"
)

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	require.NoError(t, setupLogging("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	require.NoError(t, setupLogging("", ""))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	assert.Error(t, setupLogging("loud", "text"))
	assert.Error(t, setupLogging("info", "xml"))
}

func TestFormatLayouts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatLayouts(&buf, layout.Catalog(), false))
	out := buf.String()
	assert.Contains(t, out, "Title Slide")
	assert.Contains(t, out, "ctrTitle, subTitle")
	assert.Contains(t, out, "Two Content")

	buf.Reset()
	require.NoError(t, formatLayouts(&buf, layout.Catalog(), true))
	var entries []layoutEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, len(layout.Catalog()))
	assert.Equal(t, "Blank", entries[layout.Blank].Name)
	assert.Empty(t, entries[layout.Blank].Placeholders)
}

func TestFormatHistory(t *testing.T) {
	var buf bytes.Buffer
	formatHistory(&buf, nil)
	assert.Equal(t, "No runs recorded.\n", buf.String())

	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	buf.Reset()
	formatHistory(&buf, []types.RunRecord{
		{ID: "a", Status: types.RunSucceeded, Output: "out.pptx", Stats: types.RunStats{Slides: 4}, StartedAt: start, FinishedAt: start.Add(time.Second)},
		{ID: "b", Status: types.RunFailed, Error: "parsing deck: boom", StartedAt: start, FinishedAt: start},
	})
	out := buf.String()
	assert.Contains(t, out, "out.pptx")
	assert.Contains(t, out, "parsing deck: boom")
	assert.Contains(t, out, "2 runs")
}
