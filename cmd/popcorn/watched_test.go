package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mmcdole/popcorn/internal/domain"
)

func sampleEntries() []domain.WatchedEntry {
	return []domain.WatchedEntry{
		{ID: "tt1", Title: "Heat", Year: "1995", CriticRating: 8, UserRating: 9, RuntimeMinutes: 120},
		{ID: "tt2", Title: "Ronin", Year: "1998", CriticRating: 6, UserRating: 7, RuntimeMinutes: 90},
	}
}

func TestRenderWatched(t *testing.T) {
	var buf bytes.Buffer
	renderWatched(&buf, sampleEntries(), time.Now())

	out := buf.String()
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "Ronin")
	assert.Contains(t, out, "2 movies · IMDb 7 · you 8 · 105 min")
}

func TestRenderWatched_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderWatched(&buf, nil, time.Now())
	assert.Equal(t, "No watched movies yet.\n", buf.String())
}

func TestExportWatched_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportWatched(&buf, sampleEntries(), "json"))

	var got []domain.WatchedEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)
	assert.Contains(t, buf.String(), `"imdbID": "tt1"`)
}

func TestExportWatched_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportWatched(&buf, nil, "json"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExportWatched_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exportWatched(&buf, sampleEntries(), "yaml"))

	var got []domain.WatchedEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleEntries(), got)
	assert.Contains(t, buf.String(), "imdbID: tt1")
}

func TestExportWatched_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, exportWatched(&buf, sampleEntries(), "csv"))
}
