package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	NewComponentLogger(logger, "fetch").Info("downloading", Args(Year(1999), String("url", "http://x"))...)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "downloading", rec["msg"])
	assert.Equal(t, "fetch", rec[FieldComponent])
	assert.EqualValues(t, 1999, rec[FieldYear])
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewComponentLogger(nil, "x")
	logger.Error("nothing")
	assert.False(t, logger.Enabled(t.Context(), 0))
}
