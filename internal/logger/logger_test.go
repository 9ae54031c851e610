package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNewWithWriters(t *testing.T) {
	var console, file bytes.Buffer
	log := NewWithWriters("warn", &console, &file)

	log.Info().Msg("hidden")
	log.Warn().Str("part", "car.wheel").Msg("draw failed")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "draw failed")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "car.wheel", rec["part"])
	assert.Contains(t, rec, "time")
}

func TestSampled(t *testing.T) {
	var file bytes.Buffer
	log := Sampled(NewWithWriters("info", &bytes.Buffer{}, &file))
	for i := 0; i < 50; i++ {
		log.Warn().Msg("again")
	}
	n := strings.Count(file.String(), "again")
	assert.GreaterOrEqual(t, n, 5)
	assert.Less(t, n, 50)
}
