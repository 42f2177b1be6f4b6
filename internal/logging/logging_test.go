package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	logger.Info().Str("key", "value").Msg("test message")

	out := buf.String()
	assert.Contains(t, out, `"message":"test message"`)
	assert.Contains(t, out, `"key":"value"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "console", &buf)

	logger.Info().Str("key", "value").Msg("test message")

	out := buf.String()
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, "key=")
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "json", &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	var testCases = []struct {
		input  string
		expect zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ParseLevel(testCase.input), testCase.input)
	}
}
