package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level, &bytes.Buffer{})
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestNew_WritesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Info().Str("scene", "menu").Msg("scene entered")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "scene entered")
	assert.Contains(t, out, "scene=menu")
	assert.NotContains(t, out, "hidden")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New("info", &buf), "config")

	log.Info().Msg("loaded")

	assert.Contains(t, buf.String(), "component=config")
}
