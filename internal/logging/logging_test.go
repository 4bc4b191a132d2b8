package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{4, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		got := New(tt.verbosity).GetLevel()
		if got != tt.want {
			t.Errorf("New(%d).GetLevel() = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

// Detail must not decrease as the count increases. zerolog levels are
// numerically lower the more verbose they are.
func TestDetailMonotonic(t *testing.T) {
	prev := New(0).GetLevel()
	for v := 1; v <= 4; v++ {
		cur := New(v).GetLevel()
		if cur > prev {
			t.Errorf("New(%d).GetLevel() = %v is less detailed than New(%d) = %v", v, cur, v-1, prev)
		}
		prev = cur
	}
}

func TestQuietFormatIsBareMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 0)

	log.Warn().Msg("something happened")

	got := strings.TrimSpace(buf.String())
	if got != "something happened" {
		t.Errorf("verbosity 0 output = %q, want bare message", got)
	}
}

func TestQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 0)

	log.Info().Msg("not shown")

	if buf.Len() != 0 {
		t.Errorf("verbosity 0 should suppress info, got %q", buf.String())
	}
}

func TestVerboseFormatHasLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 1)

	log.Info().Msg("building image")

	got := buf.String()
	if !strings.Contains(got, "INF") || !strings.Contains(got, "building image") {
		t.Errorf("verbosity 1 output = %q, want level-prefixed message", got)
	}
}

func TestTraceEnabledAtThree(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 3)

	log.Trace().Msg("docker ps")

	if !strings.Contains(buf.String(), "docker ps") {
		t.Errorf("verbosity 3 should emit trace events, got %q", buf.String())
	}
}
