package cli

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)
	logger.Info("generated bouquet", "seed", "2024-01-01")

	line := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(line) {
		t.Errorf("missing HH:MM:SS.ms timestamp: %q", line)
	}
	if !strings.Contains(line, "seed=2024-01-01") {
		t.Errorf("missing seed field: %q", line)
	}
}

func TestSetLogLevelVerbose(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("generated bouquet")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("generated bouquet")
	if !strings.Contains(buf.String(), "generated bouquet") {
		t.Errorf("debug not logged after --verbose: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Rendered 3 bouquets")

	if !regexp.MustCompile(`Rendered 3 bouquets \(\d+(\.\d+)?[µnm]?s\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q", buf.String())
	}
}

func TestPrinterStats(t *testing.T) {
	tests := []struct {
		name          string
		blooms, fauna int
		cached        bool
		want          []string
		notWant       string
	}{
		{"fresh", 24, 3, false, []string{"24 blooms", "3 visitors", "fresh"}, "cached"},
		{"cached", 22, 0, true, []string{"22 blooms", "cached"}, "visitors"},
		{"empty", 0, 0, false, []string{"fresh"}, "blooms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer{w: &buf}.stats(tt.blooms, tt.fauna, tt.cached)
			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("stats line %q lacks %q", got, w)
				}
			}
			if strings.Contains(got, tt.notWant) {
				t.Errorf("stats line %q contains %q", got, tt.notWant)
			}
			if strings.Count(got, "·") != len(tt.want)-1 {
				t.Errorf("stats line %q: wrong separators", got)
			}
		})
	}
}
