package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		debug   bool
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, false, true},
		{"debug at info level", log.InfoLevel, true, false},
		{"debug at debug level", log.DebugLevel, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			if tt.debug {
				logger.Debug("loaded config", "path", "facetplot.toml")
			} else {
				logger.Info("loaded config", "path", "facetplot.toml")
			}
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("rendered", "kind", "facet")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("line should start with an HH:MM:SS.ms timestamp: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "kind=facet") {
		t.Errorf("structured field missing: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Reshaped 12 rows")

	if !regexp.MustCompile(`Reshaped 12 rows \(\d+(\.\d+)?[µnm]?s\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q, want message with elapsed time", buf.String())
	}
}

func TestProgressDoneQuiet(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.WarnLevel)).done("Reshaped 12 rows")
	if buf.Len() != 0 {
		t.Errorf("progress should log at info level, got %q", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	tests := []struct {
		name string
		ctx  context.Context
		want *log.Logger
	}{
		{"attached", withLogger(context.Background(), custom), custom},
		{"nil parent", withLogger(nil, custom), custom},
		{"none attached", context.Background(), log.Default()},
		{"nil context", nil, log.Default()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("loggerFromContext returned %p, want %p", got, tt.want)
			}
		})
	}
}

func TestReshapeLogsProgress(t *testing.T) {
	input := writeWide(t, t.TempDir())

	var logs, out bytes.Buffer
	c := New(&logs, LogInfo)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs([]string{"reshape", input})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "Reshaped 12 rows (") {
		t.Errorf("log output = %q, want reshape progress line", logs.String())
	}
}
