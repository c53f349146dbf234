package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden message")
	logger.Info("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "visible message") {
		t.Error("info message missing")
	}
}

func TestProgressDoneIncludesDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Rendered 4 images")

	out := buf.String()
	if !strings.Contains(out, "Rendered 4 images") {
		t.Errorf("message missing from output: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("duration missing from output: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext returned a different logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext returned nil for empty context")
	}
}
