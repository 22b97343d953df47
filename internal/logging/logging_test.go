package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_DefaultsToWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info output not suppressed at default level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn output missing")
	}
}

func TestConfigure_Verbose(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	Configure(l, Flags{Verbose: true})

	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", l.GetLevel())
	}
}

func TestConfigure_QuietBeatsVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	Configure(l, Flags{Verbose: true, Quiet: true})

	if l.GetLevel() != log.ErrorLevel {
		t.Errorf("level = %v, want error (quiet wins)", l.GetLevel())
	}
}

func TestConfigure_JSONFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	Configure(l, Flags{JSON: true})

	l.Error("boom", "key", "value")
	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Errorf("output not JSON formatted: %q", buf.String())
	}
}

func TestFromContext_Fallback(t *testing.T) {
	ctx, buf := NewTestContext(Flags{Verbose: true})

	FromContext(ctx).Debug("traced")
	if !strings.Contains(buf.String(), "traced") {
		t.Error("context logger did not receive debug output")
	}

	// A bare context returns a discard logger rather than nil.
	l := FromContext(t.Context())
	if l == nil {
		t.Fatal("FromContext on bare context = nil")
	}
	l.Error("goes nowhere")
}
