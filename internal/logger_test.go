package internal

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/hanseo/scriptmaster/testutil"
)

// captureLog redirects the package logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	origLogger := logger
	origLevel := logLevel
	logger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		logger = origLogger
		logLevel = origLevel
	})
	return &buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      LogLevel
		want       []string
		suppressed []string
	}{
		{
			name:       "default info level",
			level:      LogLevelInfo,
			want:       []string{"[ERROR]", "[WARN]", "[INFO]"},
			suppressed: []string{"[DEBUG]"},
		},
		{
			name:       "error only",
			level:      LogLevelError,
			want:       []string{"[ERROR]"},
			suppressed: []string{"[WARN]", "[INFO]", "[DEBUG]"},
		},
		{
			name:  "debug passes everything",
			level: LogLevelDebug,
			want:  []string{"[ERROR]", "[WARN]", "[INFO]", "[DEBUG]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			SetLogLevel(tt.level)

			LogError("boom")
			LogWarn("careful")
			LogInfo("fyi")
			LogDebug("trace")

			out := buf.String()
			for _, prefix := range tt.want {
				if !strings.Contains(out, prefix) {
					t.Errorf("output missing %s:\n%s", prefix, out)
				}
			}
			for _, prefix := range tt.suppressed {
				if strings.Contains(out, prefix) {
					t.Errorf("output contains suppressed %s:\n%s", prefix, out)
				}
			}
		})
	}
}

func TestSetVerbose(t *testing.T) {
	buf := captureLog(t)

	SetVerbose(true)
	LogDebug("verbose on")
	SetVerbose(false)
	LogDebug("verbose off")

	out := buf.String()
	if !strings.Contains(out, "verbose on") {
		t.Error("SetVerbose(true) did not enable debug logging")
	}
	if strings.Contains(out, "verbose off") {
		t.Error("SetVerbose(false) did not disable debug logging")
	}
}

func TestStartWarnsOnCorruptConfig(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel(LogLevelInfo)

	path := testutil.TempConfigPath(t)
	testutil.WriteConfigFile(t, path, []byte("{not json"))

	session := NewSession(NewConfigStore(path), Environment{})
	session.Start()

	if !strings.Contains(buf.String(), "[WARN]") || !strings.Contains(buf.String(), "config load failed") {
		t.Errorf("corrupt config did not produce a load warning:\n%s", buf.String())
	}
}
