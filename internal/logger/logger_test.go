package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "verbose", want: zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q): got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	log, err := New("prod", "error")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn level must be disabled")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error level must be enabled")
	}
}
