package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{UnknownLevel, "UNKNOWN"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{Level(99), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"Info", InfoLevel},
		{"warn", WarnLevel},
		{"eRRor", ErrorLevel},
		{"fatal", FatalLevel},
		{"", UnknownLevel},
		{"verbose", UnknownLevel},
		{"unknown", UnknownLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Conversions must be inverse on the canonical spellings.
func TestParseLevel_RoundTrip(t *testing.T) {
	for _, level := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		if got := ParseLevel(level.String()); got != level {
			t.Errorf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{UnknownLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("expected %v < %v", order[i-1], order[i])
		}
	}
}
