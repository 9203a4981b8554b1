package status

import (
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "Timer: 0m 0s"},
		{999 * time.Millisecond, "Timer: 0m 0s"},
		{65 * time.Second, "Timer: 1m 5s"},
		{10*time.Minute + 59*time.Second, "Timer: 10m 59s"},
		{-time.Second, "Timer: 0m 0s"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.elapsed); got != tt.want {
			t.Errorf("FormatElapsed(%v): expected %q, got %q", tt.elapsed, tt.want, got)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(12); got != "Moves made: 12" {
		t.Errorf("Expected 'Moves made: 12', got %q", got)
	}
}
