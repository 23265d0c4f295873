package converter

import (
	"regexp"
	"testing"
)

func TestNoteName(t *testing.T) {
	tests := []struct {
		pitch    int
		expected string
	}{
		{0, "C-1"},
		{11, "B-1"},
		{12, "C0"},
		{21, "A0"},
		{60, "C4"},
		{61, "C#4"},
		{64, "E4"},
		{69, "A4"},
		{127, "G9"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := NoteName(tt.pitch); got != tt.expected {
				t.Errorf("NoteName(%d) = %q, want %q", tt.pitch, got, tt.expected)
			}
		})
	}
}

func TestNoteNameFullRange(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-G]#?-?\d+$`)
	for pitch := 0; pitch <= 127; pitch++ {
		name := NoteName(pitch)
		if !pattern.MatchString(name) {
			t.Errorf("NoteName(%d) = %q, does not look like a pitch name", pitch, name)
		}
		if again := NoteName(pitch); again != name {
			t.Errorf("NoteName(%d) not stable: %q then %q", pitch, name, again)
		}
	}
}

func TestNoteNameOutOfRange(t *testing.T) {
	if got := NoteName(-1); got != "B-2" {
		t.Errorf("NoteName(-1) = %q, want %q", got, "B-2")
	}
	if got := NoteName(200); got != "G#15" {
		t.Errorf("NoteName(200) = %q, want %q", got, "G#15")
	}
}
