package converter

import (
	"errors"
	"testing"
)

func TestRenderBasic(t *testing.T) {
	events := []NoteEvent{
		{Pitch: 60, Duration: 1},
		{Pitch: 64, Duration: 0.5},
		{Pitch: 67, Duration: 1.0 / 3},
	}
	want := `n("C4 E4 G4").dur("1.0 0.5 0.333")`
	if got := RenderBasic(events); got != want {
		t.Errorf("RenderBasic() = %q, want %q", got, want)
	}
}

func TestRenderMini(t *testing.T) {
	tests := []struct {
		name     string
		events   []NoteEvent
		bpm      float64
		expected string
	}{
		{
			name:     "default tempo",
			events:   []NoteEvent{{Pitch: 60, Duration: 1}, {Pitch: 64, Duration: 0.5}},
			bpm:      120,
			expected: `note("C4@1.0 E4@0.5").cpm(480.0)`,
		},
		{
			name:     "fractional tempo",
			events:   []NoteEvent{{Pitch: 70, Duration: 2}},
			bpm:      60000000.0 / 555555,
			expected: `note("A#4@2.0").cpm(432.0)`,
		},
		{
			name:     "no notes",
			bpm:      90,
			expected: `note("").cpm(360.0)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderMini(tt.events, tt.bpm); got != tt.expected {
				t.Errorf("RenderMini() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenderBasicEmpty(t *testing.T) {
	if got := RenderBasic(nil); got != `n("").dur("")` {
		t.Errorf("RenderBasic(nil) = %q", got)
	}
}

func TestSlowFactor(t *testing.T) {
	tests := []struct {
		bpm      float64
		expected float64
		ok       bool
	}{
		{120, 1, true},
		{100, 1.2, true},
		{90, 1.3333, true},
		{0, 0, false},
	}

	for _, tt := range tests {
		factor, ok := SlowFactor(tt.bpm)
		if ok != tt.ok || factor != tt.expected {
			t.Errorf("SlowFactor(%v) = %v, %v; want %v, %v", tt.bpm, factor, ok, tt.expected, tt.ok)
		}
	}
}

func TestCyclesPerMinute(t *testing.T) {
	if got := CyclesPerMinute(120); got != 480 {
		t.Errorf("CyclesPerMinute(120) = %v, want 480", got)
	}
	if got := CyclesPerMinute(60000000.0 / 700000); got != 342.857 {
		t.Errorf("CyclesPerMinute(85.714...) = %v, want 342.857", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{0.333, "0.333"},
		{480, "480.0"},
		{1.3333, "1.3333"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.value); got != tt.expected {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		err      bool
	}{
		{"basic", ModeBasic, false},
		{"BASIC", ModeBasic, false},
		{"mini", ModeMini, false},
		{"mini-notation", ModeMini, false},
		{" tempo ", ModeMini, false},
		{"chords", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.err {
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if mode != tt.expected {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, mode, tt.expected)
			}
		})
	}
}
