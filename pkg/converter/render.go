package converter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects the output notation
type Mode string

const (
	// ModeBasic emits parallel note and duration lists: n("...").dur("...")
	ModeBasic Mode = "basic"
	// ModeMini emits weighted mini-notation with a tempo: note("C4@1.0").cpm(480.0)
	ModeMini Mode = "mini"
)

// ErrInvalidMode is returned for unknown output modes
var ErrInvalidMode = errors.New("invalid output mode")

// Modes lists the supported output modes
func Modes() []Mode {
	return []Mode{ModeBasic, ModeMini}
}

// ParseMode parses a mode name as given on the command line or in a request
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "n", "dur":
		return ModeBasic, nil
	case "mini", "mini-notation", "mininotation", "note", "tempo":
		return ModeMini, nil
	default:
		return "", fmt.Errorf("%w: %q (want basic or mini)", ErrInvalidMode, s)
	}
}

const (
	cyclesPerBeat  = 4.0
	referenceTempo = 120.0
)

// RenderBasic renders n("<names>").dur("<beats>")
func RenderBasic(events []NoteEvent) string {
	names := make([]string, len(events))
	durs := make([]string, len(events))
	for i, d := range RoundedDurations(events) {
		names[i] = events[i].Name()
		durs[i] = FormatNumber(d)
	}
	return fmt.Sprintf(`n("%s").dur("%s")`, strings.Join(names, " "), strings.Join(durs, " "))
}

// RenderMini renders note("<name>@<beats> ...").cpm(<bpm*4>)
func RenderMini(events []NoteEvent, bpm float64) string {
	tokens := make([]string, len(events))
	for i, d := range RoundedDurations(events) {
		tokens[i] = events[i].Name() + "@" + FormatNumber(d)
	}
	return fmt.Sprintf(`note("%s").cpm(%s)`, strings.Join(tokens, " "), FormatNumber(CyclesPerMinute(bpm)))
}

// CyclesPerMinute converts a tempo to Strudel cycles per minute, one beat
// being a quarter of a cycle.
func CyclesPerMinute(bpm float64) float64 {
	return round(bpm*cyclesPerBeat, 3)
}

// SlowFactor returns the .slow() factor relative to Strudel's default tempo.
// ok is false for a zero tempo.
func SlowFactor(bpm float64) (factor float64, ok bool) {
	if bpm == 0 {
		return 0, false
	}
	return round(referenceTempo/bpm, 4), true
}

// FormatNumber prints v in its shortest form, always with a fractional part
// (1.0, 0.5, 0.333).
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// round rounds half to even on the exact binary value.
func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
