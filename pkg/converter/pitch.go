package converter

import "strconv"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the scientific pitch name of a MIDI note, e.g. 60 -> C4.
// Values outside 0-127 yield odd octaves but never panic.
func NoteName(pitch int) string {
	octave := floorDiv(pitch, 12) - 1
	return noteNames[pitch-floorDiv(pitch, 12)*12] + strconv.Itoa(octave)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
