package converter

import "fmt"

// DefaultTempo is used when a file carries no tempo message
const DefaultTempo = 120.0

// TempoState holds every tempo found in a song, in file order
type TempoState struct {
	BPMs []float64
}

// ExtractTempos scans all tracks in order and converts each tempo message to BPM.
func ExtractTempos(song *Song) TempoState {
	var state TempoState
	for _, track := range song.Tracks {
		for _, msg := range track {
			if msg.Kind != KindTempo {
				continue
			}
			state.BPMs = append(state.BPMs, tempoToBPM(msg.MicrosecondsPerBeat))
		}
	}
	return state
}

// A zero tempo is malformed but parseable; keep it as 0 BPM so renderers can
// skip anything that would divide by it.
func tempoToBPM(microsecondsPerBeat uint32) float64 {
	if microsecondsPerBeat == 0 {
		return 0
	}
	return 60000000.0 / float64(microsecondsPerBeat)
}

// Effective returns the tempo used for rendering: the first one found, or def.
func (t TempoState) Effective(def float64) float64 {
	if len(t.BPMs) == 0 {
		return def
	}
	return t.BPMs[0]
}

// Found reports whether the song declared any tempo at all
func (t TempoState) Found() bool {
	return len(t.BPMs) > 0
}

// Warning describes ignored tempo changes. Empty when there are none.
func (t TempoState) Warning() string {
	if len(t.BPMs) <= 1 {
		return ""
	}
	return fmt.Sprintf("found %d tempo changes, using the first one (%s BPM); later changes are ignored",
		len(t.BPMs), FormatNumber(round(t.BPMs[0], 3)))
}
