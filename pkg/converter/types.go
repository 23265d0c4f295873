// Package converter turns Standard MIDI Files into Strudel pattern code
package converter

// Kind tags a decoded MIDI message
type Kind int

const (
	KindOther Kind = iota
	KindNoteOn
	KindNoteOff
	KindTempo
)

func (k Kind) String() string {
	switch k {
	case KindNoteOn:
		return "note-on"
	case KindNoteOff:
		return "note-off"
	case KindTempo:
		return "tempo"
	default:
		return "other"
	}
}

// Message is a single timed track message
type Message struct {
	Kind                Kind
	Delta               uint32 // Ticks since the previous message in the same track
	Channel             uint8
	Pitch               uint8 // MIDI note number (0-127), note messages only
	Velocity            uint8 // Velocity (0-127), note messages only
	MicrosecondsPerBeat uint32 // Tempo messages only
}

// Track is an ordered sequence of messages with its own running clock
type Track []Message

// Song is the parsed content of a MIDI file
type Song struct {
	TicksPerBeat uint16
	Tracks       []Track
}

// NoteEvent is a paired note-on/note-off
type NoteEvent struct {
	Track    int
	Pitch    int
	Start    int64   // Absolute tick of the (last) note-on
	Duration float64 // Length in beats
}

// Name returns the pitch name of the note, e.g. C4
func (n NoteEvent) Name() string {
	return NoteName(n.Pitch)
}
