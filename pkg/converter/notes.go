package converter

import (
	"github.com/sirupsen/logrus"
)

// PairNotes matches note-on and note-off messages track by track.
//
// Each track keeps its own clock and its own table of sounding pitches.
// Tracks are handled one after another, so events are grouped by track rather
// than merged by time.
func PairNotes(song *Song) []NoteEvent {
	var events []NoteEvent
	for i, track := range song.Tracks {
		events = pairTrack(events, i, track, song.TicksPerBeat)
	}
	return events
}

func pairTrack(events []NoteEvent, index int, track Track, ticksPerBeat uint16) []NoteEvent {
	var now int64
	open := make(map[uint8]int64)

	for _, msg := range track {
		now += int64(msg.Delta)

		switch {
		case msg.Kind == KindNoteOn && msg.Velocity > 0:
			// A retrigger before release replaces the earlier onset, so the
			// first attack is lost. This keeps the long-standing output stable
			// but may not be what the music intends.
			if start, ok := open[msg.Pitch]; ok {
				logrus.Debugf("track %d: %s retriggered at tick %d, discarding onset at tick %d",
					index, NoteName(int(msg.Pitch)), now, start)
			}
			open[msg.Pitch] = now

		case msg.Kind == KindNoteOff || msg.Kind == KindNoteOn:
			start, ok := open[msg.Pitch]
			if !ok {
				logrus.Debugf("track %d: note off for unpressed note %s at tick %d",
					index, NoteName(int(msg.Pitch)), now)
				continue
			}
			delete(open, msg.Pitch)
			events = append(events, NoteEvent{
				Track:    index,
				Pitch:    int(msg.Pitch),
				Start:    start,
				Duration: float64(now-start) / float64(ticksPerBeat),
			})
		}
	}

	for pitch, start := range open {
		logrus.Debugf("track %d: missing note off for %s started at tick %d, dropped",
			index, NoteName(int(pitch)), start)
	}
	return events
}

// RoundedDurations returns the event durations rounded to 3 decimal places
func RoundedDurations(events []NoteEvent) []float64 {
	durations := make([]float64, len(events))
	for i, ev := range events {
		durations[i] = round(ev.Duration, 3)
	}
	return durations
}
