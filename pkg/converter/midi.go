package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrUnsupportedTimeFormat is returned for files that do not use metric ticks
var ErrUnsupportedTimeFormat = errors.New("unsupported MIDI time format")

// MIDIReader handles MIDI file parsing
type MIDIReader struct{}

// NewMIDIReader creates a new MIDI reader
func NewMIDIReader() *MIDIReader {
	return &MIDIReader{}
}

// ParseMIDIFile reads a MIDI file and decodes its tracks
func (m *MIDIReader) ParseMIDIFile(filename string) (*Song, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file: %w", err)
	}
	return m.ParseMIDI(data)
}

// ParseMIDI parses MIDI data and decodes its tracks
func (m *MIDIReader) ParseMIDI(data []byte) (*Song, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}

	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("failed to parse MIDI: %w: %v", ErrUnsupportedTimeFormat, s.TimeFormat)
	}
	if mt.Resolution() == 0 {
		return nil, fmt.Errorf("failed to parse MIDI: %w: zero ticks per beat", ErrUnsupportedTimeFormat)
	}

	song := &Song{
		TicksPerBeat: mt.Resolution(),
		Tracks:       make([]Track, 0, len(s.Tracks)),
	}
	for _, track := range s.Tracks {
		decoded := make(Track, 0, len(track))
		for _, ev := range track {
			decoded = append(decoded, decodeMessage(ev.Delta, ev.Message))
		}
		song.Tracks = append(song.Tracks, decoded)
	}
	return song, nil
}

func decodeMessage(delta uint32, msg smf.Message) Message {
	m := Message{Kind: KindOther, Delta: delta}

	// Tempo meta message (FF 51 03 tt tt tt)
	if len(msg) >= 6 && msg[0] == 0xFF && msg[1] == 0x51 && msg[2] == 0x03 {
		m.Kind = KindTempo
		m.MicrosecondsPerBeat = uint32(msg[3])<<16 | uint32(msg[4])<<8 | uint32(msg[5])
		return m
	}

	// Note On: 0x9n nn vv, Note Off: 0x8n nn vv
	if len(msg) >= 3 {
		switch msg[0] & 0xF0 {
		case 0x90:
			m.Kind = KindNoteOn
		case 0x80:
			m.Kind = KindNoteOff
		default:
			return m
		}
		m.Channel = msg[0] & 0x0F
		m.Pitch = msg[1]
		m.Velocity = msg[2]
	}
	return m
}
