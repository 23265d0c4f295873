package converter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents an input file format
type Format string

const (
	FormatMIDI    Format = "midi"
	FormatUnknown Format = "unknown"
)

// ErrUnsupportedFormat is returned for input that is not a MIDI file
var ErrUnsupportedFormat = errors.New("unsupported input format")

// DetectFormat detects the format of a file based on its extension
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mid", ".midi", ".smf":
		return FormatMIDI
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent detects the format from file content
func DetectFormatFromContent(data []byte) Format {
	// MIDI file signature "MThd"
	if len(data) >= 4 && string(data[:4]) == "MThd" {
		return FormatMIDI
	}
	return FormatUnknown
}

// Result holds everything produced by one conversion
type Result struct {
	Mode            Mode
	Notes           []NoteEvent
	Durations       []float64 // Note durations in beats, rounded for display
	Tempos          []float64 // Every tempo found, in BPM
	Tempo           float64   // Tempo used for rendering
	TempoFound      bool
	CyclesPerMinute float64
	SlowFactor      *float64 // nil when the tempo is 0
	Warnings        []string
	Pattern         string
}

// Converter turns MIDI data into Strudel code
type Converter struct {
	opts   Options
	reader *MIDIReader
}

// New creates a new Converter. Invalid options fall back to the defaults for
// the offending field.
func New(opts Options) *Converter {
	def := DefaultOptions()
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		opts.Mode = def.Mode
	}
	if opts.DefaultTempo <= 0 {
		opts.DefaultTempo = def.DefaultTempo
	}
	return &Converter{opts: opts, reader: NewMIDIReader()}
}

// Options returns the options in effect
func (c *Converter) Options() Options {
	return c.opts
}

// ConvertFile reads and converts a MIDI file
func (c *Converter) ConvertFile(inputPath string) (*Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if DetectFormat(inputPath) == FormatUnknown && DetectFormatFromContent(data) == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(inputPath))
	}
	return c.Convert(data)
}

// Convert converts MIDI data
func (c *Converter) Convert(midiData []byte) (*Result, error) {
	song, err := c.reader.ParseMIDI(midiData)
	if err != nil {
		return nil, err
	}
	return c.ConvertSong(song), nil
}

// ConvertSong renders an already decoded song
func (c *Converter) ConvertSong(song *Song) *Result {
	mode, _ := ParseMode(string(c.opts.Mode))
	tempos := ExtractTempos(song)
	notes := PairNotes(song)

	res := &Result{
		Mode:       mode,
		Notes:      notes,
		Durations:  RoundedDurations(notes),
		Tempos:     tempos.BPMs,
		Tempo:      tempos.Effective(c.opts.DefaultTempo),
		TempoFound: tempos.Found(),
	}
	res.CyclesPerMinute = CyclesPerMinute(res.Tempo)
	if f, ok := SlowFactor(res.Tempo); ok {
		res.SlowFactor = &f
	}
	if w := tempos.Warning(); w != "" {
		res.Warnings = append(res.Warnings, w)
	}

	switch mode {
	case ModeMini:
		res.Pattern = RenderMini(notes, res.Tempo)
	default:
		res.Pattern = RenderBasic(notes)
	}
	return res
}

// WriteReport writes the informational lines that accompany a mini-notation
// pattern. Basic mode is tempo agnostic and has nothing to report.
func (r *Result) WriteReport(w io.Writer) error {
	if r.Mode != ModeMini {
		return nil
	}
	var b strings.Builder
	source := "from file"
	if !r.TempoFound {
		source = "default, no tempo in file"
	}
	fmt.Fprintf(&b, "Tempo: %s BPM (%s)\n", FormatNumber(round(r.Tempo, 3)), source)
	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warning)
	}
	if r.SlowFactor != nil {
		fmt.Fprintf(&b, "Slow factor: %s (alternative to .cpm: .slow(%s))\n",
			FormatNumber(*r.SlowFactor), FormatNumber(*r.SlowFactor))
	} else {
		b.WriteString("Slow factor: undefined (tempo is 0 BPM)\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// NoteNames returns the pitch names of the converted notes
func (r *Result) NoteNames() []string {
	names := make([]string, len(r.Notes))
	for i, n := range r.Notes {
		names[i] = n.Name()
	}
	return names
}
