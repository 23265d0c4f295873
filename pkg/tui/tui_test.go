package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/james-see/midi2strudel/pkg/converter"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model
}

func TestMenuNavigation(t *testing.T) {
	m := New(converter.DefaultOptions())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.menuIndex != 0 {
		t.Errorf("menuIndex = %d after up at top, want 0", m.menuIndex)
	}

	for i := 0; i < len(menuItems)+2; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.menuIndex != len(menuItems)-1 {
		t.Errorf("menuIndex = %d after scrolling down, want %d", m.menuIndex, len(menuItems)-1)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.menuIndex != len(menuItems)-2 {
		t.Errorf("menuIndex = %d after k, want %d", m.menuIndex, len(menuItems)-2)
	}
}

func TestMenuSelectOpensFilePicker(t *testing.T) {
	m := New(converter.DefaultOptions())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateFilePicker {
		t.Fatalf("state = %v, want StateFilePicker", m.state)
	}
	if m.selection.Mode != converter.ModeMini {
		t.Errorf("selection mode = %q, want %q", m.selection.Mode, converter.ModeMini)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateMenu {
		t.Errorf("state = %v after esc, want StateMenu", m.state)
	}
}

func TestConversionDone(t *testing.T) {
	m := New(converter.DefaultOptions())
	m.state = StateConverting
	m.selectedFile = "song.mid"

	res := &converter.Result{Pattern: `n("C4").dur("1.0")`, Notes: []converter.NoteEvent{{Pitch: 60, Duration: 1}}}
	next, _ := m.Update(conversionDoneMsg{result: res})
	m = next.(Model)

	if m.state != StateResult {
		t.Fatalf("state = %v, want StateResult", m.state)
	}
	if !strings.Contains(m.View(), `n("C4").dur("1.0")`) {
		t.Error("result view does not show the pattern")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != StateMenu || m.result != nil {
		t.Errorf("state = %v, result = %v after enter, want reset menu", m.state, m.result)
	}
}

func TestConversionFailedView(t *testing.T) {
	m := New(converter.DefaultOptions())
	next, _ := m.Update(conversionDoneMsg{err: errors.New("boom")})
	m = next.(Model)
	if !strings.Contains(m.View(), "boom") {
		t.Error("error view does not show the error")
	}
}

func TestConvert(t *testing.T) {
	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, midi.NoteOn(0, 60, 100))
	track.Add(480, midi.NoteOff(0, 60))
	track.Close(0)

	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(480)
	if err := s.Add(track); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "song.mid")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	opts := converter.DefaultOptions()
	opts.Mode = converter.ModeMini
	msg := convert(opts, path)
	if msg.err != nil {
		t.Fatalf("convert() error = %v", msg.err)
	}
	if msg.result.Pattern != `note("C4@1.0").cpm(480.0)` {
		t.Errorf("Pattern = %q", msg.result.Pattern)
	}
	if !strings.Contains(msg.report, "Tempo: 120.0 BPM") {
		t.Errorf("report = %q, want the tempo", msg.report)
	}

	if msg := convert(opts, filepath.Join(t.TempDir(), "missing.mid")); msg.err == nil {
		t.Error("convert() should fail for a missing file")
	}
}
