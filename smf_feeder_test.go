// smf_feeder_test.go - Tests for MIDI file loading and scheduled playback.

package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// recordingClock remembers every Advance call.
type recordingClock struct {
	advances []time.Duration
	total    time.Duration
}

func (c *recordingClock) Advance(d time.Duration) {
	c.advances = append(c.advances, d)
	c.total += d
}

func writeTestSMF(t *testing.T, bpm float64) string {
	t.Helper()
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(96)

	var conductor smf.Track
	conductor.Add(0, smf.MetaTempo(bpm))
	conductor.Close(0)

	var notes smf.Track
	notes.Add(0, midi.ProgramChange(0, 19))
	notes.Add(0, midi.NoteOn(0, 60, 100))
	notes.Add(96, midi.NoteOff(0, 60))
	notes.Close(0)

	for _, tr := range []smf.Track{conductor, notes} {
		if err := s.Add(tr); err != nil {
			t.Fatalf("add track: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "test.mid")
	if err := s.WriteFile(path); err != nil {
		t.Fatalf("write smf: %v", err)
	}
	return path
}

func TestLoadSMFEvents(t *testing.T) {
	tests := []struct {
		bpm     float64
		wantEnd time.Duration
	}{
		{120, 500 * time.Millisecond},
		{60, time.Second},
	}
	for _, tc := range tests {
		events, err := loadSMFEvents(writeTestSMF(t, tc.bpm), 2)
		if err != nil {
			t.Fatalf("loadSMFEvents: %v", err)
		}
		// program, note on, note off, end marker
		if len(events) != 4 {
			t.Fatalf("%v bpm: got %d events, want 4", tc.bpm, len(events))
		}
		var ch, key, vel uint8
		if !events[1].Message.GetNoteOn(&ch, &key, &vel) || key != 60 || events[1].At != 0 {
			t.Fatalf("event 1 = %v at %v, want note on 60 at 0", events[1].Message, events[1].At)
		}
		if events[2].At != tc.wantEnd {
			t.Fatalf("%v bpm: note off at %v, want %v", tc.bpm, events[2].At, tc.wantEnd)
		}
		end := events[3]
		if end.Message != nil || end.At != tc.wantEnd {
			t.Fatalf("end marker = %+v", end)
		}
		for _, ev := range events {
			if ev.Source != 2 {
				t.Fatalf("event for source %d, want 2", ev.Source)
			}
		}
	}
}

func TestLoadSMFEventsMissingFile(t *testing.T) {
	if _, err := loadSMFEvents(filepath.Join(t.TempDir(), "none.mid"), 0); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSMFToMIDIMessageSysEx(t *testing.T) {
	// SMF stores F0 <length> <data> F7
	raw := smf.Message{0xF0, 0x05, 0x7E, 0x7F, 0x09, 0x01, 0xF7}
	got := smfToMIDIMessage(raw)
	want := midi.Message{0xF0, 0x7E, 0x7F, 0x09, 0x01, 0xF7}
	if !bytes.Equal(got, want) {
		t.Fatalf("sysex = % X, want % X", []byte(got), []byte(want))
	}

	noteOn := smf.Message{0x91, 0x40, 0x7F}
	if got := smfToMIDIMessage(noteOn); !bytes.Equal(got, []byte(noteOn)) {
		t.Fatalf("note on changed to % X", []byte(got))
	}
}

func TestMergeSchedules(t *testing.T) {
	a := []scheduledEvent{
		{At: 0, Source: 0, Message: midi.NoteOn(0, 60, 100)},
		{At: 10 * time.Millisecond, Source: 0},
	}
	b := []scheduledEvent{
		{At: 0, Source: 1, Message: midi.NoteOn(0, 62, 100)},
		{At: 5 * time.Millisecond, Source: 1},
	}
	merged := mergeSchedules(a, b)
	wantSources := []int{0, 1, 1, 0}
	wantAt := []time.Duration{0, 0, 5 * time.Millisecond, 10 * time.Millisecond}
	if len(merged) != 4 {
		t.Fatalf("got %d events, want 4", len(merged))
	}
	for i := range merged {
		if merged[i].Source != wantSources[i] || merged[i].At != wantAt[i] {
			t.Fatalf("event %d = source %d at %v, want source %d at %v",
				i, merged[i].Source, merged[i].At, wantSources[i], wantAt[i])
		}
	}
}

func TestPlaySchedule(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	clock := &recordingClock{}
	events := []scheduledEvent{
		{At: 0, Source: 1, Message: midi.NoteOn(0, 60, 100)},
		{At: 0, Source: 0, Message: midi.NoteOn(0, 64, 100)},
		{At: 100 * time.Millisecond, Source: 0, Message: midi.NoteOff(0, 64)},
		{At: 250 * time.Millisecond, Source: 1},
	}

	end := playSchedule(d, clock, events)
	if end != 250*time.Millisecond || clock.total != 250*time.Millisecond {
		t.Fatalf("played to %v, clock at %v, want 250ms", end, clock.total)
	}
	if len(clock.advances) != 2 {
		t.Fatalf("clock advanced %d times, want 2", len(clock.advances))
	}
	if findVoice(d, 0, 0, 64) >= 0 {
		t.Fatal("source 0 note still playing after note off")
	}
	// the end marker releases source 1
	for ch := uint8(0); ch < 18; ch++ {
		if keyOn(chip, ch) {
			t.Fatalf("channel %d still keyed on", ch)
		}
	}
}
