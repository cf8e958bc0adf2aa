// opl_notes_test.go - Tests for note handling, sustain, instruments and channel allocation.

package main

import (
	"sync"
	"testing"
)

func TestOPLNoteOnWritesInstrumentAndFrequency(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.ProgramChange(0, 3, 0)
	d.NoteOn(0, 60, 127, 0)

	if ch := findVoice(d, 0, 0, 60); ch != 0 {
		t.Fatalf("note on OPL channel %d, want 0", ch)
	}
	checks := []struct {
		reg  uint16
		want uint8
	}{
		{OPL_REGISTER_BASE_FREQMULT_MISC, 0x23},
		{OPL_REGISTER_BASE_FREQMULT_MISC + 3, 0x21},
		{OPL_REGISTER_BASE_LEVEL, 0x10},     // modulator keeps its level
		{OPL_REGISTER_BASE_LEVEL + 3, 0x00}, // carrier at full velocity and volume
		{OPL_REGISTER_BASE_DECAY_ATTACK, 0xF2},
		{OPL_REGISTER_BASE_RELEASE_SUSTAIN + 3, 0x74},
		{OPL_REGISTER_BASE_WAVEFORMSELECT, 0x01},
		{OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING, OPL_PANNING_CENTER | 0x06},
		{OPL_REGISTER_BASE_FNUMLOW, 0xAD},
		{OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON, 0x2E},
	}
	for _, c := range checks {
		if got := chip.reg(c.reg); got != c.want {
			t.Fatalf("register 0x%03X = 0x%02X, want 0x%02X", c.reg, got, c.want)
		}
	}
}

func TestOPLNoteOffClearsKeyOn(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.NoteOn(0, 60, 127, 0)
	d.NoteOff(0, 60, 64, 0)
	if got := chip.reg(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON); got != 0x0E {
		t.Fatalf("B0 = 0x%02X after note off, want 0x0E", got)
	}
	if findVoice(d, 0, 0, 60) >= 0 {
		t.Fatal("voice still active after note off")
	}
}

func TestOPLNoteOnVelocityZeroIsNoteOff(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.NoteOn(0, 60, 127, 0)
	d.NoteOn(0, 60, 0, 0)
	if keyOn(chip, 0) {
		t.Fatal("velocity 0 note on did not release the note")
	}
}

func TestOPLNoteOffOnlyMatchesSameSource(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.NoteOn(0, 60, 127, 0)
	d.NoteOff(0, 60, 0, 1)
	if !keyOn(chip, 0) {
		t.Fatal("note off from another source released the note")
	}
}

func TestOPLSustainHoldsNotes(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 127, 0)
	d.NoteOn(0, 60, 127, 0)
	d.NoteOff(0, 60, 0, 0)
	if !keyOn(chip, 0) {
		t.Fatal("sustained note released on note off")
	}
	if !d.voices[0].sustained {
		t.Fatal("voice not marked sustained")
	}

	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 0x3F, 0)
	if keyOn(chip, 0) {
		t.Fatal("sustained note still on after pedal release")
	}
}

func TestOPLAllNotesOffRespectsSustain(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 127, 0)
	d.NoteOn(0, 60, 127, 0)
	d.ControlChange(0, MIDI_CONTROLLER_ALL_NOTES_OFF, 0, 0)
	if !keyOn(chip, 0) {
		t.Fatal("all notes off released a sustained note")
	}

	d.ControlChange(0, MIDI_CONTROLLER_ALL_SOUND_OFF, 0, 0)
	if keyOn(chip, 0) {
		t.Fatal("all sound off did not release the note")
	}
}

func TestOPLModeMessagesImplyAllNotesOff(t *testing.T) {
	for _, controller := range []uint8{MIDI_CONTROLLER_OMNI_OFF, MIDI_CONTROLLER_OMNI_ON, MIDI_CONTROLLER_MONO_ON, MIDI_CONTROLLER_POLY_ON} {
		d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
		d.NoteOn(4, 60, 127, 0)
		d.ControlChange(4, controller, 0, 0)
		if keyOn(chip, 0) {
			t.Fatalf("controller 0x%02X did not release the note", controller)
		}
	}
}

func TestOPLStopAllNotesIgnoresSustain(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 127, 2)
	d.NoteOn(0, 60, 127, 2)
	d.NoteOn(1, 62, 127, 3)
	d.StopAllNotes(2, MIDI_UNMAPPED)
	if keyOn(chip, 0) {
		t.Fatal("source 2 note still on")
	}
	if !keyOn(chip, 1) {
		t.Fatal("source 3 note stopped")
	}
	d.StopAllNotes(MIDI_UNMAPPED, MIDI_UNMAPPED)
	if keyOn(chip, 1) {
		t.Fatal("source 3 note still on after stopping every source")
	}
}

func TestOPLProgramRemap(t *testing.T) {
	remap := [128]uint8{}
	for i := range remap {
		remap[i] = uint8(i)
	}
	remap[0] = 5
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, func(cfg *OPLDriverConfig) {
		cfg.ProgramRemap = &remap
	})
	d.NoteOn(0, 60, 127, 0)
	if got := chip.reg(OPL_REGISTER_BASE_FREQMULT_MISC); got != 0x25 {
		t.Fatalf("0x20 = 0x%02X, want remapped instrument 0x25", got)
	}
	if got := d.voices[0].instrumentID; got != 5 {
		t.Fatalf("instrument id = %d, want 5", got)
	}
}

func TestOPLProgramChangeWriteMode(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, func(cfg *OPLDriverConfig) {
		cfg.InstrumentWrite = INSTRUMENT_WRITE_MODE_PROGRAM_CHANGE
	})
	d.ProgramChange(0, 7, 0)
	if got := chip.reg(OPL_REGISTER_BASE_FREQMULT_MISC); got != 0x27 {
		t.Fatalf("0x20 = 0x%02X after program change, want 0x27", got)
	}

	chip.clearLog()
	d.NoteOn(0, 60, 127, 0)
	if got := chip.writesTo(OPL_REGISTER_BASE_DECAY_ATTACK); len(got) != 0 {
		t.Fatalf("note on rewrote the instrument: %v", got)
	}
	if !keyOn(chip, 1) && !keyOn(chip, 0) {
		t.Fatal("note not keyed on")
	}
}

func fourOperatorBank() *InstrumentBank {
	bank := testInstrumentBank()
	def := &bank.Melodic[9]
	def.FourOperator = true
	def.ConnectionFeedback0 = 0x06
	def.ConnectionFeedback1 = 0x00
	def.Operators[2] = testOperator(0x10)
	def.Operators[2].FreqMultMisc = 0x2A
	def.Operators[3] = testOperator(0x00)
	return &bank
}

func TestOPLFourOperatorInstrumentDropped(t *testing.T) {
	tests := []struct {
		name       string
		oplType    OPLType
		allocation ChannelAllocationMode
	}{
		{"opl2", OPL_TYPE_OPL2, ALLOCATION_MODE_DYNAMIC},
		{"dual opl2", OPL_TYPE_DUAL_OPL2, ALLOCATION_MODE_DYNAMIC},
		{"opl3 static", OPL_TYPE_OPL3, ALLOCATION_MODE_STATIC},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, chip := newTestDriver(t, tc.oplType, func(cfg *OPLDriverConfig) {
				cfg.Bank = fourOperatorBank()
				cfg.Allocation = tc.allocation
			})
			d.ProgramChange(0, 9, 0)
			chip.clearLog()
			d.NoteOn(0, 60, 127, 0)
			if findVoice(d, 0, 0, 60) >= 0 {
				t.Fatal("four operator instrument played")
			}
			if n := len(chip.writes()); n != 0 {
				t.Fatalf("dropped note wrote %d registers", n)
			}
		})
	}
}

func TestOPLFourOperatorInstrumentOnOPL3(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, func(cfg *OPLDriverConfig) {
		cfg.Bank = fourOperatorBank()
	})
	d.NoteOn(0, 50, 127, 0)
	d.ProgramChange(1, 9, 0)
	d.NoteOn(1, 60, 127, 0)

	// channel 0 is busy, so the pair is channels 1 and 4
	if ch := findVoice(d, 0, 1, 60); ch != 1 {
		t.Fatalf("four operator note on OPL channel %d, want 1", ch)
	}
	checks := []struct {
		reg  uint16
		want uint8
	}{
		{OPL3_REGISTER_CONNECTIONSELECT, 0x02},
		{OPL_REGISTER_BASE_FREQMULT_MISC + 0x09, 0x2A}, // operator 2 on channel 4
		{OPL_REGISTER_BASE_LEVEL + 0x09, 0x10},         // modulator keeps its level
		{OPL_REGISTER_BASE_LEVEL + 0x0C, 0x00},         // FM-FM carrier
		{OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING + 1, OPL_PANNING_CENTER | 0x06},
		{OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING + 4, OPL_PANNING_CENTER},
	}
	for _, c := range checks {
		if got := chip.reg(c.reg); got != c.want {
			t.Fatalf("register 0x%03X = 0x%02X, want 0x%02X", c.reg, got, c.want)
		}
	}
	if !keyOn(chip, 1) {
		t.Fatal("four operator note not keyed on")
	}

	// two operator notes fill every channel except the pair's second one
	for note := uint8(70); note < 85; note++ {
		d.NoteOn(0, note, 100, 0)
	}
	for _, v := range d.Voices() {
		if v.Active && v.Rhythm == RHYTHM_TYPE_UNDEFINED && v.OPLChannel == 4 {
			t.Fatalf("note %d placed on the second channel of a pair", v.Note)
		}
	}

	// a two operator note on the released pair turns it back into two channels
	d.NoteOff(1, 60, 0, 0)
	d.NoteOn(0, 90, 100, 0)
	if ch := findVoice(d, 0, 0, 90); ch != 1 {
		t.Fatalf("note 90 on channel %d, want 1", ch)
	}
	if got := chip.reg(OPL3_REGISTER_CONNECTIONSELECT); got != 0 {
		t.Fatalf("connection select = 0x%02X, want 0", got)
	}
	d.NoteOn(0, 91, 100, 0)
	if ch := findVoice(d, 0, 0, 91); ch != 4 {
		t.Fatalf("note 91 on channel %d, want 4", ch)
	}
}

// activeVoices counts the sounding melodic voices of a note.
func activeVoices(d *OPLDriver, source, channel, note uint8) int {
	n := 0
	for _, v := range d.Voices() {
		if v.Rhythm == RHYTHM_TYPE_UNDEFINED && v.Active &&
			v.Source == source && v.Channel == channel && v.Note == note {
			n++
		}
	}
	return n
}

func TestOPLRepeatedNoteRetriggersVoice(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL2, nil)
	d.NoteOn(0, 60, 100, 0)
	d.NoteOn(0, 60, 100, 0)
	if n := activeVoices(d, 0, 0, 60); n != 1 {
		t.Fatalf("%d voices for a repeated note, want 1", n)
	}
	if ch := findVoice(d, 0, 0, 60); ch != 0 || !keyOn(chip, 0) {
		t.Fatalf("repeated note on channel %d, want 0 keyed on", ch)
	}
	if keyOn(chip, 1) {
		t.Fatal("repeated note keyed on a second channel")
	}

	d.NoteOff(0, 60, 0, 0)
	if n := activeVoices(d, 0, 0, 60); n != 0 {
		t.Fatalf("%d voices after note off, want 0", n)
	}
}

func TestOPLSustainedNoteRetriggersVoice(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL2, nil)
	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 127, 0)
	d.NoteOn(0, 60, 100, 0)
	d.NoteOff(0, 60, 0, 0)
	d.NoteOn(0, 60, 100, 0)
	if n := activeVoices(d, 0, 0, 60); n != 1 {
		t.Fatalf("%d voices for a sustained and restruck note, want 1", n)
	}

	d.ControlChange(0, MIDI_CONTROLLER_SUSTAIN, 0, 0)
	if !keyOn(chip, 0) {
		t.Fatal("restruck note released by sustain off")
	}
	d.NoteOff(0, 60, 0, 0)
	if n := activeVoices(d, 0, 0, 60); n != 0 || keyOn(chip, 0) {
		t.Fatalf("%d voices after note off, want 0", n)
	}
}

func TestOPLDataBytesAreSevenBit(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL2, nil)
	ref, refChip := newTestDriver(t, OPL_TYPE_OPL2, nil)

	d.NoteOn(0, 60|0x80, 200, 0)
	ref.NoteOn(0, 60, 200&0x7F, 0)
	if ch := findVoice(d, 0, 0, 60); ch != 0 {
		t.Fatalf("note 188 played as channel %d, want note 60 on 0", ch)
	}
	carrier := uint16(OPL_REGISTER_BASE_LEVEL + 3)
	if got, want := chip.reg(carrier), refChip.reg(carrier); got != want {
		t.Fatalf("velocity 200 carrier level 0x%02X, want 0x%02X", got, want)
	}

	d.ControlChange(0, MIDI_CONTROLLER_VOLUME, 200, 0)
	ref.ControlChange(0, MIDI_CONTROLLER_VOLUME, 200&0x7F, 0)
	d.ControlChange(0, MIDI_CONTROLLER_EXPRESSION|0x80, 0xFF, 0)
	ref.ControlChange(0, MIDI_CONTROLLER_EXPRESSION, 0x7F, 0)
	if got, want := chip.reg(carrier), refChip.reg(carrier); got != want {
		t.Fatalf("volume 200 carrier level 0x%02X, want 0x%02X", got, want)
	}

	d.NoteOff(0, 60|0x80, 0, 0)
	if findVoice(d, 0, 0, 60) >= 0 {
		t.Fatal("note off 188 did not release note 60")
	}
}

func TestOPLDefaultChannelVolumeClamped(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL2, func(cfg *OPLDriverConfig) {
		cfg.DefaultChannelVolume = 255
	})
	_, refChip := newTestDriver(t, OPL_TYPE_OPL2, nil)
	if got := d.controls[0][0].volume; got != 127 {
		t.Fatalf("channel volume %d, want 127", got)
	}
	if got, want := chip.reg(OPL_REGISTER_BASE_LEVEL), refChip.reg(OPL_REGISTER_BASE_LEVEL); got != want {
		t.Fatalf("initial level 0x%02X, want 0x%02X", got, want)
	}
	d.NoteOn(0, 60, 127, 0)
	if findVoice(d, 0, 0, 60) != 0 {
		t.Fatal("note not played")
	}
}

func TestOPLEmptyInstrumentDropped(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL3, func(cfg *OPLDriverConfig) {
		bank := testInstrumentBank()
		bank.Melodic[2] = InstrumentDefinition{}
		cfg.Bank = &bank
	})
	d.ProgramChange(0, 2, 0)
	d.NoteOn(0, 60, 127, 0)
	if findVoice(d, 0, 0, 60) >= 0 {
		t.Fatal("empty instrument played")
	}
}

func TestOPLChannel10MelodicWithoutRhythmMode(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, func(cfg *OPLDriverConfig) {
		cfg.Channel10Melodic = true
	})
	d.ProgramChange(MIDI_RHYTHM_CHANNEL, 4, 0)
	d.NoteOn(MIDI_RHYTHM_CHANNEL, 60, 127, 0)
	if got := chip.reg(OPL_REGISTER_BASE_FREQMULT_MISC); got != 0x24 {
		t.Fatalf("0x20 = 0x%02X, want melodic program 4", got)
	}
}

func TestOPLChannel10RhythmBankWithoutRhythmMode(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.NoteOn(MIDI_RHYTHM_CHANNEL, TEST_NOTE_SNARE_DRUM, 127, 0)
	ch := findVoice(d, 0, MIDI_RHYTHM_CHANNEL, TEST_NOTE_SNARE_DRUM)
	if ch < 0 {
		t.Fatal("percussion note not played on a melodic channel")
	}
	// the rhythm instrument's note is played, not the key
	if got := d.voices[ch].oplNote; got != TEST_RHYTHM_NOTE {
		t.Fatalf("OPL note = %d, want %d", got, TEST_RHYTHM_NOTE)
	}
	if got := chip.reg(OPL_REGISTER_RHYTHM); got&0x20 != 0 {
		t.Fatal("rhythm mode bit set")
	}
}

func TestOPLDynamicAllocationPrefersReleasedVoices(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL2, nil)
	for note := uint8(60); note < 69; note++ {
		d.NoteOn(0, note, 100, 0)
	}
	for note := uint8(60); note < 69; note++ {
		if ch := findVoice(d, 0, 0, note); ch != int(note-60) {
			t.Fatalf("note %d on channel %d, want %d", note, ch, note-60)
		}
	}

	d.NoteOff(0, 62, 0, 0)
	d.NoteOff(0, 61, 0, 0)

	// longest released first
	d.NoteOn(0, 70, 100, 0)
	if ch := findVoice(d, 0, 0, 70); ch != 2 {
		t.Fatalf("note 70 on channel %d, want 2", ch)
	}
	d.NoteOn(0, 71, 100, 0)
	if ch := findVoice(d, 0, 0, 71); ch != 1 {
		t.Fatalf("note 71 on channel %d, want 1", ch)
	}

	// all busy: the oldest note is stolen
	d.NoteOn(0, 72, 100, 0)
	if ch := findVoice(d, 0, 0, 72); ch != 0 {
		t.Fatalf("note 72 on channel %d, want 0", ch)
	}
	if findVoice(d, 0, 0, 60) >= 0 {
		t.Fatal("stolen note 60 still active")
	}
}

func TestOPLDynamicAllocationStealsSameInstrument(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL2, nil)
	d.ProgramChange(1, 5, 0)
	d.NoteOn(1, 48, 100, 0)
	for note := uint8(60); note < 68; note++ {
		d.NoteOn(0, note, 100, 0)
	}
	d.NoteOn(0, 80, 100, 0)
	if ch := findVoice(d, 0, 0, 80); ch != 1 {
		t.Fatalf("note 80 on channel %d, want 1 (oldest with the same instrument)", ch)
	}
	if findVoice(d, 0, 1, 48) != 0 {
		t.Fatal("note with another instrument was stolen")
	}
}

func TestOPLStaticAllocation(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL2, func(cfg *OPLDriverConfig) {
		cfg.Allocation = ALLOCATION_MODE_STATIC
	})
	d.NoteOn(0, 60, 100, 0)
	d.NoteOn(1, 60, 100, 0)
	d.NoteOn(0, 60, 100, 1)
	if a, b, c := findVoice(d, 0, 0, 60), findVoice(d, 0, 1, 60), findVoice(d, 1, 0, 60); a != 0 || b != 1 || c != 2 {
		t.Fatalf("channels %d %d %d, want 0 1 2", a, b, c)
	}

	// a second note on the same source channel replaces the first
	d.NoteOn(0, 64, 100, 0)
	if ch := findVoice(d, 0, 0, 64); ch != 0 {
		t.Fatalf("note 64 on channel %d, want 0", ch)
	}
	if findVoice(d, 0, 0, 60) >= 0 {
		t.Fatal("replaced note still active")
	}

	// six more claims use up the chip
	for ch := uint8(2); ch < 8; ch++ {
		d.NoteOn(ch, 60, 100, 0)
	}
	d.NoteOn(8, 60, 100, 0)
	if findVoice(d, 0, 8, 60) >= 0 {
		t.Fatal("tenth source channel got a voice")
	}

	d.DeinitSource(0)
	d.NoteOn(8, 60, 100, 0)
	if ch := findVoice(d, 0, 8, 60); ch != 0 {
		t.Fatalf("after deinit note on channel %d, want 0", ch)
	}
}

func TestOPLStaticAllocationRhythmModeReleasesChannels(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL2, func(cfg *OPLDriverConfig) {
		cfg.Allocation = ALLOCATION_MODE_STATIC
	})
	for ch := uint8(0); ch < 9; ch++ {
		d.NoteOn(ch, 60, 100, 0)
	}
	d.SetRhythmMode(true)
	for ch := uint8(6); ch < 9; ch++ {
		if got := d.allocations[0][ch]; got != MIDI_UNMAPPED {
			t.Fatalf("channel %d still claims OPL channel %d", ch, got)
		}
	}
	d.NoteOn(6, 60, 100, 0)
	if findVoice(d, 0, 6, 60) >= 0 {
		t.Fatal("rhythm channel handed to a melodic note")
	}
}

func TestOPLPitchBendSB16(t *testing.T) {
	d, chip := newTestDriver(t, OPL_TYPE_OPL3, nil)
	d.NoteOn(0, 60, 127, 0)

	d.PitchBend(0, 0x7F, 0x7F, 0)
	if lo, hi := chip.reg(OPL_REGISTER_BASE_FNUMLOW), chip.reg(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON); lo != 0x00 || hi != 0x2F {
		t.Fatalf("max bend A0/B0 = 0x%02X/0x%02X, want 0x00/0x2F", lo, hi)
	}

	d.PitchBend(0, 0x00, 0x00, 0)
	if lo, hi := chip.reg(OPL_REGISTER_BASE_FNUMLOW), chip.reg(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON); lo != 0x65 || hi != 0x2E {
		t.Fatalf("min bend A0/B0 = 0x%02X/0x%02X, want 0x65/0x2E", lo, hi)
	}

	d.ControlChange(0, MIDI_CONTROLLER_RESET_ALL_CONTROLLERS, 0, 0)
	if lo := chip.reg(OPL_REGISTER_BASE_FNUMLOW); lo != 0xAD {
		t.Fatalf("A0 = 0x%02X after controller reset, want 0xAD", lo)
	}
}

func TestOPLConcurrentSources(t *testing.T) {
	d, _ := newTestDriver(t, OPL_TYPE_OPL3, nil)
	var wg sync.WaitGroup
	for s := uint8(0); s < MAXIMUM_SOURCES; s++ {
		wg.Add(1)
		go func(source uint8) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				note := uint8(40 + i%40)
				d.NoteOn(uint8(i%16), note, 100, source)
				d.ControlChange(uint8(i%16), MIDI_CONTROLLER_VOLUME, uint8(i), source)
				d.PitchBend(uint8(i%16), 0, uint8(i), source)
				d.NoteOff(uint8(i%16), note, 0, source)
			}
		}(s)
	}
	wg.Wait()
	for _, v := range d.Voices() {
		if v.Active {
			t.Fatalf("voice %d still active after every note off", v.OPLChannel)
		}
	}
}
