// opl_test_helpers_test.go - Test helpers for OPL driver behavior.

package main

import (
	"io"
	"log/slog"
	"sync"
	"testing"
)

type oplRegWrite struct {
	reg   uint16
	value uint8
}

// testOPLChip records every register write.
type testOPLChip struct {
	mutex    sync.Mutex
	regs     [OPL_NUM_REGISTERS]uint8
	log      []oplRegWrite
	initErr  error
	startErr error

	started        bool
	stopped        bool
	callback       func()
	timerFrequency int
}

func (c *testOPLChip) Init() error {
	return c.initErr
}

func (c *testOPLChip) Start(callback func(), timerFrequency int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.startErr != nil {
		return c.startErr
	}
	c.started = true
	c.callback = callback
	c.timerFrequency = timerFrequency
	return nil
}

func (c *testOPLChip) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.stopped = true
	c.callback = nil
}

func (c *testOPLChip) WriteReg(reg uint16, value uint8) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.regs[reg] = value
	c.log = append(c.log, oplRegWrite{reg, value})
}

func (c *testOPLChip) reg(reg uint16) uint8 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.regs[reg]
}

func (c *testOPLChip) clearLog() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.log = nil
}

func (c *testOPLChip) writes() []oplRegWrite {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]oplRegWrite(nil), c.log...)
}

// writesTo returns the values written to reg since the last clearLog.
func (c *testOPLChip) writesTo(reg uint16) []uint8 {
	var values []uint8
	for _, w := range c.writes() {
		if w.reg == reg {
			values = append(values, w.value)
		}
	}
	return values
}

// tick runs the timer callback once.
func (c *testOPLChip) tick() {
	c.mutex.Lock()
	callback := c.callback
	c.mutex.Unlock()
	if callback != nil {
		callback()
	}
}

type testOPLProvider struct {
	chip      *testOPLChip
	available map[OPLType]bool
	createErr error
	created   []OPLType
}

func (p *testOPLProvider) Detect(oplType OPLType) bool {
	if p.available == nil {
		return true
	}
	return p.available[oplType]
}

func (p *testOPLProvider) Create(oplType OPLType) (OPLChip, error) {
	p.created = append(p.created, oplType)
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.chip, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testOperator is a carrier or modulator with every register non-zero.
func testOperator(level uint8) OperatorDefinition {
	return OperatorDefinition{
		FreqMultMisc:   0x21,
		Level:          level,
		DecayAttack:    0xF2,
		ReleaseSustain: 0x74,
		WaveformSelect: 0x01,
	}
}

// testMelodicInstrument is an FM connection instrument: operator 0
// modulates, operator 1 carries.
func testMelodicInstrument(program uint8) InstrumentDefinition {
	def := InstrumentDefinition{ConnectionFeedback0: 0x06}
	def.Operators[0] = testOperator(0x10)
	def.Operators[0].FreqMultMisc = 0x20 | program&0x0F
	def.Operators[1] = testOperator(0x00)
	return def
}

const (
	TEST_NOTE_BASS_DRUM  = 35
	TEST_NOTE_SNARE_DRUM = 38
	TEST_NOTE_HI_HAT     = 42
	TEST_NOTE_TOM_TOM    = 45
	TEST_NOTE_CYMBAL     = 49
	TEST_RHYTHM_NOTE     = 60
)

// testInstrumentBank has distinct melodic instruments and a rhythm
// instrument of every type.
func testInstrumentBank() InstrumentBank {
	bank := InstrumentBank{
		Melodic:         make([]InstrumentDefinition, 128),
		Rhythm:          make([]InstrumentDefinition, OPL_GS_RHYTHM_LAST_NOTE-OPL_GS_RHYTHM_FIRST_NOTE+1),
		RhythmFirstNote: OPL_GS_RHYTHM_FIRST_NOTE,
		RhythmLastNote:  OPL_GS_RHYTHM_LAST_NOTE,
	}
	for i := range bank.Melodic {
		bank.Melodic[i] = testMelodicInstrument(uint8(i))
	}
	rhythm := map[uint8]OPLRhythmType{
		TEST_NOTE_BASS_DRUM:  RHYTHM_TYPE_BASS_DRUM,
		TEST_NOTE_SNARE_DRUM: RHYTHM_TYPE_SNARE_DRUM,
		TEST_NOTE_HI_HAT:     RHYTHM_TYPE_HI_HAT,
		TEST_NOTE_TOM_TOM:    RHYTHM_TYPE_TOM_TOM,
		TEST_NOTE_CYMBAL:     RHYTHM_TYPE_CYMBAL,
	}
	for note, rhythmType := range rhythm {
		def := InstrumentDefinition{RhythmType: rhythmType, RhythmNote: TEST_RHYTHM_NOTE}
		def.Operators[0] = testOperator(0x00)
		if rhythmType == RHYTHM_TYPE_BASS_DRUM {
			def.Operators[0] = testOperator(0x10)
			def.Operators[1] = testOperator(0x00)
		}
		bank.Rhythm[note-OPL_GS_RHYTHM_FIRST_NOTE] = def
	}
	return bank
}

func testDriverConfig(oplType OPLType) OPLDriverConfig {
	cfg := DefaultOPLDriverConfig()
	cfg.OPLType = oplType
	cfg.DefaultChannelVolume = 127
	cfg.Logger = quietLogger()
	bank := testInstrumentBank()
	cfg.Bank = &bank
	return cfg
}

// newTestDriver opens a driver on a recording chip. configure may adjust the
// configuration first.
func newTestDriver(t *testing.T, oplType OPLType, configure func(*OPLDriverConfig)) (*OPLDriver, *testOPLChip) {
	t.Helper()
	chip := &testOPLChip{}
	cfg := testDriverConfig(oplType)
	cfg.Provider = &testOPLProvider{chip: chip}
	if configure != nil {
		configure(&cfg)
	}
	d := NewOPLDriver(cfg)
	if err := d.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(d.Close)
	chip.clearLog()
	return d, chip
}

// findVoice returns the melodic OPL channel playing note, or -1.
func findVoice(d *OPLDriver, source, channel, note uint8) int {
	for _, v := range d.Voices() {
		if v.Rhythm == RHYTHM_TYPE_UNDEFINED && v.Active &&
			v.Source == source && v.Channel == channel && v.Note == note {
			return int(v.OPLChannel)
		}
	}
	return -1
}

func keyOn(chip *testOPLChip, oplChannel uint8) bool {
	return chip.reg(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON+oplChannelRegisterOffset(oplChannel))&OPL_MASK_KEYON != 0
}
