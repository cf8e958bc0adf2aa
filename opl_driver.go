// opl_driver.go - Multi-source MIDI to OPL FM driver: configuration and lifecycle.

/*
 The driver translates MIDI channel messages from up to MAXIMUM_SOURCES
 independent streams into OPL register writes. Each source keeps its own
 controller state per MIDI channel; OPL voices are shared between sources
 and allocated dynamically (least recently used) or statically (one voice
 per source channel).

 Locks: allocMu guards the static allocation table, notesMu guards voices,
 controller state and sources. allocMu is always taken before notesMu.
 Functions ending in Locked expect notesMu to be held.
*/

package main

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyOpen        = errors.New("opl driver already open")
	ErrDeviceNotAvailable = errors.New("opl chip not available")
	ErrCannotConnect      = errors.New("cannot connect to opl chip")
)

// OPLDriverConfig configures an OPLDriver. Use DefaultOPLDriverConfig as a base.
type OPLDriverConfig struct {
	OPLType        OPLType
	Provider       OPLChipProvider
	TimerFrequency int

	Accuracy        AccuracyMode
	Allocation      ChannelAllocationMode
	InstrumentWrite InstrumentWriteMode

	RhythmModeIgnoreNoteOffs bool
	Channel10Melodic         bool
	DefaultChannelVolume     uint8

	ModulationDepth ModulationDepth
	VibratoDepth    ModulationDepth
	NoteSelect      uint8

	// ProgramRemap maps incoming program numbers before melodic bank lookup.
	ProgramRemap *[128]uint8
	// Bank replaces the built-in instruments when set.
	Bank *InstrumentBank
	// ControllerDefaults are applied on open and source deinitialization.
	ControllerDefaults *ControllerDefaults

	UserVolumeScaling bool
	Logger            *slog.Logger
}

func DefaultOPLDriverConfig() OPLDriverConfig {
	return OPLDriverConfig{
		OPLType:         OPL_TYPE_OPL3,
		TimerFrequency:  OPL_DEFAULT_TIMER_FREQUENCY,
		Accuracy:        ACCURACY_MODE_SB16_WIN95,
		Allocation:      ALLOCATION_MODE_DYNAMIC,
		InstrumentWrite: INSTRUMENT_WRITE_MODE_NOTE_ON,
		ModulationDepth: MODULATION_DEPTH_HIGH,
		VibratoDepth:    MODULATION_DEPTH_HIGH,
	}
}

// oplVoice is one OPL channel (melodic) or rhythm instrument slot.
type oplVoice struct {
	active    bool
	sustained bool
	note      uint8
	velocity  uint8
	channel   uint8 // MIDI channel, 0xFF if never used
	source    uint8
	oplNote   uint8

	oplFrequency uint16
	counter      uint32

	instrumentID uint8
	instrument   *InstrumentDefinition
	// claimed by a source channel in static allocation mode
	allocated bool
}

func (v *oplVoice) init() {
	*v = oplVoice{channel: MIDI_UNMAPPED, source: MIDI_UNMAPPED}
}

type OPLDriver struct {
	cfg      OPLDriverConfig
	logger   *slog.Logger
	provider OPLChipProvider
	accuracy accuracyModel
	bank     InstrumentBank
	defaults ControllerDefaults

	openMu sync.Mutex
	isOpen bool
	chip   OPLChip
	regs   *OPLRegisterWriter

	allocMu sync.Mutex
	// static allocation: source/channel to OPL channel, 0xFF if none
	allocations [MAXIMUM_SOURCES][MIDI_CHANNEL_COUNT]uint8

	notesMu         sync.Mutex
	controls        [MAXIMUM_SOURCES][MIDI_CHANNEL_COUNT]channelControl
	voices          [OPL3_NUM_CHANNELS]oplVoice
	rhythmVoices    [OPL_NUM_RHYTHM_INSTRUMENTS]oplVoice
	melodicChannels []uint8
	rhythmMode      bool
	noteCounter     uint32
	fourOpPairs     uint8 // OPL3 connection select bits
	sources         [MAXIMUM_SOURCES]midiSource
	userMusicVolume uint16
	userSfxVolume   uint16
	userMute        bool
	userScaling     bool
	timerCallback   func()
	timerRate       int // microseconds per timer tick
}

// NewOPLDriver creates a closed driver.
func NewOPLDriver(cfg OPLDriverConfig) *OPLDriver {
	if cfg.TimerFrequency <= 0 {
		cfg.TimerFrequency = OPL_DEFAULT_TIMER_FREQUENCY
	}
	if cfg.NoteSelect > 1 {
		cfg.NoteSelect = 1
	}
	cfg.DefaultChannelVolume = min(cfg.DefaultChannelVolume, 0x7F)
	d := &OPLDriver{
		cfg:             cfg,
		logger:          cfg.Logger,
		provider:        cfg.Provider,
		accuracy:        newAccuracyModel(cfg.Accuracy),
		bank:            DefaultInstrumentBank(),
		defaults:        UnsetControllerDefaults(),
		noteCounter:     1,
		userMusicVolume: MIDI_USER_VOLUME_DEFAULT,
		userSfxVolume:   MIDI_USER_VOLUME_DEFAULT,
		userScaling:     cfg.UserVolumeScaling,
		timerRate:       1000000 / cfg.TimerFrequency,
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if cfg.Bank != nil {
		if err := cfg.Bank.validate(); err != nil {
			d.logger.Warn("ignoring instrument bank", "err", err)
		} else {
			d.bank = *cfg.Bank
		}
	}
	if cfg.ControllerDefaults != nil {
		d.defaults = *cfg.ControllerDefaults
	}
	for i := range d.voices {
		d.voices[i].init()
	}
	for i := range d.rhythmVoices {
		d.rhythmVoices[i].init()
	}
	for s := range d.controls {
		for ch := range d.controls[s] {
			d.controls[s][ch].init()
		}
	}
	for s := range d.sources {
		d.sources[s].init()
	}
	d.clearAllocations()
	d.determineMelodicChannelsLocked()
	return d
}

// Open detects and connects the chip, applies channel and controller
// defaults, programs the chip and starts the timer. On error the driver
// stays closed.
func (d *OPLDriver) Open() error {
	d.openMu.Lock()
	defer d.openMu.Unlock()
	if d.isOpen {
		return ErrAlreadyOpen
	}
	if d.provider == nil {
		return ErrDeviceNotAvailable
	}

	detected := d.provider.Detect(d.cfg.OPLType)
	if !detected && d.cfg.OPLType == OPL_TYPE_DUAL_OPL2 {
		// a dual OPL2 can be emulated on an OPL3
		detected = d.provider.Detect(OPL_TYPE_OPL3)
	}
	if !detected {
		return ErrDeviceNotAvailable
	}

	chip, err := d.provider.Create(d.cfg.OPLType)
	if err != nil {
		return errors.Wrap(ErrCannotConnect, err.Error())
	}
	if chip == nil {
		return ErrCannotConnect
	}
	if err := chip.Init(); err != nil {
		return errors.Wrap(ErrCannotConnect, err.Error())
	}

	d.allocMu.Lock()
	d.notesMu.Lock()
	d.chip = chip
	d.regs = NewOPLRegisterWriter(chip, d.cfg.OPLType)
	d.determineMelodicChannelsLocked()
	for s := range d.controls {
		for ch := range d.controls[s] {
			d.controls[s][ch].volume = d.cfg.DefaultChannelVolume
		}
	}
	d.applyControllerDefaultsLocked(MIDI_UNMAPPED)
	d.initOPLLocked()
	d.notesMu.Unlock()
	d.allocMu.Unlock()

	if err := chip.Start(d.onTimer, d.cfg.TimerFrequency); err != nil {
		chip.Stop()
		d.notesMu.Lock()
		d.chip = nil
		d.regs = nil
		d.notesMu.Unlock()
		return errors.Wrap(ErrCannotConnect, err.Error())
	}
	d.isOpen = true
	d.logger.Debug("opl driver open", "chip", d.cfg.OPLType.String(), "timer_hz", d.cfg.TimerFrequency)
	return nil
}

// Close silences every voice and stops the chip.
func (d *OPLDriver) Close() {
	d.openMu.Lock()
	defer d.openMu.Unlock()
	if !d.isOpen {
		return
	}
	d.isOpen = false

	d.notesMu.Lock()
	d.stopAllNotesLocked(true)
	chip := d.chip
	d.chip = nil
	d.regs = nil
	d.notesMu.Unlock()

	chip.Stop()
}

func (d *OPLDriver) IsOpen() bool {
	d.openMu.Lock()
	defer d.openMu.Unlock()
	return d.isOpen
}

// RegisterWrites returns the number of register writes sent to the chip.
func (d *OPLDriver) RegisterWrites() uint64 {
	d.notesMu.Lock()
	regs := d.regs
	d.notesMu.Unlock()
	if regs == nil {
		return 0
	}
	return regs.Writes()
}

// SetInstrumentBank replaces the instrument catalog used for new notes.
func (d *OPLDriver) SetInstrumentBank(bank InstrumentBank) error {
	if err := bank.validate(); err != nil {
		return err
	}
	d.notesMu.Lock()
	d.bank = bank
	d.notesMu.Unlock()
	return nil
}

// SetControllerDefaults replaces the defaults applied on source deinitialization.
func (d *OPLDriver) SetControllerDefaults(defaults ControllerDefaults) {
	d.notesMu.Lock()
	d.defaults = defaults
	d.notesMu.Unlock()
}

// SetRhythmMode switches OPL channels 6-8 between melodic use and the
// five instrument rhythm section.
func (d *OPLDriver) SetRhythmMode(rhythm bool) {
	d.allocMu.Lock()
	defer d.allocMu.Unlock()
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.setRhythmModeLocked(rhythm)
}

func (d *OPLDriver) RhythmMode() bool {
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	return d.rhythmMode
}

// SysEx handles a system exclusive message, with or without the F0/F7 framing.
// Only the General MIDI System On message is recognized.
func (d *OPLDriver) SysEx(msg []byte) {
	if len(msg) > 0 && msg[0] == MIDI_COMMAND_SYSTEM {
		msg = msg[1:]
	}
	if len(msg) >= 4 && msg[0] == MIDI_SYSEX_UNIVERSAL_NON_REALTIME &&
		msg[2] == MIDI_SYSEX_GENERAL_MIDI && msg[3] == MIDI_SYSEX_GM_SYSTEM_ON {
		d.resetGM()
		return
	}
	d.logger.Warn("unrecognized sysex", "len", len(msg))
}

// resetGM returns controllers, voices and the chip to the state after Open.
func (d *OPLDriver) resetGM() {
	d.allocMu.Lock()
	defer d.allocMu.Unlock()
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	if d.regs == nil {
		return
	}

	d.stopAllNotesLocked(true)
	for s := range d.controls {
		for ch := range d.controls[s] {
			d.controls[s][ch].init()
			d.controls[s][ch].volume = d.cfg.DefaultChannelVolume
		}
	}
	d.setRhythmModeLocked(false)
	for i := range d.voices {
		d.voices[i].init()
	}
	d.clearAllocations()
	d.applyControllerDefaultsLocked(MIDI_UNMAPPED)
	d.initOPLLocked()
}

// MetaEvent handles a meta event. End of track deinitializes the source.
func (d *OPLDriver) MetaEvent(source int, metaType byte, data []byte) {
	if metaType == MIDI_META_END_OF_TRACK && source >= 0 && source < MAXIMUM_SOURCES {
		d.DeinitSource(uint8(source))
	}
}

// DeinitSource releases everything a source holds: sustained and sounding
// notes, running fades and static channel claims. Its controllers go back
// to the controller defaults.
func (d *OPLDriver) DeinitSource(source uint8) {
	if source >= MAXIMUM_SOURCES {
		return
	}
	d.allocMu.Lock()
	defer d.allocMu.Unlock()
	d.notesMu.Lock()
	defer d.notesMu.Unlock()

	d.abortFadeLocked(source, FADE_ABORT_TYPE_END_VOLUME)
	for ch := uint8(0); ch < MIDI_CHANNEL_COUNT; ch++ {
		d.sustainLocked(ch, 0, source)
	}
	d.stopSourceNotesLocked(source, MIDI_UNMAPPED)

	for ch := range d.allocations[source] {
		d.allocations[source][ch] = MIDI_UNMAPPED
	}
	for i := range d.voices {
		if d.voices[i].source == source {
			d.voices[i].allocated = false
		}
	}
	d.applyControllerDefaultsLocked(source)
}

func (d *OPLDriver) clearAllocations() {
	for s := range d.allocations {
		for ch := range d.allocations[s] {
			d.allocations[s][ch] = MIDI_UNMAPPED
		}
	}
}

// applyControllerDefaultsLocked applies defaults to one source, or every
// source when source is 0xFF.
func (d *OPLDriver) applyControllerDefaultsLocked(source uint8) {
	if source == MIDI_UNMAPPED {
		for s := uint8(0); s < MAXIMUM_SOURCES; s++ {
			d.applyControllerDefaultsLocked(s)
		}
		return
	}
	for ch := range d.controls[source] {
		d.defaults.apply(ch, &d.controls[source][ch])
	}
}

func (d *OPLDriver) determineMelodicChannelsLocked() {
	if d.cfg.OPLType == OPL_TYPE_OPL3 {
		if d.rhythmMode {
			d.melodicChannels = oplMelodicChannelsOPL3Rhythm
		} else {
			d.melodicChannels = oplMelodicChannelsOPL3
		}
		return
	}
	if d.rhythmMode {
		d.melodicChannels = oplMelodicChannelsOPL2Rhythm
	} else {
		d.melodicChannels = oplMelodicChannelsOPL2
	}
}

func (d *OPLDriver) numChannels() uint8 {
	if d.cfg.OPLType == OPL_TYPE_OPL2 {
		return OPL2_NUM_CHANNELS
	}
	return OPL3_NUM_CHANNELS
}

// initOPLLocked programs the chip-wide registers and silences every channel.
func (d *OPLDriver) initOPLLocked() {
	test := uint8(OPL_WAVEFORM_ENABLE)
	if d.cfg.OPLType == OPL_TYPE_OPL3 {
		test = 0
	}
	d.regs.Write(OPL_REGISTER_TEST, test, true)
	if d.cfg.OPLType != OPL_TYPE_OPL2 {
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TEST, test, true)
	}

	d.regs.Write(OPL_REGISTER_TIMER1, 0, true)
	d.regs.Write(OPL_REGISTER_TIMER2, 0, true)
	d.regs.Write(OPL_REGISTER_TIMERCONTROL, OPL_TIMER_MASK_BOTH, true)
	d.regs.Write(OPL_REGISTER_TIMERCONTROL, OPL_TIMER_RESET_FLAGS, true)
	if d.cfg.OPLType == OPL_TYPE_DUAL_OPL2 {
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TIMER1, 0, true)
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TIMER2, 0, true)
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TIMERCONTROL, OPL_TIMER_MASK_BOTH, true)
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TIMERCONTROL, OPL_TIMER_RESET_FLAGS, true)
	}

	if d.cfg.OPLType == OPL_TYPE_OPL3 {
		// two operator mode on all channels, OPL3 features on
		d.regs.Write(OPL3_REGISTER_CONNECTIONSELECT, 0, true)
		d.fourOpPairs = 0
		d.regs.Write(OPL3_REGISTER_NEW, 1, true)
	}

	d.regs.Write(OPL_REGISTER_NOTESELECT_CSM, d.cfg.NoteSelect<<6, true)
	if d.cfg.OPLType == OPL_TYPE_DUAL_OPL2 {
		d.regs.Write(OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_NOTESELECT_CSM, d.cfg.NoteSelect<<6, true)
	}

	level := OPL_MASK_LEVEL - (d.cfg.DefaultChannelVolume >> 1)
	operatorBases := []uint16{
		OPL_REGISTER_BASE_FREQMULT_MISC,
		OPL_REGISTER_BASE_LEVEL,
		OPL_REGISTER_BASE_DECAY_ATTACK,
		OPL_REGISTER_BASE_RELEASE_SUSTAIN,
		OPL_REGISTER_BASE_WAVEFORMSELECT,
	}
	for _, base := range operatorBases {
		value := uint8(0)
		if base == OPL_REGISTER_BASE_LEVEL {
			value = level
		}
		for ch := uint8(0); ch < d.numChannels(); ch++ {
			for op := uint8(0); op < 2; op++ {
				d.regs.Write(base+oplOperatorRegisterOffset(ch, op, RHYTHM_TYPE_UNDEFINED, false), value, true)
			}
		}
	}

	channelBases := []uint16{
		OPL_REGISTER_BASE_FNUMLOW,
		OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON,
		OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING,
	}
	for _, base := range channelBases {
		value := uint8(0)
		if base == OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING && d.cfg.OPLType == OPL_TYPE_OPL3 {
			value = OPL_PANNING_CENTER
		}
		for ch := uint8(0); ch < d.numChannels(); ch++ {
			d.regs.Write(base+oplChannelRegisterOffset(ch), value, true)
		}
	}

	d.writeRhythmLocked(true)
}
