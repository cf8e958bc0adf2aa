// opl_constants.go - OPL register map, MIDI controller numbers and driver modes.

package main

// OPLType selects the chip family being driven.
type OPLType int

const (
	OPL_TYPE_OPL2 OPLType = iota
	OPL_TYPE_DUAL_OPL2
	OPL_TYPE_OPL3
)

func (t OPLType) String() string {
	switch t {
	case OPL_TYPE_OPL2:
		return "opl2"
	case OPL_TYPE_DUAL_OPL2:
		return "dual-opl2"
	case OPL_TYPE_OPL3:
		return "opl3"
	}
	return "unknown"
}

const (
	OPL2_NUM_CHANNELS          = 9
	OPL3_NUM_CHANNELS          = 18
	OPL_NUM_RHYTHM_INSTRUMENTS = 5
	OPL_NUM_REGISTERS          = 0x200 // both register sets

	OPL_REGISTER_TEST              = 0x01
	OPL_REGISTER_TIMER1            = 0x02
	OPL_REGISTER_TIMER2            = 0x03
	OPL_REGISTER_TIMERCONTROL      = 0x04
	OPL_REGISTER_NOTESELECT_CSM    = 0x08
	OPL_REGISTER_RHYTHM            = 0xBD
	OPL3_REGISTER_CONNECTIONSELECT = 0x104
	OPL3_REGISTER_NEW              = 0x105

	OPL_REGISTER_BASE_FREQMULT_MISC               = 0x20
	OPL_REGISTER_BASE_LEVEL                       = 0x40
	OPL_REGISTER_BASE_DECAY_ATTACK                = 0x60
	OPL_REGISTER_BASE_RELEASE_SUSTAIN             = 0x80
	OPL_REGISTER_BASE_FNUMLOW                     = 0xA0
	OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON        = 0xB0
	OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING = 0xC0
	OPL_REGISTER_BASE_WAVEFORMSELECT              = 0xE0

	OPL_REGISTER_SET_2_OFFSET = 0x100

	OPL_MASK_LEVEL          = 0x3F
	OPL_MASK_FNUMHIGH_BLOCK = 0x1F
	OPL_MASK_KEYON          = 0x20
	OPL_MASK_PANNING        = 0x30

	OPL_PANNING_CENTER = 0x30
	OPL_PANNING_LEFT   = 0x10
	OPL_PANNING_RIGHT  = 0x20

	OPL_TIMER_RESET_FLAGS = 0x80
	OPL_TIMER_MASK_BOTH   = 0x60
	OPL_WAVEFORM_ENABLE   = 0x20
)

const (
	// Highest MIDI panning value still treated as hard left, lowest as hard right.
	OPL_MIDI_PANNING_LEFT_LIMIT  = 0x2F
	OPL_MIDI_PANNING_RIGHT_LIMIT = 0x51

	// GS percussion notes covered by the built-in rhythm bank.
	OPL_GS_RHYTHM_FIRST_NOTE = 0x1B
	OPL_GS_RHYTHM_LAST_NOTE  = 0x58

	OPL_DEFAULT_TIMER_FREQUENCY = 250
	OPL_FREQUENCY_MAX_FNUM      = 0x3FF
	OPL_FREQUENCY_MAX_BLOCK     = 7
)

const (
	MIDI_COMMAND_NOTE_OFF         = 0x80
	MIDI_COMMAND_NOTE_ON          = 0x90
	MIDI_COMMAND_POLY_AFTERTOUCH  = 0xA0
	MIDI_COMMAND_CONTROL_CHANGE   = 0xB0
	MIDI_COMMAND_PROGRAM_CHANGE   = 0xC0
	MIDI_COMMAND_CHANNEL_PRESSURE = 0xD0
	MIDI_COMMAND_PITCH_BEND       = 0xE0
	MIDI_COMMAND_SYSTEM           = 0xF0

	MIDI_CONTROLLER_MODULATION            = 0x01
	MIDI_CONTROLLER_DATA_ENTRY_MSB        = 0x06
	MIDI_CONTROLLER_VOLUME                = 0x07
	MIDI_CONTROLLER_PANNING               = 0x0A
	MIDI_CONTROLLER_EXPRESSION            = 0x0B
	MIDI_CONTROLLER_DATA_ENTRY_LSB        = 0x26
	MIDI_CONTROLLER_SUSTAIN               = 0x40
	MIDI_CONTROLLER_RPN_LSB               = 0x64
	MIDI_CONTROLLER_RPN_MSB               = 0x65
	MIDI_CONTROLLER_ALL_SOUND_OFF         = 0x78
	MIDI_CONTROLLER_RESET_ALL_CONTROLLERS = 0x79
	MIDI_CONTROLLER_ALL_NOTES_OFF         = 0x7B
	MIDI_CONTROLLER_OMNI_OFF              = 0x7C
	MIDI_CONTROLLER_OMNI_ON               = 0x7D
	MIDI_CONTROLLER_MONO_ON               = 0x7E
	MIDI_CONTROLLER_POLY_ON               = 0x7F

	MIDI_RPN_PITCH_BEND_SENSITIVITY = 0x0000
	MIDI_RPN_MASTER_TUNING_FINE     = 0x0001
	MIDI_RPN_MASTER_TUNING_COARSE   = 0x0002
	MIDI_RPN_NULL                   = 0x7F7F

	MIDI_PITCH_BEND_DEFAULT                  = 0x2000
	MIDI_PANNING_DEFAULT                     = 0x40
	MIDI_EXPRESSION_DEFAULT                  = 0x7F
	MIDI_SUSTAIN_THRESHOLD                   = 0x40
	MIDI_MASTER_TUNING_FINE_DEFAULT          = 0x2000
	MIDI_MASTER_TUNING_COARSE_DEFAULT        = 0x40
	GM_PITCH_BEND_SENSITIVITY_DEFAULT        = 2
	MIDI_META_END_OF_TRACK                   = 0x2F
	MIDI_CHANNEL_COUNT                       = 16
	MIDI_RHYTHM_CHANNEL                      = 9
	MIDI_SYSEX_UNIVERSAL_NON_REALTIME        = 0x7E
	MIDI_SYSEX_GENERAL_MIDI                  = 0x09
	MIDI_SYSEX_GM_SYSTEM_ON                  = 0x01
	MIDI_DATA_NOT_PROVIDED            uint8  = 0xFF
	MIDI_SOURCE_ALL                          = -1
	MIDI_UNMAPPED                     uint8  = 0xFF
	MIDI_VOLUME_NEUTRAL_DEFAULT       uint16 = 255
	MIDI_USER_VOLUME_DEFAULT          uint16 = 192
	MIDI_USER_VOLUME_MAX              uint16 = 256
)

// MAXIMUM_SOURCES bounds the number of independent MIDI streams.
const MAXIMUM_SOURCES = 10

// AccuracyMode selects the frequency and volume calculation model.
type AccuracyMode int

const (
	// Reproduces the Win95 SB16 driver bit-for-bit.
	ACCURACY_MODE_SB16_WIN95 AccuracyMode = iota
	// Follows the General MIDI pitch and loudness curves.
	ACCURACY_MODE_GM
)

// ChannelAllocationMode selects how MIDI channels map to OPL voices.
type ChannelAllocationMode int

const (
	ALLOCATION_MODE_DYNAMIC ChannelAllocationMode = iota
	ALLOCATION_MODE_STATIC
)

// InstrumentWriteMode selects when instrument registers are written.
type InstrumentWriteMode int

const (
	INSTRUMENT_WRITE_MODE_NOTE_ON InstrumentWriteMode = iota
	INSTRUMENT_WRITE_MODE_PROGRAM_CHANGE
)

// Depth of the chip-wide tremolo and vibrato.
type ModulationDepth uint8

const (
	MODULATION_DEPTH_LOW  ModulationDepth = 0
	MODULATION_DEPTH_HIGH ModulationDepth = 1
)

// SourceType tells which user volume setting scales a source.
type SourceType int

const (
	SOURCE_TYPE_UNDEFINED SourceType = iota
	SOURCE_TYPE_MUSIC
	SOURCE_TYPE_SFX
)

// FadeAbortType picks the volume a source keeps when a fade is cut short.
type FadeAbortType int

const (
	FADE_ABORT_TYPE_END_VOLUME FadeAbortType = iota
	FADE_ABORT_TYPE_CURRENT_VOLUME
	FADE_ABORT_TYPE_START_VOLUME
)

// F-num values for the 12 notes of octave 5 in the Win95 driver.
var oplNoteFrequencies = [12]uint16{
	0x0AB7, 0x0B5A, 0x0C07, 0x0CBE, 0x0D80, 0x0E4D,
	0x0F27, 0x100E, 0x1102, 0x1205, 0x1318, 0x143A,
}

// Attenuation added for velocity and channel volume, indexed by value>>2.
var oplVolumeLookup = [32]uint8{
	0x50, 0x3F, 0x28, 0x24, 0x20, 0x1C, 0x17, 0x15,
	0x13, 0x11, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A,
	0x09, 0x08, 0x07, 0x06, 0x05, 0x05, 0x04, 0x04,
	0x03, 0x03, 0x02, 0x02, 0x01, 0x01, 0x00, 0x00,
}

// Operator register offsets and channels of the rhythm instruments,
// indexed by rhythm type - 1.
var oplRhythmOperatorOffsets = [OPL_NUM_RHYTHM_INSTRUMENTS]uint8{0x11, 0x15, 0x12, 0x14, 0x10}
var oplRhythmChannels = [OPL_NUM_RHYTHM_INSTRUMENTS]uint8{7, 8, 8, 7, 6}

// Channels taken over by the rhythm section when rhythm mode is on.
var oplRhythmModeChannels = [3]uint8{6, 7, 8}

var (
	oplMelodicChannelsOPL2       = []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}
	oplMelodicChannelsOPL2Rhythm = []uint8{0, 1, 2, 3, 4, 5}
	oplMelodicChannelsOPL3       = []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	oplMelodicChannelsOPL3Rhythm = []uint8{0, 1, 2, 3, 4, 5, 9, 10, 11, 12, 13, 14, 15, 16, 17}
)
