// opl_instrument.go - OPL instrument definitions, banks and AdLib BNK/IBK conversion.

package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// OPLRhythmType identifies the rhythm section instrument an instrument plays.
// Values match the bit positions of the rhythm register plus one.
type OPLRhythmType uint8

const (
	RHYTHM_TYPE_UNDEFINED OPLRhythmType = iota
	RHYTHM_TYPE_HI_HAT
	RHYTHM_TYPE_CYMBAL
	RHYTHM_TYPE_TOM_TOM
	RHYTHM_TYPE_SNARE_DRUM
	RHYTHM_TYPE_BASS_DRUM
)

func (r OPLRhythmType) String() string {
	switch r {
	case RHYTHM_TYPE_HI_HAT:
		return "hi-hat"
	case RHYTHM_TYPE_CYMBAL:
		return "cymbal"
	case RHYTHM_TYPE_TOM_TOM:
		return "tom-tom"
	case RHYTHM_TYPE_SNARE_DRUM:
		return "snare"
	case RHYTHM_TYPE_BASS_DRUM:
		return "bass drum"
	}
	return "undefined"
}

// OperatorDefinition holds the per-operator register values of an instrument.
type OperatorDefinition struct {
	FreqMultMisc   uint8 // 0x20
	Level          uint8 // 0x40
	DecayAttack    uint8 // 0x60
	ReleaseSustain uint8 // 0x80
	WaveformSelect uint8 // 0xE0
}

func (o OperatorDefinition) IsEmpty() bool {
	return o == OperatorDefinition{}
}

// InstrumentDefinition is one OPL instrument. Rhythm instruments use
// Operators[0] only, except the bass drum which uses two.
type InstrumentDefinition struct {
	FourOperator        bool
	Operators           [4]OperatorDefinition
	ConnectionFeedback0 uint8
	ConnectionFeedback1 uint8 // four operator instruments only
	RhythmNote          uint8
	RhythmType          OPLRhythmType
}

// IsEmpty reports whether every operator the instrument uses is all-zero.
func (i *InstrumentDefinition) IsEmpty() bool {
	if i.RhythmType != RHYTHM_TYPE_UNDEFINED {
		return i.Operators[0].IsEmpty() &&
			(i.RhythmType != RHYTHM_TYPE_BASS_DRUM || i.Operators[1].IsEmpty())
	}
	for op := 0; op < i.NumOperators(); op++ {
		if !i.Operators[op].IsEmpty() {
			return false
		}
	}
	return true
}

func (i *InstrumentDefinition) NumOperators() int {
	if i.RhythmType != RHYTHM_TYPE_UNDEFINED {
		if i.RhythmType == RHYTHM_TYPE_BASS_DRUM {
			return 2
		}
		return 1
	}
	if i.FourOperator {
		return 4
	}
	return 2
}

// InstrumentBank is the set of instruments the driver draws from. Rhythm
// covers the notes RhythmFirstNote through RhythmLastNote inclusive.
type InstrumentBank struct {
	Melodic         []InstrumentDefinition
	Rhythm          []InstrumentDefinition
	RhythmFirstNote uint8
	RhythmLastNote  uint8
}

// DefaultInstrumentBank returns the Win95 SB16 driver instrument set.
func DefaultInstrumentBank() InstrumentBank {
	return InstrumentBank{
		Melodic:         oplMelodicBank[:],
		Rhythm:          oplRhythmBank[:],
		RhythmFirstNote: OPL_GS_RHYTHM_FIRST_NOTE,
		RhythmLastNote:  OPL_GS_RHYTHM_LAST_NOTE,
	}
}

func (b InstrumentBank) validate() error {
	if len(b.Melodic) != 128 {
		return errors.Errorf("melodic bank must hold 128 instruments, got %d", len(b.Melodic))
	}
	if b.RhythmLastNote < b.RhythmFirstNote {
		return errors.Errorf("rhythm note range %d-%d is inverted", b.RhythmFirstNote, b.RhythmLastNote)
	}
	want := int(b.RhythmLastNote) - int(b.RhythmFirstNote) + 1
	if len(b.Rhythm) != want {
		return errors.Errorf("rhythm bank must hold %d instruments, got %d", want, len(b.Rhythm))
	}
	return nil
}

// BNKOperator is one operator as stored in an AdLib BNK instrument record.
type BNKOperator struct {
	KeyScalingLevel     uint8
	FrequencyMultiplier uint8
	Feedback            uint8
	Attack              uint8
	Sustain             uint8
	EnvelopeGainType    uint8
	Decay               uint8
	Release             uint8
	Level               uint8
	AmplitudeModulation uint8
	Vibrato             uint8
	KeyScalingRate      uint8
	Connection          uint8
}

func (o BNKOperator) toOperatorDefinition(waveformSelect uint8) OperatorDefinition {
	def := OperatorDefinition{
		FreqMultMisc:   o.FrequencyMultiplier,
		Level:          o.Level | o.KeyScalingLevel<<6,
		DecayAttack:    o.Decay | o.Attack<<4,
		ReleaseSustain: o.Release | o.Sustain<<4,
		WaveformSelect: waveformSelect,
	}
	if o.KeyScalingRate != 0 {
		def.FreqMultMisc |= 0x10
	}
	if o.EnvelopeGainType != 0 {
		def.FreqMultMisc |= 0x20
	}
	if o.Vibrato != 0 {
		def.FreqMultMisc |= 0x40
	}
	if o.AmplitudeModulation != 0 {
		def.FreqMultMisc |= 0x80
	}
	return def
}

// BNKInstrument is an AdLib BNK instrument record.
type BNKInstrument struct {
	InstrumentType    uint8
	RhythmVoiceNumber uint8
	Operator0         BNKOperator
	Operator1         BNKOperator
	WaveformSelect0   uint8
	WaveformSelect1   uint8
}

// ToInstrumentDefinition converts the record to a two operator melodic instrument.
func (b BNKInstrument) ToInstrumentDefinition() InstrumentDefinition {
	var def InstrumentDefinition
	def.Operators[0] = b.Operator0.toOperatorDefinition(b.WaveformSelect0)
	def.Operators[1] = b.Operator1.toOperatorDefinition(b.WaveformSelect1)
	if b.Operator0.Connection == 0 {
		def.ConnectionFeedback0 = 1
	}
	def.ConnectionFeedback0 |= b.Operator0.Feedback << 1
	return def
}

const (
	IBK_INSTRUMENT_SIZE  = 16
	IBK_INSTRUMENT_COUNT = 128
	IBK_NAME_SIZE        = 9
)

var ibkSignature = []byte{'I', 'B', 'K', 0x1A}

// IBKInstrument is a 16 byte record from a Creative IBK bank file.
type IBKInstrument struct {
	O0FreqMultMisc   uint8
	O1FreqMultMisc   uint8
	O0Level          uint8
	O1Level          uint8
	O0DecayAttack    uint8
	O1DecayAttack    uint8
	O0ReleaseSustain uint8
	O1ReleaseSustain uint8
	O0WaveformSelect uint8
	O1WaveformSelect uint8
	ConnectionFeed   uint8
	RhythmType       uint8
	Transpose        int8
	RhythmNote       uint8
}

func parseIBKInstrument(rec []byte) IBKInstrument {
	return IBKInstrument{
		O0FreqMultMisc:   rec[0],
		O1FreqMultMisc:   rec[1],
		O0Level:          rec[2],
		O1Level:          rec[3],
		O0DecayAttack:    rec[4],
		O1DecayAttack:    rec[5],
		O0ReleaseSustain: rec[6],
		O1ReleaseSustain: rec[7],
		O0WaveformSelect: rec[8],
		O1WaveformSelect: rec[9],
		ConnectionFeed:   rec[10],
		RhythmType:       rec[11],
		Transpose:        int8(rec[12]),
		RhythmNote:       rec[13],
	}
}

// ToInstrumentDefinition converts the record. IBK percussion codes 6-10
// select bass drum, snare, tom-tom, cymbal and hi-hat.
func (i IBKInstrument) ToInstrumentDefinition() InstrumentDefinition {
	def := InstrumentDefinition{
		ConnectionFeedback0: i.ConnectionFeed,
		RhythmNote:          i.RhythmNote,
	}
	def.Operators[0] = OperatorDefinition{i.O0FreqMultMisc, i.O0Level, i.O0DecayAttack, i.O0ReleaseSustain, i.O0WaveformSelect}
	def.Operators[1] = OperatorDefinition{i.O1FreqMultMisc, i.O1Level, i.O1DecayAttack, i.O1ReleaseSustain, i.O1WaveformSelect}
	switch i.RhythmType {
	case 6:
		def.RhythmType = RHYTHM_TYPE_BASS_DRUM
	case 7:
		def.RhythmType = RHYTHM_TYPE_SNARE_DRUM
	case 8:
		def.RhythmType = RHYTHM_TYPE_TOM_TOM
	case 9:
		def.RhythmType = RHYTHM_TYPE_CYMBAL
	case 10:
		def.RhythmType = RHYTHM_TYPE_HI_HAT
	}
	return def
}

// ParseIBKData decodes a 128 instrument IBK bank. Instrument names are ignored.
func ParseIBKData(data []byte) ([]InstrumentDefinition, error) {
	if len(data) < len(ibkSignature) || !bytes.Equal(data[:len(ibkSignature)], ibkSignature) {
		return nil, errors.New("invalid ibk header")
	}
	body := data[len(ibkSignature):]
	if len(body) < IBK_INSTRUMENT_SIZE*IBK_INSTRUMENT_COUNT {
		return nil, errors.Errorf("ibk too short: %d bytes", len(data))
	}
	bank := make([]InstrumentDefinition, IBK_INSTRUMENT_COUNT)
	for n := range bank {
		rec := body[n*IBK_INSTRUMENT_SIZE : (n+1)*IBK_INSTRUMENT_SIZE]
		bank[n] = parseIBKInstrument(rec).ToInstrumentDefinition()
	}
	return bank, nil
}

func LoadIBKFile(path string) ([]InstrumentDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read ibk bank")
	}
	bank, err := ParseIBKData(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return bank, nil
}
