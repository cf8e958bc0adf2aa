// opl_control.go - Per source, per MIDI channel controller state.

package main

// channelControl is the controller state of one MIDI channel of one source.
type channelControl struct {
	program                   uint8
	pitchBend                 uint16 // 14 bit, 0x2000 is center
	modulation                uint8
	volume                    uint8
	panning                   uint8
	expression                uint8
	sustain                   bool
	rpn                       uint16
	pitchBendSensitivity      uint8 // semitones
	pitchBendSensitivityCents uint8
	masterTuningFine          uint16
	masterTuningCoarse        uint8
}

// init resets the channel to power-on values. Volume starts at zero; the
// driver applies its default channel volume on open.
func (c *channelControl) init() {
	*c = channelControl{
		pitchBend:            MIDI_PITCH_BEND_DEFAULT,
		panning:              MIDI_PANNING_DEFAULT,
		expression:           MIDI_EXPRESSION_DEFAULT,
		rpn:                  MIDI_RPN_NULL,
		pitchBendSensitivity: GM_PITCH_BEND_SENSITIVITY_DEFAULT,
		masterTuningFine:     MIDI_MASTER_TUNING_FINE_DEFAULT,
		masterTuningCoarse:   MIDI_MASTER_TUNING_COARSE_DEFAULT,
	}
}

// ControllerDefaults are controller values applied when the driver opens and
// when a source is deinitialized. Negative fields are left alone.
type ControllerDefaults struct {
	Program              [MIDI_CHANNEL_COUNT]int8
	PitchBend            int16
	Modulation           int8
	Volume               int8
	Panning              int8
	Expression           int8
	RPN                  int32
	PitchBendSensitivity int8
}

// UnsetControllerDefaults returns defaults that change nothing.
func UnsetControllerDefaults() ControllerDefaults {
	d := ControllerDefaults{
		PitchBend:            -1,
		Modulation:           -1,
		Volume:               -1,
		Panning:              -1,
		Expression:           -1,
		RPN:                  -1,
		PitchBendSensitivity: -1,
	}
	for i := range d.Program {
		d.Program[i] = -1
	}
	return d
}

func (d *ControllerDefaults) apply(ch int, c *channelControl) {
	if d.Program[ch] >= 0 {
		c.program = uint8(d.Program[ch])
	}
	if d.PitchBend >= 0 {
		c.pitchBend = uint16(d.PitchBend)
	}
	if d.Modulation >= 0 {
		c.modulation = uint8(d.Modulation)
	}
	if d.Volume >= 0 {
		c.volume = uint8(d.Volume)
	}
	if d.Panning >= 0 {
		c.panning = uint8(d.Panning)
	}
	if d.Expression >= 0 {
		c.expression = uint8(d.Expression)
	}
	if d.RPN >= 0 {
		c.rpn = uint16(d.RPN)
	}
	if d.PitchBendSensitivity >= 0 {
		c.pitchBendSensitivity = uint8(d.PitchBendSensitivity)
		c.pitchBendSensitivityCents = 0
	}
}
