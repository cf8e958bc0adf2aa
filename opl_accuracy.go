// opl_accuracy.go - Frequency, pitch bend and volume models (Win95 SB16 and General MIDI).

/*
 Both models use float32 where the reference driver did, and round through
 explicit float32 conversions so the results stay bit-compatible.
*/

package main

import "math"

// accuracyModel computes the note dependent values written to the chip.
type accuracyModel interface {
	// noteFrequency returns the unbent F-num (possibly wider than 10 bits)
	// and the block it is relative to.
	noteFrequency(note uint8) (uint32, uint8)
	// pitchBend returns the F-num delta for the channel's bend and tuning.
	// oplFrequency is the F-num truncated to 16 bits.
	pitchBend(ctrl *channelControl, oplFrequency uint16) int32
	// unscaledVolume returns the carrier attenuation (0 loud - 0x3F silent)
	// before source and user volume scaling.
	unscaledVolume(ctrl *channelControl, velocity uint8, operatorLevel uint8) uint8
}

func newAccuracyModel(mode AccuracyMode) accuracyModel {
	if mode == ACCURACY_MODE_GM {
		return gmModel{}
	}
	return sb16Model{}
}

type sb16Model struct{}

func (sb16Model) noteFrequency(note uint8) (uint32, uint8) {
	octave := note / 12
	freq := uint32(oplNoteFrequencies[note%12])
	// table values are for octave 5
	if octave > 5 {
		freq <<= octave - 5
	} else {
		freq >>= 5 - octave
	}
	return freq, 1
}

// pitchBend uses a fixed range of 2 semitones. The minimum bend is clipped
// to -0x8000 instead of wrapping around.
func (sb16Model) pitchBend(ctrl *channelControl, oplFrequency uint16) int32 {
	bend := max(-0x8000, int32(ctrl.pitchBend)<<2-0x8001)
	if bend > 0 {
		bend *= 0x1F
	} else {
		bend *= 0x1B
	}
	bend >>= 8
	bend *= int32(oplFrequency)
	bend >>= 15
	return bend
}

func (sb16Model) unscaledVolume(ctrl *channelControl, velocity uint8, operatorLevel uint8) uint8 {
	volume := oplVolumeLookup[velocity>>2] + oplVolumeLookup[ctrl.volume>>2] + operatorLevel
	return min(OPL_MASK_LEVEL, volume)
}

// F-num per Hz at block 0 for the 49716 Hz OPL sample clock.
var gmFrequencyConversionFactor = float32(math.Pow(2, 20) / 49716)

type gmModel struct{}

// noteFrequency returns the F-num at block 0, which holds twice the
// resolution of block 1.
func (gmModel) noteFrequency(note uint8) (uint32, uint8) {
	semitones := float32(float32(int(note)-0x45) / 12)
	hz := float32(440 * math.Pow(2, float64(semitones)))
	return uint32(math.Round(float64(float32(hz * gmFrequencyConversionFactor)))), 0
}

func (gmModel) pitchBend(ctrl *channelControl, oplFrequency uint16) int32 {
	signedBend := int16(ctrl.pitchBend - MIDI_PITCH_BEND_DEFAULT)
	sensitivityCents := uint16(ctrl.pitchBendSensitivity)*100 + uint16(ctrl.pitchBendSensitivityCents)
	divisor := float32(8192)
	if signedBend > 0 {
		// upward bend has one step less
		divisor = 8191
	}
	bendCents := float32(float32(int(signedBend)*int(sensitivityCents)) / divisor)
	tuningCents := float32(float32((int(ctrl.masterTuningCoarse)-0x40)*100) +
		float32(float32((int(ctrl.masterTuningFine)-0x2000)*100)/8192))
	exponent := float32(float32(bendCents+tuningCents) / 1200)
	freq := float64(oplFrequency)
	return int32(math.Round(freq*math.Pow(2, float64(exponent)) - freq))
}

// unscaledVolume follows the GM curve 40 log10(velocity * volume * expression / 127^3)
// at 0.75 dB per OPL level step.
func (gmModel) unscaledVolume(ctrl *channelControl, velocity uint8, operatorLevel uint8) uint8 {
	product := int(velocity) * int(ctrl.volume) * int(ctrl.expression)
	if product == 0 {
		return OPL_MASK_LEVEL
	}
	ratio := float32(float32(product) / 2048383)
	volumeDb := float32(40 * float32(math.Log10(float64(ratio))))
	level := float32(volumeDb/-0.75 + float32(operatorLevel))
	if level >= OPL_MASK_LEVEL {
		return OPL_MASK_LEVEL
	}
	return uint8(level)
}
