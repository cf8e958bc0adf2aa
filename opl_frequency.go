// opl_frequency.go - F-num/block calculation and frequency register writes.

package main

// calculateFrequencyLocked returns the A0/B0 register pair value (F-num in
// bits 0-9, block in bits 10-12) for a note on a source channel.
func (d *OPLDriver) calculateFrequencyLocked(channel, source, note uint8) uint16 {
	freq, block := d.accuracy.noteFrequency(note)
	// the bend is scaled by the 16 bit truncated F-num
	freq += uint32(d.accuracy.pitchBend(&d.controls[source][channel], uint16(freq)))

	for freq > OPL_FREQUENCY_MAX_FNUM {
		freq >>= 1
		block++
	}
	// the highest notes do not fit and are played an octave or two lower
	block = min(block, OPL_FREQUENCY_MAX_BLOCK)
	return uint16(freq) | uint16(block)<<10
}

// writeFrequencyLocked recalculates and writes the frequency of a voice. The
// key-on bit is set for sounding melodic voices; rhythm voices are keyed by
// the rhythm register.
func (d *OPLDriver) writeFrequencyLocked(oplChannel uint8, rhythmType OPLRhythmType) {
	var voice *oplVoice
	if rhythmType != RHYTHM_TYPE_UNDEFINED {
		voice = &d.rhythmVoices[rhythmType-1]
		oplChannel = oplRhythmChannels[rhythmType-1]
	} else {
		voice = &d.voices[oplChannel]
	}

	offset := oplChannelRegisterOffset(oplChannel)
	frequency := d.calculateFrequencyLocked(voice.channel, voice.source, voice.oplNote)
	voice.oplFrequency = frequency

	d.writeRegister(OPL_REGISTER_BASE_FNUMLOW+offset, uint8(frequency), false)
	high := uint8(frequency >> 8)
	if rhythmType == RHYTHM_TYPE_UNDEFINED && voice.active {
		high |= OPL_MASK_KEYON
	}
	d.writeRegister(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON+offset, high, false)
}

// recalculateFrequenciesLocked rewrites the frequencies of a source
// channel's sounding notes after a pitch bend or tuning change.
func (d *OPLDriver) recalculateFrequenciesLocked(channel, source uint8) {
	if !(d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL) {
		for _, oplChannel := range d.melodicChannels {
			v := &d.voices[oplChannel]
			if v.active && v.channel == channel && v.source == source {
				d.writeFrequencyLocked(oplChannel, RHYTHM_TYPE_UNDEFINED)
			}
		}
		return
	}

	if d.rhythmVoiceActive(RHYTHM_TYPE_BASS_DRUM, source) {
		d.writeFrequencyLocked(MIDI_UNMAPPED, RHYTHM_TYPE_BASS_DRUM)
	}
	// snare/hi-hat and tom-tom/cymbal share a frequency register; the more
	// recently played one wins, ties go to the first of the pair
	pairs := [2][2]OPLRhythmType{
		{RHYTHM_TYPE_SNARE_DRUM, RHYTHM_TYPE_HI_HAT},
		{RHYTHM_TYPE_TOM_TOM, RHYTHM_TYPE_CYMBAL},
	}
	for _, pair := range pairs {
		first, second := pair[0], pair[1]
		firstActive := d.rhythmVoiceActive(first, source)
		secondActive := d.rhythmVoiceActive(second, source)
		rhythmType := RHYTHM_TYPE_UNDEFINED
		switch {
		case firstActive && secondActive:
			rhythmType = second
			if d.rhythmVoices[first-1].counter >= d.rhythmVoices[second-1].counter {
				rhythmType = first
			}
		case firstActive:
			rhythmType = first
		case secondActive:
			rhythmType = second
		}
		if rhythmType != RHYTHM_TYPE_UNDEFINED {
			d.writeFrequencyLocked(MIDI_UNMAPPED, rhythmType)
		}
	}
}

func (d *OPLDriver) rhythmVoiceActive(rhythmType OPLRhythmType, source uint8) bool {
	v := &d.rhythmVoices[rhythmType-1]
	return v.active && v.source == source
}
