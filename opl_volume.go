// opl_volume.go - Operator level and stereo panning calculation.

package main

// isCarrier reports whether an operator's level follows note and channel
// volume. Modulators keep the instrument's own level.
func isCarrier(def *InstrumentDefinition, operatorNum uint8) bool {
	if def.RhythmType != RHYTHM_TYPE_UNDEFINED {
		return def.RhythmType != RHYTHM_TYPE_BASS_DRUM || operatorNum == 1
	}
	if def.FourOperator {
		connection := def.ConnectionFeedback0&0x01 | (def.ConnectionFeedback1&0x01)<<1
		switch connection {
		case 0: // FM-FM
			return operatorNum == 3
		case 1: // AM-FM
			return operatorNum == 0 || operatorNum == 3
		case 2: // FM-AM
			return operatorNum == 1 || operatorNum == 3
		default: // AM-AM
			return operatorNum == 0 || operatorNum == 2 || operatorNum == 3
		}
	}
	// additive connection makes both operators carriers
	return def.ConnectionFeedback0&0x01 == 0x01 || operatorNum == 1
}

// calculateVolumeLocked returns the 6 bit level for an operator of a note
// played by source on channel.
func (d *OPLDriver) calculateVolumeLocked(channel, source, velocity uint8, def *InstrumentDefinition, operatorNum uint8) uint8 {
	operatorLevel := def.Operators[operatorNum].Level & OPL_MASK_LEVEL
	if !isCarrier(def, operatorNum) {
		return operatorLevel
	}

	unscaled := d.accuracy.unscaledVolume(&d.controls[source][channel], velocity, operatorLevel)
	inverted := OPL_MASK_LEVEL - unscaled

	// 8 bit intermediate results wrap like the Win95 driver
	src := &d.sources[source]
	inverted = uint8(uint32(inverted) * uint32(src.volume) / uint32(src.neutralVolume))
	if d.userScaling {
		if d.userMute {
			inverted = 0
		} else {
			userVolume := d.userMusicVolume
			if src.sourceType == SOURCE_TYPE_SFX {
				userVolume = d.userSfxVolume
			}
			inverted = uint8(uint32(inverted) * uint32(userVolume) >> 8)
		}
	}
	inverted = min(OPL_MASK_LEVEL, inverted)
	return OPL_MASK_LEVEL - inverted
}

// calculatePanningLocked returns the C0 panning bits. Chips without stereo
// output get none.
func (d *OPLDriver) calculatePanningLocked(channel, source uint8) uint8 {
	if d.cfg.OPLType != OPL_TYPE_OPL3 {
		return 0
	}
	return oplPanningBits(d.controls[source][channel].panning)
}

// oplPanningBits maps MIDI panning to left (0x00-0x2F), center or right (0x51-0x7F).
func oplPanningBits(panning uint8) uint8 {
	switch {
	case panning <= OPL_MIDI_PANNING_LEFT_LIMIT:
		return OPL_PANNING_LEFT
	case panning >= OPL_MIDI_PANNING_RIGHT_LIMIT:
		return OPL_PANNING_RIGHT
	}
	return OPL_PANNING_CENTER
}
