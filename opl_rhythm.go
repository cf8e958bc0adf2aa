// opl_rhythm.go - OPL rhythm mode and the rhythm register.

package main

// setRhythmModeLocked switches rhythm mode. Needs allocMu and notesMu held.
func (d *OPLDriver) setRhythmModeLocked(rhythm bool) {
	if d.rhythmMode == rhythm {
		return
	}

	if rhythm {
		for _, oplChannel := range oplRhythmModeChannels {
			d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, false)
			d.releaseAllocationsOf(oplChannel)
			d.voices[oplChannel].init()
		}
		for i := range d.rhythmVoices {
			d.rhythmVoices[i].init()
		}
	} else {
		for i := range d.rhythmVoices {
			d.rhythmVoices[i].active = false
		}
	}
	d.rhythmMode = rhythm

	d.determineMelodicChannelsLocked()
	d.writeRhythmLocked(false)
}

// releaseAllocationsOf drops every static claim on an OPL channel.
func (d *OPLDriver) releaseAllocationsOf(oplChannel uint8) {
	for s := range d.allocations {
		for ch := range d.allocations[s] {
			if d.allocations[s][ch] == oplChannel {
				d.allocations[s][ch] = MIDI_UNMAPPED
			}
		}
	}
}

// writeRhythmLocked writes the BD register: tremolo depth, vibrato depth,
// rhythm mode and the key-on bits of the rhythm instruments.
func (d *OPLDriver) writeRhythmLocked(force bool) {
	value := uint8(d.cfg.ModulationDepth)<<7 | uint8(d.cfg.VibratoDepth)<<6
	if d.rhythmMode {
		value |= 1 << 5
		for i := range d.rhythmVoices {
			if d.rhythmVoices[i].active {
				value |= 1 << i
			}
		}
	}

	d.writeRegister(OPL_REGISTER_RHYTHM, value, force)
	if d.cfg.OPLType == OPL_TYPE_DUAL_OPL2 {
		d.writeRegister(OPL_REGISTER_SET_2_OFFSET|OPL_REGISTER_RHYTHM, value, force)
	}
}
