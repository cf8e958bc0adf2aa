// opl_controllers.go - MIDI control change handling.

package main

// ControlChange applies a controller message to a source channel.
func (d *OPLDriver) ControlChange(channel, controller, value, source uint8) {
	if !validChannelSource(channel, source) {
		return
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()

	value &= 0x7F
	switch controller & 0x7F {
	case MIDI_CONTROLLER_MODULATION:
		d.controls[source][channel].modulation = value
	case MIDI_CONTROLLER_DATA_ENTRY_MSB:
		d.dataEntryLocked(channel, value, MIDI_DATA_NOT_PROVIDED, source)
	case MIDI_CONTROLLER_DATA_ENTRY_LSB:
		d.dataEntryLocked(channel, MIDI_DATA_NOT_PROVIDED, value, source)
	case MIDI_CONTROLLER_VOLUME:
		d.volumeLocked(channel, value, source)
	case MIDI_CONTROLLER_PANNING:
		d.panningLocked(channel, value, source)
	case MIDI_CONTROLLER_EXPRESSION:
		d.expressionLocked(channel, value, source)
	case MIDI_CONTROLLER_SUSTAIN:
		d.sustainLocked(channel, value, source)
	case MIDI_CONTROLLER_RPN_LSB:
		d.registeredParameterNumberLocked(channel, MIDI_DATA_NOT_PROVIDED, value, source)
	case MIDI_CONTROLLER_RPN_MSB:
		d.registeredParameterNumberLocked(channel, value, MIDI_DATA_NOT_PROVIDED, source)
	case MIDI_CONTROLLER_ALL_SOUND_OFF:
		d.stopSourceNotesLocked(source, channel)
	case MIDI_CONTROLLER_RESET_ALL_CONTROLLERS:
		d.resetAllControllersLocked(channel, source)
	case MIDI_CONTROLLER_ALL_NOTES_OFF, MIDI_CONTROLLER_OMNI_OFF, MIDI_CONTROLLER_OMNI_ON,
		MIDI_CONTROLLER_MONO_ON, MIDI_CONTROLLER_POLY_ON:
		// omni and mono/poly changes imply all notes off
		d.allNotesOffLocked(channel, source)
	default:
		d.logger.Debug("unsupported controller", "source", source, "channel", channel, "controller", controller, "value", value)
	}
}

// dataEntryLocked sets the active RPN. 0xFF marks a byte that was not sent.
func (d *OPLDriver) dataEntryLocked(channel, msb, lsb, source uint8) {
	ctrl := &d.controls[source][channel]
	switch ctrl.rpn {
	case MIDI_RPN_PITCH_BEND_SENSITIVITY:
		// semitones and cents
		if msb != MIDI_DATA_NOT_PROVIDED {
			ctrl.pitchBendSensitivity = msb
		}
		if lsb != MIDI_DATA_NOT_PROVIDED {
			ctrl.pitchBendSensitivityCents = lsb
		}
	case MIDI_RPN_MASTER_TUNING_FINE:
		if msb != MIDI_DATA_NOT_PROVIDED {
			ctrl.masterTuningFine = ctrl.masterTuningFine&0x00FF | uint16(msb)<<8
		}
		if lsb != MIDI_DATA_NOT_PROVIDED {
			ctrl.masterTuningFine = ctrl.masterTuningFine&0xFF00 | uint16(lsb)
		}
	case MIDI_RPN_MASTER_TUNING_COARSE:
		// LSB is ignored
		if msb != MIDI_DATA_NOT_PROVIDED {
			ctrl.masterTuningCoarse = msb
		}
	default:
		return
	}
	d.recalculateFrequenciesLocked(channel, source)
}

func (d *OPLDriver) registeredParameterNumberLocked(channel, msb, lsb, source uint8) {
	ctrl := &d.controls[source][channel]
	if msb != MIDI_DATA_NOT_PROVIDED {
		ctrl.rpn = ctrl.rpn&0x00FF | uint16(msb)<<8
	}
	if lsb != MIDI_DATA_NOT_PROVIDED {
		ctrl.rpn = ctrl.rpn&0xFF00 | uint16(lsb)
	}
}

func (d *OPLDriver) volumeLocked(channel, volume, source uint8) {
	if d.controls[source][channel].volume == volume {
		return
	}
	d.controls[source][channel].volume = volume
	d.recalculateVolumesLocked(channel, source)
}

func (d *OPLDriver) expressionLocked(channel, expression, source uint8) {
	if d.controls[source][channel].expression == expression {
		return
	}
	d.controls[source][channel].expression = expression
	d.recalculateVolumesLocked(channel, source)
}

func (d *OPLDriver) panningLocked(channel, panning, source uint8) {
	if d.controls[source][channel].panning == panning {
		return
	}
	d.controls[source][channel].panning = panning

	if d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL {
		for i := range d.rhythmVoices {
			v := &d.rhythmVoices[i]
			if v.active && v.source == source {
				d.writePanningLocked(MIDI_UNMAPPED, OPLRhythmType(i+1))
			}
		}
		return
	}
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && v.channel == channel && v.source == source {
			d.writePanningLocked(oplChannel, RHYTHM_TYPE_UNDEFINED)
		}
	}
}

// sustainLocked turns the hold pedal on at 0x40 and above. Releasing it
// ends the notes it held.
func (d *OPLDriver) sustainLocked(channel, value, source uint8) {
	ctrl := &d.controls[source][channel]
	if value >= MIDI_SUSTAIN_THRESHOLD {
		ctrl.sustain = true
		return
	}
	if !ctrl.sustain {
		return
	}
	ctrl.sustain = false
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && v.sustained && v.channel == channel && v.source == source {
			d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, false)
		}
	}
}

func (d *OPLDriver) resetAllControllersLocked(channel, source uint8) {
	d.controls[source][channel].modulation = 0
	d.expressionLocked(channel, MIDI_EXPRESSION_DEFAULT, source)
	d.sustainLocked(channel, 0, source)
	d.registeredParameterNumberLocked(channel, MIDI_RPN_NULL>>8, MIDI_RPN_NULL&0xFF, source)
	d.controls[source][channel].pitchBend = MIDI_PITCH_BEND_DEFAULT
	d.recalculateFrequenciesLocked(channel, source)
}

// allNotesOffLocked sends a note off for each sounding note of the source
// channel, so notes under sustain keep ringing.
func (d *OPLDriver) allNotesOffLocked(channel, source uint8) {
	if d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL {
		for i := range d.rhythmVoices {
			v := &d.rhythmVoices[i]
			if v.active && v.source == source {
				d.noteOffLocked(channel, v.note, source)
			}
		}
		return
	}
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && !v.sustained && v.source == source && v.channel == channel {
			d.noteOffLocked(channel, v.note, source)
		}
	}
}

// stopAllNotesLocked keys off every voice. Melodic key-offs are forced so no
// note can hang.
func (d *OPLDriver) stopAllNotesLocked(force bool) {
	for _, oplChannel := range d.melodicChannels {
		d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, force)
	}
	if d.rhythmMode {
		for i := range d.rhythmVoices {
			d.rhythmVoices[i].active = false
		}
		d.writeRhythmLocked(force)
	}
}

// stopSourceNotesLocked keys off sounding notes immediately, ignoring
// sustain. 0xFF matches any source or channel.
func (d *OPLDriver) stopSourceNotesLocked(source, channel uint8) {
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && (source == MIDI_UNMAPPED || v.source == source) &&
			(channel == MIDI_UNMAPPED || v.channel == channel) {
			d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, false)
		}
	}
	if !d.rhythmMode || d.cfg.RhythmModeIgnoreNoteOffs ||
		(channel != MIDI_UNMAPPED && channel != MIDI_RHYTHM_CHANNEL) {
		return
	}
	changed := false
	for i := range d.rhythmVoices {
		v := &d.rhythmVoices[i]
		if v.active && (source == MIDI_UNMAPPED || v.source == source) {
			v.active = false
			changed = true
		}
	}
	if changed {
		d.writeRhythmLocked(false)
	}
}

// StopAllNotes keys off every note of a source channel, ignoring sustain.
// 0xFF matches any source or channel.
func (d *OPLDriver) StopAllNotes(source, channel uint8) {
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.stopSourceNotesLocked(source, channel)
}
