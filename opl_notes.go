// opl_notes.go - Note on/off, program change, pitch bend and voice register writes.

package main

// instrumentInfo is the instrument selected for a note.
type instrumentInfo struct {
	id      uint8 // program, or 0x80|note for rhythm bank instruments
	def     *InstrumentDefinition
	oplNote uint8
}

// melodic returns the instrument as played on a melodic channel. Rhythm
// instruments keep their operators but not their rhythm slot.
func (i instrumentInfo) melodic() instrumentInfo {
	if i.def == nil || i.def.RhythmType == RHYTHM_TYPE_UNDEFINED {
		return i
	}
	def := *i.def
	def.RhythmType = RHYTHM_TYPE_UNDEFINED
	i.def = &def
	return i
}

func validChannelSource(channel, source uint8) bool {
	return channel < MIDI_CHANNEL_COUNT && source < MAXIMUM_SOURCES
}

// lockVoices takes the locks a voice allocating operation needs and returns
// the matching unlock.
func (d *OPLDriver) lockVoices() func() {
	static := d.cfg.Allocation == ALLOCATION_MODE_STATIC
	if static {
		d.allocMu.Lock()
	}
	d.notesMu.Lock()
	return func() {
		d.notesMu.Unlock()
		if static {
			d.allocMu.Unlock()
		}
	}
}

// NoteOn starts a note. Notes without a usable instrument are dropped.
func (d *OPLDriver) NoteOn(channel, note, velocity, source uint8) {
	note &= 0x7F
	velocity &= 0x7F
	if velocity == 0 {
		d.NoteOff(channel, note, velocity, source)
		return
	}
	if !validChannelSource(channel, source) {
		return
	}
	unlock := d.lockVoices()
	defer unlock()
	if d.regs == nil {
		return
	}
	d.noteOnLocked(channel, note, velocity, source)
}

func (d *OPLDriver) noteOnLocked(channel, note, velocity, source uint8) {
	instrument := d.determineInstrumentLocked(channel, source, note)
	rhythmNote := d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL
	if instrument.def == nil || instrument.def.IsEmpty() ||
		(rhythmNote && instrument.def.RhythmType == RHYTHM_TYPE_UNDEFINED) {
		return
	}
	if !rhythmNote {
		instrument = instrument.melodic()
	}
	fourOp := instrument.def.FourOperator && !rhythmNote
	if fourOp && !d.fourOpPlayable() {
		d.logger.Debug("four operator instrument not playable", "instrument", instrument.id)
		return
	}

	oplChannel := MIDI_UNMAPPED
	var voice *oplVoice
	if rhythmNote {
		voice = &d.rhythmVoices[instrument.def.RhythmType-1]
	} else {
		// a repeated or sustained note retriggers its own voice
		oplChannel = d.findActiveVoiceLocked(channel, note, source)
		if oplChannel != MIDI_UNMAPPED && fourOp && oplFourOperatorPair(oplChannel) == 0 {
			d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, false)
			oplChannel = MIDI_UNMAPPED
		}
		if oplChannel == MIDI_UNMAPPED {
			if fourOp {
				oplChannel = d.allocateFourOpLocked(instrument.id)
			} else {
				oplChannel = d.allocateOPLChannelLocked(channel, source, instrument.id)
			}
		}
		if oplChannel == MIDI_UNMAPPED {
			return
		}
		voice = &d.voices[oplChannel]
	}

	if voice.active {
		d.writeKeyOffLocked(oplChannel, instrument.def.RhythmType, false)
	}
	if fourOp && d.voices[oplChannel+3].active {
		d.writeKeyOffLocked(oplChannel+3, RHYTHM_TYPE_UNDEFINED, false)
	}

	voice.active = true
	voice.sustained = false
	voice.note = note
	voice.velocity = velocity
	voice.channel = channel
	voice.source = source
	voice.oplNote = instrument.oplNote
	voice.counter = d.nextCounterLocked()
	voice.instrumentID = instrument.id
	voice.instrument = instrument.def

	// pairs switch operator mode on note on whatever the write mode
	if d.cfg.InstrumentWrite == INSTRUMENT_WRITE_MODE_NOTE_ON || fourOp ||
		(!rhythmNote && d.fourOpPairs&oplFourOperatorPair(oplChannel) != 0) {
		d.writeInstrumentLocked(oplChannel, instrument)
	}
	d.writeFrequencyLocked(oplChannel, instrument.def.RhythmType)
	if rhythmNote {
		d.writeRhythmLocked(false)
	}
}

// findActiveVoiceLocked returns the melodic OPL channel sounding the note, or
// MIDI_UNMAPPED.
func (d *OPLDriver) findActiveVoiceLocked(channel, note, source uint8) uint8 {
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && v.source == source && v.channel == channel && v.note == note {
			return oplChannel
		}
	}
	return MIDI_UNMAPPED
}

// NoteOff releases a note, or holds it while the channel's sustain is on.
func (d *OPLDriver) NoteOff(channel, note, velocity, source uint8) {
	if !validChannelSource(channel, source) {
		return
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	if d.regs == nil {
		return
	}
	d.noteOffLocked(channel, note&0x7F, source)
}

func (d *OPLDriver) noteOffLocked(channel, note, source uint8) {
	if d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL {
		if d.cfg.RhythmModeIgnoreNoteOffs {
			return
		}
		for i := range d.rhythmVoices {
			v := &d.rhythmVoices[i]
			if v.active && v.source == source && v.note == note {
				d.writeKeyOffLocked(MIDI_UNMAPPED, OPLRhythmType(i+1), false)
				break
			}
		}
		return
	}

	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && v.source == source && v.channel == channel && v.note == note {
			if d.controls[source][channel].sustain {
				v.sustained = true
			} else {
				d.writeKeyOffLocked(oplChannel, RHYTHM_TYPE_UNDEFINED, false)
			}
		}
	}
}

// ProgramChange selects the channel's program. In program change write mode
// it also claims a voice and writes the instrument to it.
func (d *OPLDriver) ProgramChange(channel, program, source uint8) {
	if !validChannelSource(channel, source) {
		return
	}
	unlock := d.lockVoices()
	defer unlock()
	d.controls[source][channel].program = program & 0x7F

	if d.regs == nil || d.cfg.InstrumentWrite != INSTRUMENT_WRITE_MODE_PROGRAM_CHANGE ||
		(d.rhythmMode && channel == MIDI_RHYTHM_CHANNEL) {
		return
	}
	instrument := d.determineInstrumentLocked(channel, source, 0)
	// four operator instruments are written when their pair is set up on note on
	if instrument.def == nil || instrument.def.IsEmpty() || instrument.def.FourOperator {
		return
	}
	oplChannel := d.allocateOPLChannelLocked(channel, source, instrument.id)
	if oplChannel == MIDI_UNMAPPED {
		return
	}
	voice := &d.voices[oplChannel]
	if voice.active {
		d.writeKeyOffLocked(oplChannel, instrument.def.RhythmType, false)
	}
	voice.channel = channel
	voice.source = source
	voice.instrumentID = instrument.id
	voice.instrument = instrument.def
	d.writeInstrumentLocked(oplChannel, instrument)
}

// PitchBend sets the channel's 14 bit bend and retunes its sounding notes.
func (d *OPLDriver) PitchBend(channel, lsb, msb, source uint8) {
	if !validChannelSource(channel, source) {
		return
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.controls[source][channel].pitchBend = uint16(msb&0x7F)<<7 | uint16(lsb&0x7F)
	if d.regs == nil {
		return
	}
	d.recalculateFrequenciesLocked(channel, source)
}

// PolyAftertouch and ChannelAftertouch are accepted and ignored, like the Win95 driver.
func (d *OPLDriver) PolyAftertouch(channel, note, pressure, source uint8) {}

func (d *OPLDriver) ChannelAftertouch(channel, pressure, source uint8) {}

func (d *OPLDriver) determineInstrumentLocked(channel, source, note uint8) instrumentInfo {
	if !d.cfg.Channel10Melodic && channel == MIDI_RHYTHM_CHANNEL {
		if note < d.bank.RhythmFirstNote || note > d.bank.RhythmLastNote {
			return instrumentInfo{}
		}
		def := &d.bank.Rhythm[note-d.bank.RhythmFirstNote]
		return instrumentInfo{id: 0x80 | note, def: def, oplNote: def.RhythmNote}
	}

	program := d.controls[source][channel].program
	if d.cfg.ProgramRemap != nil {
		program = d.cfg.ProgramRemap[program] & 0x7F
	}
	return instrumentInfo{id: program, def: &d.bank.Melodic[program], oplNote: note}
}

// nextCounterLocked returns a recency value that has not been handed out before.
func (d *OPLDriver) nextCounterLocked() uint32 {
	c := d.noteCounter
	d.noteCounter++
	return c
}

// writeInstrumentLocked writes the operator and channel registers of an
// instrument. Carrier levels include note and channel volume.
func (d *OPLDriver) writeInstrumentLocked(oplChannel uint8, instrument instrumentInfo) {
	def := instrument.def
	voice := d.voiceFor(oplChannel, def.RhythmType)
	voice.instrument = def

	for op := uint8(0); op < uint8(def.NumOperators()); op++ {
		offset := oplOperatorRegisterOffset(oplChannel, op, def.RhythmType, def.FourOperator)
		opDef := &def.Operators[op]
		d.writeRegister(OPL_REGISTER_BASE_FREQMULT_MISC+offset, opDef.FreqMultMisc, false)
		d.writeVolumeLocked(oplChannel, op, def.RhythmType)
		d.writeRegister(OPL_REGISTER_BASE_DECAY_ATTACK+offset, opDef.DecayAttack, false)
		d.writeRegister(OPL_REGISTER_BASE_RELEASE_SUSTAIN+offset, opDef.ReleaseSustain, false)
		d.writeRegister(OPL_REGISTER_BASE_WAVEFORMSELECT+offset, opDef.WaveformSelect, false)
	}
	if def.RhythmType == RHYTHM_TYPE_UNDEFINED {
		d.writeConnectionSelectLocked(oplChannel, def.FourOperator)
	}
	d.writePanningLocked(oplChannel, def.RhythmType)
}

// writeConnectionSelectLocked switches the pair starting at oplChannel
// between two and four operator mode.
func (d *OPLDriver) writeConnectionSelectLocked(oplChannel uint8, fourOp bool) {
	bit := oplFourOperatorPair(oplChannel)
	if bit == 0 || d.cfg.OPLType != OPL_TYPE_OPL3 {
		return
	}
	pairs := d.fourOpPairs &^ bit
	if fourOp {
		pairs |= bit
	}
	if pairs == d.fourOpPairs {
		return
	}
	d.fourOpPairs = pairs
	d.writeRegister(OPL3_REGISTER_CONNECTIONSELECT, pairs, false)
}

func (d *OPLDriver) voiceFor(oplChannel uint8, rhythmType OPLRhythmType) *oplVoice {
	if rhythmType != RHYTHM_TYPE_UNDEFINED {
		return &d.rhythmVoices[rhythmType-1]
	}
	return &d.voices[oplChannel]
}

// writeKeyOffLocked releases a voice. Melodic voices get their B0 register
// rewritten without the key-on bit; rhythm voices drop out of the rhythm
// register.
func (d *OPLDriver) writeKeyOffLocked(oplChannel uint8, rhythmType OPLRhythmType, force bool) {
	voice := d.voiceFor(oplChannel, rhythmType)
	if rhythmType == RHYTHM_TYPE_UNDEFINED {
		d.writeRegister(OPL_REGISTER_BASE_FNUMHIGH_BLOCK_KEYON+oplChannelRegisterOffset(oplChannel),
			uint8(voice.oplFrequency>>8)&OPL_MASK_FNUMHIGH_BLOCK, force)
	}
	voice.active = false
	voice.sustained = false
	voice.counter = d.nextCounterLocked()
	if rhythmType != RHYTHM_TYPE_UNDEFINED {
		d.writeRhythmLocked(false)
	}
}

func (d *OPLDriver) writeVolumeLocked(oplChannel, operatorNum uint8, rhythmType OPLRhythmType) {
	voice := d.voiceFor(oplChannel, rhythmType)
	def := voice.instrument
	offset := oplOperatorRegisterOffset(oplChannel, operatorNum, rhythmType, def.FourOperator)
	level := d.calculateVolumeLocked(voice.channel, voice.source, voice.velocity, def, operatorNum)
	// keep the key scaling level bits
	d.writeRegister(OPL_REGISTER_BASE_LEVEL+offset, level|def.Operators[operatorNum].Level&^OPL_MASK_LEVEL, false)
}

func (d *OPLDriver) writePanningLocked(oplChannel uint8, rhythmType OPLRhythmType) {
	voice := d.voiceFor(oplChannel, rhythmType)
	if rhythmType != RHYTHM_TYPE_UNDEFINED {
		oplChannel = oplRhythmChannels[rhythmType-1]
	}
	def := voice.instrument
	offset := oplChannelRegisterOffset(oplChannel)
	panning := d.calculatePanningLocked(voice.channel, voice.source)

	d.writeRegister(OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING+offset,
		panning|def.ConnectionFeedback0&^OPL_MASK_PANNING, false)
	if def.FourOperator {
		d.writeRegister(OPL_REGISTER_BASE_CONNECTION_FEEDBACK_PANNING+offset+3,
			panning|def.ConnectionFeedback1&^OPL_MASK_PANNING, false)
	}
}

// recalculateVolumesLocked rewrites operator levels of sounding notes.
// 0xFF matches any channel or source.
func (d *OPLDriver) recalculateVolumesLocked(channel, source uint8) {
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.active && (channel == MIDI_UNMAPPED || v.channel == channel) &&
			(source == MIDI_UNMAPPED || v.source == source) {
			for op := uint8(0); op < uint8(v.instrument.NumOperators()); op++ {
				d.writeVolumeLocked(oplChannel, op, RHYTHM_TYPE_UNDEFINED)
			}
		}
	}
	if !d.rhythmMode || (channel != MIDI_UNMAPPED && channel != MIDI_RHYTHM_CHANNEL) {
		return
	}
	for i := range d.rhythmVoices {
		v := &d.rhythmVoices[i]
		if v.active && (source == MIDI_UNMAPPED || v.source == source) {
			for op := uint8(0); op < uint8(v.instrument.NumOperators()); op++ {
				d.writeVolumeLocked(MIDI_UNMAPPED, op, OPLRhythmType(i+1))
			}
		}
	}
}

// writeRegister writes through the shadow cache. Writes on a closed driver are dropped.
func (d *OPLDriver) writeRegister(reg uint16, value uint8, force bool) {
	if d.regs == nil {
		return
	}
	d.regs.Write(reg, value, force)
}
