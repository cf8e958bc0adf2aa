// opl_allocator.go - OPL channel allocation for melodic notes.

package main

import "math"

// allocateOPLChannelLocked picks the OPL channel for a new note or program.
// It returns 0xFF when no channel can be used, which only happens in static
// mode once every melodic channel is claimed. Static mode needs allocMu held.
func (d *OPLDriver) allocateOPLChannelLocked(channel, source, instrumentID uint8) uint8 {
	if d.cfg.Allocation == ALLOCATION_MODE_STATIC {
		return d.allocateStaticLocked(channel, source)
	}

	// Preference: never used, then the longest released, then the oldest
	// note on the same instrument, then the oldest note.
	unused, inactive, sameInstrument, oldest := MIDI_UNMAPPED, MIDI_UNMAPPED, MIDI_UNMAPPED, MIDI_UNMAPPED
	inactiveCounter := uint32(math.MaxUint32)
	sameInstrumentCounter := uint32(math.MaxUint32)
	oldestCounter := uint32(math.MaxUint32)

	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.allocated || d.fourOpPartnerLocked(oplChannel) {
			continue
		}
		if v.counter == 0 {
			unused = oplChannel
			break
		}
		if !v.active {
			if v.counter < inactiveCounter {
				inactiveCounter = v.counter
				inactive = oplChannel
			}
			continue
		}
		if v.instrumentID == instrumentID && v.counter < sameInstrumentCounter {
			sameInstrumentCounter = v.counter
			sameInstrument = oplChannel
		}
		if v.counter < oldestCounter {
			oldestCounter = v.counter
			oldest = oplChannel
		}
	}

	return preferredChannel(unused, inactive, sameInstrument, oldest)
}

func preferredChannel(unused, inactive, sameInstrument, oldest uint8) uint8 {
	switch {
	case unused != MIDI_UNMAPPED:
		return unused
	case inactive != MIDI_UNMAPPED:
		return inactive
	case sameInstrument != MIDI_UNMAPPED:
		return sameInstrument
	}
	return oldest
}

// fourOpPlayable reports whether four operator instruments can be placed.
// Static claims hand out single channels, so only dynamic OPL3 allocation
// pairs them.
func (d *OPLDriver) fourOpPlayable() bool {
	return d.cfg.OPLType == OPL_TYPE_OPL3 && d.cfg.Allocation == ALLOCATION_MODE_DYNAMIC
}

// fourOpPartnerLocked reports whether oplChannel is the second channel of a
// pair currently in four operator mode.
func (d *OPLDriver) fourOpPartnerLocked(oplChannel uint8) bool {
	return oplChannel%9 >= 3 && d.fourOpPairs&oplFourOperatorPair(oplChannel-3) != 0
}

// allocateFourOpLocked picks the first channel of an OPL3 four operator
// pair, using the two operator preference order. A pair is unused when
// neither channel has been used and is as old as its newest note.
func (d *OPLDriver) allocateFourOpLocked(instrumentID uint8) uint8 {
	unused, inactive, sameInstrument, oldest := MIDI_UNMAPPED, MIDI_UNMAPPED, MIDI_UNMAPPED, MIDI_UNMAPPED
	inactiveCounter := uint32(math.MaxUint32)
	sameInstrumentCounter := uint32(math.MaxUint32)
	oldestCounter := uint32(math.MaxUint32)

	for _, first := range d.melodicChannels {
		if oplFourOperatorPair(first) == 0 {
			continue
		}
		a, b := &d.voices[first], &d.voices[first+3]
		if a.counter == 0 && b.counter == 0 {
			unused = first
			break
		}
		counter := max(a.counter, b.counter)
		if !a.active && !b.active {
			if counter < inactiveCounter {
				inactiveCounter = counter
				inactive = first
			}
			continue
		}
		if a.active && a.instrument.FourOperator && a.instrumentID == instrumentID &&
			counter < sameInstrumentCounter {
			sameInstrumentCounter = counter
			sameInstrument = first
		}
		if counter < oldestCounter {
			oldestCounter = counter
			oldest = first
		}
	}
	return preferredChannel(unused, inactive, sameInstrument, oldest)
}

// allocateStaticLocked returns the channel claimed by the source channel,
// claiming the first free melodic channel on first use.
func (d *OPLDriver) allocateStaticLocked(channel, source uint8) uint8 {
	if claimed := d.allocations[source][channel]; claimed != MIDI_UNMAPPED {
		return claimed
	}
	for _, oplChannel := range d.melodicChannels {
		v := &d.voices[oplChannel]
		if v.allocated {
			continue
		}
		v.allocated = true
		v.source = source
		v.channel = channel
		d.allocations[source][channel] = oplChannel
		return oplChannel
	}
	d.logger.Debug("no free opl channel", "source", source, "channel", channel)
	return MIDI_UNMAPPED
}
