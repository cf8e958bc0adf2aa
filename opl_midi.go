// opl_midi.go - Raw MIDI message dispatch into the OPL driver.

package main

import (
	"gitlab.com/gomidi/midi/v2"
)

// Send decodes one MIDI message from source and dispatches it. Source -1
// (MIDI_SOURCE_ALL) sends note messages as source 0 and everything else to
// every source. System exclusive messages go to SysEx; other system
// messages are not handled here.
func (d *OPLDriver) Send(source int, msg midi.Message) {
	if len(msg) == 0 {
		return
	}
	if source == MIDI_SOURCE_ALL {
		command := msg[0] & 0xF0
		if command == MIDI_COMMAND_NOTE_ON || command == MIDI_COMMAND_NOTE_OFF {
			d.Send(0, msg)
			return
		}
		if command != MIDI_COMMAND_SYSTEM {
			for s := 0; s < MAXIMUM_SOURCES; s++ {
				d.Send(s, msg)
			}
			return
		}
	} else if source < 0 || source >= MAXIMUM_SOURCES {
		d.logger.Warn("midi message for unknown source", "source", source, "msg", msg.String())
		return
	}
	src := uint8(max(source, 0))

	var channel, key, velocity, controller, value, program, pressure uint8
	var relative int16
	var absolute uint16
	var sysex []byte
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		d.NoteOn(channel, key, velocity, src)
	case msg.GetNoteOff(&channel, &key, &velocity):
		d.NoteOff(channel, key, velocity, src)
	case msg.GetPolyAfterTouch(&channel, &key, &pressure):
		d.PolyAftertouch(channel, key, pressure, src)
	case msg.GetControlChange(&channel, &controller, &value):
		d.ControlChange(channel, controller, value, src)
	case msg.GetProgramChange(&channel, &program):
		d.ProgramChange(channel, program, src)
	case msg.GetAfterTouch(&channel, &pressure):
		d.ChannelAftertouch(channel, pressure, src)
	case msg.GetPitchBend(&channel, &relative, &absolute):
		d.PitchBend(channel, uint8(absolute&0x7F), uint8(absolute>>7), src)
	case msg.GetSysEx(&sysex):
		d.SysEx(sysex)
	case msg[0] >= MIDI_COMMAND_SYSTEM:
		d.logger.Warn("system message not supported", "source", source, "msg", msg.String())
	default:
		d.logger.Warn("unknown midi command", "source", source, "status", msg[0])
	}
}
