// voice_monitor.go - Voice state snapshots and the end of run voice table.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// VoiceStatus is a copy of one OPL voice's state.
type VoiceStatus struct {
	OPLChannel uint8 // 0xFF for rhythm instruments
	Rhythm     OPLRhythmType
	Active     bool
	Sustained  bool
	Allocated  bool
	Source     uint8
	Channel    uint8
	Note       uint8
	Velocity   uint8
	Instrument uint8
	Frequency  uint16
	Counter    uint32
}

func voiceStatus(v *oplVoice, oplChannel uint8, rhythm OPLRhythmType) VoiceStatus {
	return VoiceStatus{
		OPLChannel: oplChannel,
		Rhythm:     rhythm,
		Active:     v.active,
		Sustained:  v.sustained,
		Allocated:  v.allocated,
		Source:     v.source,
		Channel:    v.channel,
		Note:       v.note,
		Velocity:   v.velocity,
		Instrument: v.instrumentID,
		Frequency:  v.oplFrequency,
		Counter:    v.counter,
	}
}

// Voices returns the melodic voices of the configured chip followed by the
// rhythm instruments when rhythm mode is on.
func (d *OPLDriver) Voices() []VoiceStatus {
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	n := d.numChannels()
	out := make([]VoiceStatus, 0, int(n)+OPL_NUM_RHYTHM_INSTRUMENTS)
	for ch := uint8(0); ch < n; ch++ {
		out = append(out, voiceStatus(&d.voices[ch], ch, RHYTHM_TYPE_UNDEFINED))
	}
	if d.rhythmMode {
		for i := range d.rhythmVoices {
			out = append(out, voiceStatus(&d.rhythmVoices[i], MIDI_UNMAPPED, OPLRhythmType(i+1)))
		}
	}
	return out
}

// terminalWidth returns stdout's width, or 0 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

const voiceTableWideColumns = 100

// printVoiceSummary prints one line per voice that has been used. Wide
// output adds the frequency word and allocation counter.
func printVoiceSummary(w io.Writer, voices []VoiceStatus, wide bool) {
	fmt.Fprintln(w, "Voices:")
	used := 0
	for _, v := range voices {
		if v.Channel == MIDI_UNMAPPED {
			continue
		}
		used++
		name := fmt.Sprintf("ch%-2d", v.OPLChannel)
		if v.Rhythm != RHYTHM_TYPE_UNDEFINED {
			name = v.Rhythm.String()
		}
		var flags []string
		if v.Active {
			flags = append(flags, "on")
		}
		if v.Sustained {
			flags = append(flags, "sus")
		}
		if v.Allocated {
			flags = append(flags, "alloc")
		}
		state := strings.Join(flags, ",")
		if state == "" {
			state = "off"
		}
		line := fmt.Sprintf("  %-10s src %d midi %2d note %3d vel %3d prog %3d %s",
			name, v.Source, v.Channel, v.Note, v.Velocity, v.Instrument, state)
		if wide {
			line += fmt.Sprintf("  fnum 0x%03X block %d counter %d",
				v.Frequency&OPL_FREQUENCY_MAX_FNUM, v.Frequency>>10, v.Counter)
		}
		fmt.Fprintln(w, line)
	}
	if used == 0 {
		fmt.Fprintln(w, "  (none used)")
	}
}
