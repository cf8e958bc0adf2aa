// smf_feeder.go - Standard MIDI File loading and playback into the driver.

package main

import (
	"bytes"
	"sort"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	compiledFeatures = append(compiledFeatures, "input:smf")
}

const smfDefaultBPM = 120.0

// scheduledEvent is a MIDI message for a source at an absolute song time.
// A nil Message marks the end of the source's stream.
type scheduledEvent struct {
	At      time.Duration
	Source  int
	Message midi.Message
	order   int
}

type smfTrackEvent struct {
	tick  uint64
	track int
	index int
	msg   smf.Message
}

// loadSMFEvents reads a MIDI file and returns its channel and sysex
// messages in time order, followed by an end of stream marker.
func loadSMFEvents(path string, source int) ([]scheduledEvent, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read midi file %s", path)
	}
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.Errorf("%s: SMPTE time format not supported", path)
	}

	// merge the tracks on absolute ticks; ties keep track order
	var merged []smfTrackEvent
	for t, track := range s.Tracks {
		var abs uint64
		for i, ev := range track {
			abs += uint64(ev.Delta)
			merged = append(merged, smfTrackEvent{tick: abs, track: t, index: i, msg: ev.Message})
		}
	}
	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].tick != merged[b].tick {
			return merged[a].tick < merged[b].tick
		}
		if merged[a].track != merged[b].track {
			return merged[a].track < merged[b].track
		}
		return merged[a].index < merged[b].index
	})

	bpm := smfDefaultBPM
	var at time.Duration
	var lastTick uint64
	events := make([]scheduledEvent, 0, len(merged)+1)
	for _, ev := range merged {
		if ev.tick > lastTick {
			at += ticks.Duration(bpm, uint32(ev.tick-lastTick))
			lastTick = ev.tick
		}
		var tempo float64
		if ev.msg.GetMetaTempo(&tempo) {
			if tempo > 0 {
				bpm = tempo
			}
			continue
		}
		if ev.msg.IsMeta() || len(ev.msg) == 0 {
			continue
		}
		events = append(events, scheduledEvent{At: at, Source: source, Message: smfToMIDIMessage(ev.msg)})
	}
	events = append(events, scheduledEvent{At: at, Source: source})
	return events, nil
}

// smfToMIDIMessage converts a track message for the driver. System
// exclusive events stored with their SMF length prefix are reframed as
// F0 <data> F7.
func smfToMIDIMessage(msg smf.Message) midi.Message {
	raw := []byte(msg)
	if raw[0] != 0xF0 && raw[0] != 0xF7 {
		return midi.Message(raw)
	}
	length, n := 0, 1
	for n < len(raw) && n <= 4 {
		length = length<<7 | int(raw[n]&0x7F)
		n++
		if raw[n-1]&0x80 == 0 {
			break
		}
	}
	if length != len(raw)-n {
		return midi.Message(raw)
	}
	return midi.SysEx(bytes.TrimSuffix(raw[n:], []byte{0xF7}))
}

// mergeSchedules interleaves several sources' events by time. Events at the
// same time keep source order.
func mergeSchedules(schedules ...[]scheduledEvent) []scheduledEvent {
	var all []scheduledEvent
	n := 0
	for _, sched := range schedules {
		for _, ev := range sched {
			ev.order = n
			n++
			all = append(all, ev)
		}
	}
	sort.SliceStable(all, func(a, b int) bool {
		if all[a].At != all[b].At {
			return all[a].At < all[b].At
		}
		return all[a].order < all[b].order
	})
	return all
}

// clockAdvancer moves the chip's notion of time forward.
type clockAdvancer interface {
	Advance(d time.Duration)
}

// playSchedule feeds events to the driver, advancing clock between them.
// End markers deinitialize their source.
func playSchedule(driver *OPLDriver, clock clockAdvancer, events []scheduledEvent) time.Duration {
	var now time.Duration
	for _, ev := range events {
		if ev.At > now {
			clock.Advance(ev.At - now)
			now = ev.At
		}
		if ev.Message == nil {
			driver.MetaEvent(ev.Source, MIDI_META_END_OF_TRACK, nil)
			continue
		}
		driver.Send(ev.Source, ev.Message)
	}
	return now
}
