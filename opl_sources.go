// opl_sources.go - Per source volume, fades, user volume and the timer callback.

package main

import (
	"time"

	"github.com/pkg/errors"
)

type midiSource struct {
	sourceType    SourceType
	volume        uint16
	neutralVolume uint16

	fadeStartVolume uint16
	fadeEndVolume   uint16
	fadePassed      int64 // microseconds
	fadeDuration    int64 // microseconds, 0 when not fading
}

func (s *midiSource) init() {
	*s = midiSource{
		volume:        MIDI_VOLUME_NEUTRAL_DEFAULT,
		neutralVolume: MIDI_VOLUME_NEUTRAL_DEFAULT,
	}
}

func validSource(source uint8) error {
	if source >= MAXIMUM_SOURCES {
		return errors.Errorf("source %d out of range (max %d)", source, MAXIMUM_SOURCES-1)
	}
	return nil
}

// SetSourceType selects whether the music or sfx user volume scales a source.
func (d *OPLDriver) SetSourceType(source uint8, sourceType SourceType) error {
	if err := validSource(source); err != nil {
		return err
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.sources[source].sourceType = sourceType
	d.recalculateVolumesLocked(MIDI_UNMAPPED, source)
	return nil
}

// SetSourceVolume sets a source's volume relative to its neutral volume.
// Volumes above neutral make notes louder, up to the chip maximum.
func (d *OPLDriver) SetSourceVolume(source uint8, volume uint16) error {
	if err := validSource(source); err != nil {
		return err
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.sources[source].volume = volume
	d.recalculateVolumesLocked(MIDI_UNMAPPED, source)
	return nil
}

func (d *OPLDriver) SetSourceNeutralVolume(source uint8, volume uint16) error {
	if err := validSource(source); err != nil {
		return err
	}
	if volume == 0 {
		return errors.New("neutral volume must be positive")
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.sources[source].neutralVolume = volume
	d.recalculateVolumesLocked(MIDI_UNMAPPED, source)
	return nil
}

func (d *OPLDriver) SourceVolume(source uint8) uint16 {
	if source >= MAXIMUM_SOURCES {
		return 0
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	return d.sources[source].volume
}

// StartFade moves a source's volume linearly to target over duration,
// advanced by the chip timer.
func (d *OPLDriver) StartFade(source uint8, duration time.Duration, target uint16) error {
	if err := validSource(source); err != nil {
		return err
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	s := &d.sources[source]
	s.fadeStartVolume = s.volume
	s.fadeEndVolume = target
	s.fadePassed = 0
	s.fadeDuration = duration.Microseconds()
	if s.fadeDuration <= 0 {
		s.fadeDuration = 0
		s.volume = target
		d.recalculateVolumesLocked(MIDI_UNMAPPED, source)
	}
	return nil
}

// AbortFade stops a running fade, leaving the volume selected by abortType.
func (d *OPLDriver) AbortFade(source uint8, abortType FadeAbortType) {
	if source >= MAXIMUM_SOURCES {
		return
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.abortFadeLocked(source, abortType)
}

func (d *OPLDriver) abortFadeLocked(source uint8, abortType FadeAbortType) {
	s := &d.sources[source]
	if s.fadeDuration == 0 {
		return
	}
	s.fadeDuration = 0
	switch abortType {
	case FADE_ABORT_TYPE_END_VOLUME:
		s.volume = s.fadeEndVolume
	case FADE_ABORT_TYPE_START_VOLUME:
		s.volume = s.fadeStartVolume
	}
	d.recalculateVolumesLocked(MIDI_UNMAPPED, source)
}

func (d *OPLDriver) IsFading(source uint8) bool {
	if source >= MAXIMUM_SOURCES {
		return false
	}
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	return d.sources[source].fadeDuration > 0
}

func (d *OPLDriver) updateFadesLocked() {
	for i := range d.sources {
		s := &d.sources[i]
		if s.fadeDuration == 0 {
			continue
		}
		s.fadePassed += int64(d.timerRate)
		if s.fadePassed >= s.fadeDuration {
			s.volume = s.fadeEndVolume
			s.fadeDuration = 0
		} else {
			delta := int64(s.fadeEndVolume) - int64(s.fadeStartVolume)
			s.volume = uint16(int64(s.fadeStartVolume) + delta*s.fadePassed/s.fadeDuration)
		}
		d.recalculateVolumesLocked(MIDI_UNMAPPED, uint8(i))
	}
}

// SetUserVolume sets the player's music and sound effect volumes (0-256)
// and mute. They only apply while user volume scaling is on.
func (d *OPLDriver) SetUserVolume(music, sfx uint16, mute bool) {
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.userMusicVolume = min(music, MIDI_USER_VOLUME_MAX)
	d.userSfxVolume = min(sfx, MIDI_USER_VOLUME_MAX)
	d.userMute = mute
	d.recalculateVolumesLocked(MIDI_UNMAPPED, MIDI_UNMAPPED)
}

func (d *OPLDriver) SetUserVolumeScaling(enabled bool) {
	d.notesMu.Lock()
	defer d.notesMu.Unlock()
	d.userScaling = enabled
	d.recalculateVolumesLocked(MIDI_UNMAPPED, MIDI_UNMAPPED)
}

// SetTimerCallback installs a function run on every chip timer tick, after
// fades are advanced.
func (d *OPLDriver) SetTimerCallback(callback func()) {
	d.notesMu.Lock()
	d.timerCallback = callback
	d.notesMu.Unlock()
}

// onTimer is called by the chip backend at the configured timer frequency.
func (d *OPLDriver) onTimer() {
	d.notesMu.Lock()
	d.updateFadesLocked()
	callback := d.timerCallback
	d.notesMu.Unlock()

	if callback != nil {
		callback()
	}
}
