// lua_script.go - Lua scripted event feeder for the OPL driver.

/*
 Scripts drive the driver directly:

   rhythm(true)
   program(0, 0, 19)
   cc(0, 0, 7, 100)
   note_on(0, 0, 60, 100)
   wait(500)
   note_off(0, 0, 60)
   fade(0, 1000, 0)
   wait(1000)
   end_source(0)

 Source -1 broadcasts like Send does. wait() advances the chip clock.
*/

package main

import (
	"time"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"gitlab.com/gomidi/midi/v2"
)

func init() {
	compiledFeatures = append(compiledFeatures, "input:lua")
}

type luaFeeder struct {
	driver  *OPLDriver
	clock   clockAdvancer
	elapsed time.Duration
}

func newLuaFeeder(driver *OPLDriver, clock clockAdvancer) *luaFeeder {
	return &luaFeeder{driver: driver, clock: clock}
}

func (f *luaFeeder) newState() *lua.LState {
	L := lua.NewState()
	funcs := map[string]lua.LGFunction{
		"note_on":       f.luaNoteOn,
		"note_off":      f.luaNoteOff,
		"cc":            f.luaControlChange,
		"program":       f.luaProgram,
		"bend":          f.luaBend,
		"sysex":         f.luaSysEx,
		"gm_reset":      f.luaGMReset,
		"rhythm":        f.luaRhythm,
		"panic":         f.luaPanic,
		"wait":          f.luaWait,
		"source_volume": f.luaSourceVolume,
		"fade":          f.luaFade,
		"end_source":    f.luaEndSource,
		"user_volume":   f.luaUserVolume,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
	return L
}

// RunFile executes a script file.
func (f *luaFeeder) RunFile(path string) error {
	L := f.newState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return errors.Wrapf(err, "run script %s", path)
	}
	return nil
}

func (f *luaFeeder) RunString(src string) error {
	L := f.newState()
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return errors.Wrap(err, "run script")
	}
	return nil
}

func (f *luaFeeder) Elapsed() time.Duration {
	return f.elapsed
}

func checkSource(L *lua.LState, n int) int {
	src := L.CheckInt(n)
	if src < MIDI_SOURCE_ALL || src >= MAXIMUM_SOURCES {
		L.ArgError(n, "source out of range")
	}
	return src
}

func checkRange(L *lua.LState, n, lo, hi int) uint8 {
	v := L.CheckInt(n)
	if v < lo || v > hi {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func checkData(L *lua.LState, n int) uint8 {
	return checkRange(L, n, 0, 127)
}

func checkChannel(L *lua.LState, n int) uint8 {
	return checkRange(L, n, 0, MIDI_CHANNEL_COUNT-1)
}

func (f *luaFeeder) luaNoteOn(L *lua.LState) int {
	src := checkSource(L, 1)
	f.driver.Send(src, midi.NoteOn(checkChannel(L, 2), checkData(L, 3), checkData(L, 4)))
	return 0
}

func (f *luaFeeder) luaNoteOff(L *lua.LState) int {
	src := checkSource(L, 1)
	ch, key := checkChannel(L, 2), checkData(L, 3)
	velocity := uint8(L.OptInt(4, 0) & 0x7F)
	f.driver.Send(src, midi.NoteOffVelocity(ch, key, velocity))
	return 0
}

func (f *luaFeeder) luaControlChange(L *lua.LState) int {
	src := checkSource(L, 1)
	f.driver.Send(src, midi.ControlChange(checkChannel(L, 2), checkData(L, 3), checkData(L, 4)))
	return 0
}

func (f *luaFeeder) luaProgram(L *lua.LState) int {
	src := checkSource(L, 1)
	f.driver.Send(src, midi.ProgramChange(checkChannel(L, 2), checkData(L, 3)))
	return 0
}

// bend(src, ch, value) takes the 14 bit value, 8192 is center.
func (f *luaFeeder) luaBend(L *lua.LState) int {
	src := checkSource(L, 1)
	ch := checkChannel(L, 2)
	value := L.CheckInt(3)
	if value < 0 || value > 0x3FFF {
		L.ArgError(3, "bend out of range")
	}
	f.driver.Send(src, midi.Pitchbend(ch, int16(value-MIDI_PITCH_BEND_DEFAULT)))
	return 0
}

// sysex(b1, b2, ...) sends the data bytes between F0 and F7.
func (f *luaFeeder) luaSysEx(L *lua.LState) int {
	data := make([]byte, 0, L.GetTop())
	for n := 1; n <= L.GetTop(); n++ {
		data = append(data, checkData(L, n))
	}
	f.driver.Send(MIDI_SOURCE_ALL, midi.SysEx(data))
	return 0
}

func (f *luaFeeder) luaGMReset(L *lua.LState) int {
	f.driver.Send(MIDI_SOURCE_ALL, midi.SysEx([]byte{MIDI_SYSEX_UNIVERSAL_NON_REALTIME, 0x7F, MIDI_SYSEX_GENERAL_MIDI, MIDI_SYSEX_GM_SYSTEM_ON}))
	return 0
}

func (f *luaFeeder) luaRhythm(L *lua.LState) int {
	f.driver.SetRhythmMode(L.CheckBool(1))
	return 0
}

// panic([src]) silences one source, or all of them.
func (f *luaFeeder) luaPanic(L *lua.LState) int {
	src := L.OptInt(1, MIDI_SOURCE_ALL)
	if src == MIDI_SOURCE_ALL {
		f.driver.StopAllNotes(MIDI_UNMAPPED, MIDI_UNMAPPED)
		return 0
	}
	if src < 0 || src >= MAXIMUM_SOURCES {
		L.ArgError(1, "source out of range")
	}
	f.driver.StopAllNotes(uint8(src), MIDI_UNMAPPED)
	return 0
}

// wait(ms)
func (f *luaFeeder) luaWait(L *lua.LState) int {
	ms := L.CheckNumber(1)
	if ms < 0 {
		L.ArgError(1, "negative wait")
	}
	d := time.Duration(float64(ms) * float64(time.Millisecond))
	f.clock.Advance(d)
	f.elapsed += d
	return 0
}

func (f *luaFeeder) luaSourceVolume(L *lua.LState) int {
	src := checkRange(L, 1, 0, MAXIMUM_SOURCES-1)
	volume := checkRange16(L, 2)
	if err := f.driver.SetSourceVolume(src, volume); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// fade(src, ms, target)
func (f *luaFeeder) luaFade(L *lua.LState) int {
	src := checkRange(L, 1, 0, MAXIMUM_SOURCES-1)
	ms := L.CheckInt(2)
	target := checkRange16(L, 3)
	if err := f.driver.StartFade(src, time.Duration(ms)*time.Millisecond, target); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (f *luaFeeder) luaEndSource(L *lua.LState) int {
	src := checkRange(L, 1, 0, MAXIMUM_SOURCES-1)
	f.driver.MetaEvent(int(src), MIDI_META_END_OF_TRACK, nil)
	return 0
}

// user_volume(music, sfx[, mute]) also turns user volume scaling on.
func (f *luaFeeder) luaUserVolume(L *lua.LState) int {
	music := checkRange16(L, 1)
	sfx := checkRange16(L, 2)
	mute := L.OptBool(3, false)
	f.driver.SetUserVolumeScaling(true)
	f.driver.SetUserVolume(music, sfx, mute)
	return 0
}

func checkRange16(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xFFFF {
		L.ArgError(n, "value out of range")
	}
	return uint16(v)
}
