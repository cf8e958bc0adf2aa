// config.go - oplmidi configuration: TOML file and command line option parsing.

package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileConfig mirrors the TOML configuration file.
//
//	chip = "opl3"
//	accuracy = "gm"
//	allocation = "static"
//	instrument_write = "program-change"
//	rhythm = true
//	default_volume = 100
//	melodic_bank = "game.ibk"
//	[program_remap]
//	"0" = 5
type fileConfig struct {
	Chip                string         `toml:"chip"`
	Accuracy            string         `toml:"accuracy"`
	Allocation          string         `toml:"allocation"`
	InstrumentWrite     string         `toml:"instrument_write"`
	Rhythm              bool           `toml:"rhythm"`
	IgnoreRhythmNoteOff bool           `toml:"ignore_rhythm_noteoff"`
	Channel10Melodic    bool           `toml:"channel10_melodic"`
	DefaultVolume       int            `toml:"default_volume"`
	ModulationDepth     string         `toml:"modulation_depth"`
	VibratoDepth        string         `toml:"vibrato_depth"`
	NoteSelect          int            `toml:"note_select"`
	TimerFrequency      int            `toml:"timer_frequency"`
	MelodicBank         string         `toml:"melodic_bank"`
	ProgramRemap        map[string]int `toml:"program_remap"`
	SourceVolumes       []int          `toml:"source_volumes"`
	Debug               bool           `toml:"debug"`
}

// playerConfig is everything the oplmidi command needs to run.
type playerConfig struct {
	Driver        OPLDriverConfig
	Rhythm        bool
	MelodicBank   string
	SourceVolumes []int
	Debug         bool
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{Driver: DefaultOPLDriverConfig()}
}

// loadConfigFile applies a TOML file on top of cfg. Only keys present in
// the file change cfg.
func loadConfigFile(path string, cfg *playerConfig) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown config keys", "file", path, "keys", undecoded)
	}

	if meta.IsDefined("chip") {
		if cfg.Driver.OPLType, err = parseOPLType(fc.Chip); err != nil {
			return err
		}
	}
	if meta.IsDefined("accuracy") {
		if cfg.Driver.Accuracy, err = parseAccuracyMode(fc.Accuracy); err != nil {
			return err
		}
	}
	if meta.IsDefined("allocation") {
		if cfg.Driver.Allocation, err = parseAllocationMode(fc.Allocation); err != nil {
			return err
		}
	}
	if meta.IsDefined("instrument_write") {
		if cfg.Driver.InstrumentWrite, err = parseInstrumentWriteMode(fc.InstrumentWrite); err != nil {
			return err
		}
	}
	if meta.IsDefined("modulation_depth") {
		if cfg.Driver.ModulationDepth, err = parseModulationDepth(fc.ModulationDepth); err != nil {
			return err
		}
	}
	if meta.IsDefined("vibrato_depth") {
		if cfg.Driver.VibratoDepth, err = parseModulationDepth(fc.VibratoDepth); err != nil {
			return err
		}
	}
	if meta.IsDefined("default_volume") {
		if cfg.Driver.DefaultChannelVolume, err = parseMIDIValue("default_volume", fc.DefaultVolume); err != nil {
			return err
		}
	}
	if meta.IsDefined("note_select") {
		if fc.NoteSelect != 0 && fc.NoteSelect != 1 {
			return errors.Errorf("note_select must be 0 or 1, got %d", fc.NoteSelect)
		}
		cfg.Driver.NoteSelect = uint8(fc.NoteSelect)
	}
	if meta.IsDefined("timer_frequency") {
		if fc.TimerFrequency <= 0 {
			return errors.Errorf("timer_frequency must be positive, got %d", fc.TimerFrequency)
		}
		cfg.Driver.TimerFrequency = fc.TimerFrequency
	}
	if meta.IsDefined("program_remap") {
		remap, err := parseProgramRemap(fc.ProgramRemap)
		if err != nil {
			return err
		}
		cfg.Driver.ProgramRemap = remap
	}
	if meta.IsDefined("rhythm") {
		cfg.Rhythm = fc.Rhythm
	}
	if meta.IsDefined("ignore_rhythm_noteoff") {
		cfg.Driver.RhythmModeIgnoreNoteOffs = fc.IgnoreRhythmNoteOff
	}
	if meta.IsDefined("channel10_melodic") {
		cfg.Driver.Channel10Melodic = fc.Channel10Melodic
	}
	if meta.IsDefined("melodic_bank") {
		cfg.MelodicBank = fc.MelodicBank
	}
	if meta.IsDefined("source_volumes") {
		cfg.SourceVolumes = fc.SourceVolumes
	}
	if meta.IsDefined("debug") {
		cfg.Debug = fc.Debug
	}
	return nil
}

func parseOPLType(s string) (OPLType, error) {
	switch strings.ToLower(s) {
	case "opl2":
		return OPL_TYPE_OPL2, nil
	case "dualopl2", "dual-opl2":
		return OPL_TYPE_DUAL_OPL2, nil
	case "opl3":
		return OPL_TYPE_OPL3, nil
	}
	return 0, errors.Errorf("unknown chip %q (want opl2, dualopl2 or opl3)", s)
}

func parseAccuracyMode(s string) (AccuracyMode, error) {
	switch strings.ToLower(s) {
	case "sb16", "win95":
		return ACCURACY_MODE_SB16_WIN95, nil
	case "gm":
		return ACCURACY_MODE_GM, nil
	}
	return 0, errors.Errorf("unknown accuracy mode %q (want sb16 or gm)", s)
}

func parseAllocationMode(s string) (ChannelAllocationMode, error) {
	switch strings.ToLower(s) {
	case "dynamic":
		return ALLOCATION_MODE_DYNAMIC, nil
	case "static":
		return ALLOCATION_MODE_STATIC, nil
	}
	return 0, errors.Errorf("unknown allocation mode %q (want dynamic or static)", s)
}

func parseInstrumentWriteMode(s string) (InstrumentWriteMode, error) {
	switch strings.ToLower(s) {
	case "note-on", "noteon":
		return INSTRUMENT_WRITE_MODE_NOTE_ON, nil
	case "program-change", "programchange":
		return INSTRUMENT_WRITE_MODE_PROGRAM_CHANGE, nil
	}
	return 0, errors.Errorf("unknown instrument write mode %q (want note-on or program-change)", s)
}

func parseModulationDepth(s string) (ModulationDepth, error) {
	switch strings.ToLower(s) {
	case "low":
		return MODULATION_DEPTH_LOW, nil
	case "high":
		return MODULATION_DEPTH_HIGH, nil
	}
	return 0, errors.Errorf("unknown depth %q (want low or high)", s)
}

func parseMIDIValue(name string, v int) (uint8, error) {
	if v < 0 || v > 127 {
		return 0, errors.Errorf("%s must be 0-127, got %d", name, v)
	}
	return uint8(v), nil
}

// parseProgramRemap builds a remap table from "from" = to pairs; programs
// not listed map to themselves.
func parseProgramRemap(m map[string]int) (*[128]uint8, error) {
	var remap [128]uint8
	for i := range remap {
		remap[i] = uint8(i)
	}
	for from, to := range m {
		f, err := strconv.Atoi(from)
		if err != nil || f < 0 || f > 127 {
			return nil, errors.Errorf("program_remap key %q is not a program number", from)
		}
		t, err := parseMIDIValue("program_remap["+from+"]", to)
		if err != nil {
			return nil, err
		}
		remap[f] = t
	}
	return &remap, nil
}
