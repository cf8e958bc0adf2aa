// config_test.go - Tests for TOML configuration loading.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oplmidi.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
chip = "opl2"
accuracy = "gm"
allocation = "static"
rhythm = true
default_volume = 100
vibrato_depth = "low"
timer_frequency = 100
melodic_bank = "game.ibk"
source_volumes = [255, 128]

[program_remap]
"0" = 5
"127" = 0
`)
	cfg := defaultPlayerConfig()
	if err := loadConfigFile(path, &cfg); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.Driver.OPLType != OPL_TYPE_OPL2 {
		t.Errorf("chip = %v, want OPL2", cfg.Driver.OPLType)
	}
	if cfg.Driver.Accuracy != ACCURACY_MODE_GM {
		t.Errorf("accuracy = %v, want GM", cfg.Driver.Accuracy)
	}
	if cfg.Driver.Allocation != ALLOCATION_MODE_STATIC {
		t.Errorf("allocation = %v, want static", cfg.Driver.Allocation)
	}
	if !cfg.Rhythm {
		t.Error("rhythm = false, want true")
	}
	if cfg.Driver.DefaultChannelVolume != 100 {
		t.Errorf("default volume = %d, want 100", cfg.Driver.DefaultChannelVolume)
	}
	if cfg.Driver.VibratoDepth != MODULATION_DEPTH_LOW || cfg.Driver.ModulationDepth != MODULATION_DEPTH_HIGH {
		t.Errorf("depths = %v/%v, want high modulation and low vibrato", cfg.Driver.ModulationDepth, cfg.Driver.VibratoDepth)
	}
	if cfg.Driver.TimerFrequency != 100 {
		t.Errorf("timer frequency = %d, want 100", cfg.Driver.TimerFrequency)
	}
	if cfg.MelodicBank != "game.ibk" {
		t.Errorf("melodic bank = %q", cfg.MelodicBank)
	}
	if len(cfg.SourceVolumes) != 2 || cfg.SourceVolumes[1] != 128 {
		t.Errorf("source volumes = %v", cfg.SourceVolumes)
	}

	remap := cfg.Driver.ProgramRemap
	if remap == nil {
		t.Fatal("program remap not set")
	}
	if remap[0] != 5 || remap[127] != 0 || remap[64] != 64 {
		t.Errorf("remap 0/64/127 = %d/%d/%d, want 5/64/0", remap[0], remap[64], remap[127])
	}

	// keys missing from the file keep their defaults
	if cfg.Driver.InstrumentWrite != INSTRUMENT_WRITE_MODE_NOTE_ON {
		t.Errorf("instrument write changed to %v", cfg.Driver.InstrumentWrite)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := map[string]string{
		"bad chip":         `chip = "opl4"`,
		"bad accuracy":     `accuracy = "perfect"`,
		"bad allocation":   `allocation = "random"`,
		"bad write mode":   `instrument_write = "never"`,
		"bad depth":        `modulation_depth = "medium"`,
		"volume too high":  `default_volume = 200`,
		"bad note select":  `note_select = 2`,
		"zero timer":       `timer_frequency = 0`,
		"bad remap key":    "[program_remap]\n\"piano\" = 1",
		"remap key range":  "[program_remap]\n\"128\" = 1",
		"remap value":      "[program_remap]\n\"1\" = 300",
		"not toml":         `chip = `,
		"wrong value type": `rhythm = "yes"`,
	}
	for name, content := range tests {
		cfg := defaultPlayerConfig()
		if err := loadConfigFile(writeConfig(t, content), &cfg); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	cfg := defaultPlayerConfig()
	if err := loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestParseConfigNames(t *testing.T) {
	if v, err := parseOPLType("DualOPL2"); err != nil || v != OPL_TYPE_DUAL_OPL2 {
		t.Errorf("parseOPLType(DualOPL2) = %v, %v", v, err)
	}
	if v, err := parseAccuracyMode("win95"); err != nil || v != ACCURACY_MODE_SB16_WIN95 {
		t.Errorf("parseAccuracyMode(win95) = %v, %v", v, err)
	}
	if v, err := parseInstrumentWriteMode("program-change"); err != nil || v != INSTRUMENT_WRITE_MODE_PROGRAM_CHANGE {
		t.Errorf("parseInstrumentWriteMode(program-change) = %v, %v", v, err)
	}
	if v, err := parseAllocationMode("Dynamic"); err != nil || v != ALLOCATION_MODE_DYNAMIC {
		t.Errorf("parseAllocationMode(Dynamic) = %v, %v", v, err)
	}
}
