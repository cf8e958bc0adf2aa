// main.go - Main entry point for oplmidi, the multi-source MIDI to OPL FM renderer

/*
            ▒█████   ██▓███   ██▓     ███▄ ▄███▓ ██▓▓█████▄  ██▓
           ▒██▒  ██▒▓██░  ██▒▓██▒    ▓██▒▀█▀ ██▒▓██▒▒██▀ ██▌▓██▒
           ▒██░  ██▒▓██░ ██▓▒▒██░    ▓██    ▓██░▒██▒░██   █▌▒██▒
           ▒██   ██░▒██▄█▓▒ ▒▒██░    ▒██    ▒██ ░██░░▓█▄   ▌░██░
           ░ ████▓▒░▒██▒ ░  ░░██████▒▒██▒   ░██▒░██░░▒████▓ ░██░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

var Version = "dev"

const (
	DEFAULT_OUTPUT_FILE = "out.vgm"
	DEFAULT_TAIL        = 2 * time.Second
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ▒█████   ██▓███   ██▓     ███▄ ▄███▓ ██▓▓█████▄  ██▓\033[0m\n\033[38;2;255;80;147m▒██▒  ██▒▓██░  ██▒▓██▒    ▓██▒▀█▀ ██▒▓██▒▒██▀ ██▌▓██▒\033[0m\n\033[38;2;255;140;147m▒██░  ██▒▓██░ ██▓▒▒██░    ▓██    ▓██░▒██▒░██   █▌▒██▒\033[0m\n\033[38;2;255;200;147m▒██   ██░▒██▄█▓▒ ▒▒██░    ▒██    ▒██ ░██░░▓█▄   ▌░██░\033[0m\n\033[38;2;255;255;147m░ ████▓▒░▒██▒ ░  ░░██████▒▒██▒   ░██▒░██░░▒████▓ ░██░\033[0m")
	fmt.Println("\nMulti-source MIDI to Yamaha OPL2/OPL3 FM register driver.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

// cliOptions is the parsed command line.
type cliOptions struct {
	cfg        playerConfig
	midiFiles  []string
	script     string
	output     string
	tail       time.Duration
	quiet      bool
	features   bool
	bankSource string
	dump       string
}

// parseCommandLine reads flags and the optional config file. Flags given
// explicitly override the config file.
func parseCommandLine(args []string) (cliOptions, error) {
	var (
		opts            cliOptions
		configPath      string
		chip            string
		accuracy        string
		alloc           string
		instrumentWrite string
		volume          int
		rhythm          bool
		ignoreNoteOff   bool
		ch10Melodic     bool
		debug           bool
	)

	flagSet := flag.NewFlagSet("oplmidi", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.output, "o", DEFAULT_OUTPUT_FILE, "Output VGM file (.vgz is gzip compressed)")
	flagSet.StringVar(&opts.script, "script", "", "Lua script to run instead of MIDI files")
	flagSet.StringVar(&configPath, "config", "", "TOML configuration file")
	flagSet.StringVar(&chip, "chip", "opl3", "Chip type: opl2, dualopl2 or opl3")
	flagSet.StringVar(&accuracy, "accuracy", "sb16", "Accuracy mode: sb16 or gm")
	flagSet.StringVar(&alloc, "alloc", "dynamic", "Channel allocation: dynamic or static")
	flagSet.StringVar(&instrumentWrite, "instrument-write", "note-on", "Instrument write mode: note-on or program-change")
	flagSet.StringVar(&opts.dump, "dump", "", "List the OPL register writes of a VGM/VGZ file and exit")
	flagSet.StringVar(&opts.bankSource, "bank", "", "IBK file replacing the melodic instruments")
	flagSet.IntVar(&volume, "volume", 0, "Default channel volume (0-127)")
	flagSet.BoolVar(&rhythm, "rhythm", false, "Play MIDI channel 10 on the OPL rhythm section")
	flagSet.BoolVar(&ignoreNoteOff, "ignore-rhythm-noteoff", false, "Ignore note off on channel 10 in rhythm mode")
	flagSet.BoolVar(&ch10Melodic, "ch10-melodic", false, "Treat channel 10 as melodic when rhythm mode is off")
	flagSet.DurationVar(&opts.tail, "tail", DEFAULT_TAIL, "Recording time after the last event")
	flagSet.BoolVar(&opts.quiet, "quiet", false, "Do not print the voice table")
	flagSet.BoolVar(&debug, "debug", false, "Log driver diagnostics")
	flagSet.BoolVar(&opts.features, "features", false, "Print version and compiled features")
	flagSet.BoolVar(&opts.features, "version", false, "Print version and compiled features")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./oplmidi [options] file.mid [file2.mid ...]")
		fmt.Println("       ./oplmidi [options] -script song.lua")
		fmt.Println("       ./oplmidi -dump out.vgm")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	opts.midiFiles = flagSet.Args()

	opts.cfg = defaultPlayerConfig()
	if configPath != "" {
		if err := loadConfigFile(configPath, &opts.cfg); err != nil {
			return opts, err
		}
	}

	var err error
	flagSet.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		d := &opts.cfg.Driver
		switch f.Name {
		case "chip":
			d.OPLType, err = parseOPLType(chip)
		case "accuracy":
			d.Accuracy, err = parseAccuracyMode(accuracy)
		case "alloc":
			d.Allocation, err = parseAllocationMode(alloc)
		case "instrument-write":
			d.InstrumentWrite, err = parseInstrumentWriteMode(instrumentWrite)
		case "volume":
			d.DefaultChannelVolume, err = parseMIDIValue("volume", volume)
		case "rhythm":
			opts.cfg.Rhythm = rhythm
		case "ignore-rhythm-noteoff":
			d.RhythmModeIgnoreNoteOffs = ignoreNoteOff
		case "ch10-melodic":
			d.Channel10Melodic = ch10Melodic
		case "bank":
			opts.cfg.MelodicBank = opts.bankSource
		case "debug":
			opts.cfg.Debug = debug
		}
	})
	if err != nil {
		return opts, err
	}

	if opts.features || opts.dump != "" {
		return opts, nil
	}
	if opts.script == "" && len(opts.midiFiles) == 0 {
		return opts, fmt.Errorf("no MIDI files or script given")
	}
	if opts.script != "" && len(opts.midiFiles) > 0 {
		return opts, fmt.Errorf("use either MIDI files or -script, not both")
	}
	if len(opts.midiFiles) > MAXIMUM_SOURCES {
		return opts, fmt.Errorf("at most %d MIDI files can play at once, got %d", MAXIMUM_SOURCES, len(opts.midiFiles))
	}
	return opts, nil
}

func main() {
	opts, err := parseCommandLine(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if opts.features {
		printFeatures()
		return
	}
	if opts.dump != "" {
		if err := dumpVGM(os.Stdout, opts.dump); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	boilerPlate()
	cfg := opts.cfg
	cfg.Driver.Logger = initLogger(cfg.Debug)

	recorder := NewVGMRecorder()
	cfg.Driver.Provider = recorder
	driver := NewOPLDriver(cfg.Driver)
	if err := driver.Open(); err != nil {
		fmt.Printf("Failed to open OPL driver: %v\n", err)
		os.Exit(1)
	}

	if cfg.MelodicBank != "" {
		melodic, err := LoadIBKFile(cfg.MelodicBank)
		if err != nil {
			fmt.Printf("Error loading instrument bank: %v\n", err)
			os.Exit(1)
		}
		bank := DefaultInstrumentBank()
		bank.Melodic = melodic
		if err := driver.SetInstrumentBank(bank); err != nil {
			fmt.Printf("Error loading instrument bank: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Rhythm {
		driver.SetRhythmMode(true)
	}
	for i, v := range cfg.SourceVolumes {
		if i >= MAXIMUM_SOURCES || v < 0 || v > 0xFFFF {
			fmt.Printf("Ignoring source volume %d for source %d\n", v, i)
			continue
		}
		if err := driver.SetSourceVolume(uint8(i), uint16(v)); err != nil {
			fmt.Printf("Error setting source volume: %v\n", err)
		}
	}

	var played time.Duration
	if opts.script != "" {
		fmt.Printf("Running script: %s\n", opts.script)
		feeder := newLuaFeeder(driver, recorder)
		if err := feeder.RunFile(opts.script); err != nil {
			fmt.Printf("Error: %v\n", err)
			driver.Close()
			os.Exit(1)
		}
		played = feeder.Elapsed()
	} else {
		schedules := make([][]scheduledEvent, 0, len(opts.midiFiles))
		for i, path := range opts.midiFiles {
			events, err := loadSMFEvents(path, i)
			if err != nil {
				fmt.Printf("Error loading MIDI file: %v\n", err)
				driver.Close()
				os.Exit(1)
			}
			fmt.Printf("Source %d: %s\n", i, path)
			schedules = append(schedules, events)
		}
		played = playSchedule(driver, recorder, mergeSchedules(schedules...))
	}
	recorder.Advance(opts.tail)

	if !opts.quiet {
		printVoiceSummary(os.Stdout, driver.Voices(), terminalWidth() >= voiceTableWideColumns)
	}
	fmt.Printf("Played %s on %s, %d register writes\n",
		played.Round(time.Millisecond), cfg.Driver.OPLType, driver.RegisterWrites())
	driver.Close()

	if err := recorder.WriteFile(opts.output); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", opts.output)
}
