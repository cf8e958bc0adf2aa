// vgm_recorder_test.go - Tests for the VGM recording chip backend.

package main

import (
	"path/filepath"
	"testing"
	"time"
)

func startRecorder(t *testing.T, oplType OPLType, callback func()) *VGMRecorder {
	t.Helper()
	r := NewVGMRecorder()
	chip, err := r.Create(oplType)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := chip.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := chip.Start(callback, 250); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return r
}

func TestVGMRecorderRoundTrip(t *testing.T) {
	ticks := 0
	r := startRecorder(t, OPL_TYPE_OPL3, func() { ticks++ })

	r.WriteReg(0x105, 0x01)
	r.Advance(10 * time.Millisecond)
	r.WriteReg(0xB0, 0x2E)
	r.Advance(10 * time.Millisecond)

	if ticks != 5 {
		t.Fatalf("timer fired %d times in 20ms at 250Hz, want 5", ticks)
	}
	if r.Elapsed() != 20*time.Millisecond {
		t.Fatalf("elapsed = %v, want 20ms", r.Elapsed())
	}
	if r.Writes() != 2 {
		t.Fatalf("writes = %d, want 2", r.Writes())
	}

	vgm, err := ParseVGMData(r.Bytes())
	if err != nil {
		t.Fatalf("recorded data does not parse: %v", err)
	}
	want := []OPLEvent{
		{Sample: 0, Reg: 0x105, Value: 0x01},
		{Sample: 441, Reg: 0xB0, Value: 0x2E},
	}
	if len(vgm.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(vgm.Events))
	}
	for i, ev := range want {
		if vgm.Events[i] != ev {
			t.Errorf("event %d: got %+v, want %+v", i, vgm.Events[i], ev)
		}
	}
	if vgm.TotalSamples != 882 {
		t.Errorf("total samples = %d, want 882", vgm.TotalSamples)
	}
	if vgm.OPLType() != OPL_TYPE_OPL3 {
		t.Errorf("header declares %v, want OPL3", vgm.OPLType())
	}
}

func TestVGMRecorderShortWaits(t *testing.T) {
	r := startRecorder(t, OPL_TYPE_OPL2, nil)
	r.WriteReg(0x20, 0x01)
	r.Advance(time.Second / VGM_SAMPLE_RATE * 3)
	r.WriteReg(0x20, 0x02)

	vgm, err := ParseVGMData(r.Bytes())
	if err != nil {
		t.Fatalf("ParseVGMData: %v", err)
	}
	if len(vgm.Events) != 2 || vgm.Events[1].Sample != 2 {
		t.Fatalf("events %+v, want second write at sample 2", vgm.Events)
	}
	if vgm.OPLType() != OPL_TYPE_OPL2 {
		t.Errorf("header declares %v, want OPL2", vgm.OPLType())
	}
}

func TestVGMRecorderDualOPL2(t *testing.T) {
	r := startRecorder(t, OPL_TYPE_DUAL_OPL2, nil)
	r.WriteReg(OPL_REGISTER_RHYTHM, 0xE0)
	r.WriteReg(OPL_REGISTER_SET_2_OFFSET|OPL_REGISTER_RHYTHM, 0xE0)

	vgm, err := ParseVGMData(r.Bytes())
	if err != nil {
		t.Fatalf("ParseVGMData: %v", err)
	}
	if len(vgm.Events) != 2 || vgm.Events[1].Reg != OPL_REGISTER_SET_2_OFFSET|OPL_REGISTER_RHYTHM {
		t.Fatalf("events %+v, want second chip write", vgm.Events)
	}
	if vgm.OPLType() != OPL_TYPE_DUAL_OPL2 {
		t.Errorf("header declares %v, want dual OPL2", vgm.OPLType())
	}
}

func TestVGMRecorderIgnoresWritesBeforeInit(t *testing.T) {
	r := NewVGMRecorder()
	r.Create(OPL_TYPE_OPL3)
	r.WriteReg(0x20, 0x01)
	if r.Writes() != 0 {
		t.Fatalf("writes = %d before Init, want 0", r.Writes())
	}
	if err := r.Start(func() {}, 250); err == nil {
		t.Fatal("Start succeeded before Init")
	}
}

func TestVGMRecorderStopHaltsTimer(t *testing.T) {
	ticks := 0
	r := startRecorder(t, OPL_TYPE_OPL3, func() { ticks++ })
	r.Advance(4 * time.Millisecond)
	r.Stop()
	r.Advance(time.Second)
	if ticks != 1 {
		t.Fatalf("timer fired %d times, want 1", ticks)
	}
}

func TestVGMRecorderWriteFileGzip(t *testing.T) {
	r := startRecorder(t, OPL_TYPE_OPL3, nil)
	r.WriteReg(0xA0, 0xAD)
	r.Advance(time.Millisecond)

	dir := t.TempDir()
	for _, name := range []string{"out.vgm", "out.vgz"} {
		path := filepath.Join(dir, name)
		if err := r.WriteFile(path); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		vgm, err := ParseVGMFile(path)
		if err != nil {
			t.Fatalf("ParseVGMFile(%s): %v", name, err)
		}
		if len(vgm.Events) != 1 || vgm.Events[0].Reg != 0xA0 {
			t.Fatalf("%s: events %+v", name, vgm.Events)
		}
	}
}
