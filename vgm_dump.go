// vgm_dump.go - Register listing of a recorded VGM/VGZ file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// samplesDuration converts a VGM sample count to a duration.
func samplesDuration(samples uint64) time.Duration {
	return time.Duration(samples) * time.Second / VGM_SAMPLE_RATE
}

// dumpVGM writes the chip setup and every OPL register write of a VGM or
// VGZ file, one line per write.
func dumpVGM(w io.Writer, path string) error {
	vgm, err := ParseVGMFile(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s: %s, %d register writes, %d samples (%s)\n",
		path, vgm.OPLType(), len(vgm.Events), vgm.TotalSamples,
		samplesDuration(vgm.TotalSamples).Round(time.Millisecond))
	if vgm.LoopSamples > 0 {
		fmt.Fprintf(bw, "loop: %d samples from sample %d\n", vgm.LoopSamples, vgm.LoopSample)
	}
	fmt.Fprintf(bw, "%10s  %3s  %s\n", "sample", "reg", "value")
	for _, ev := range vgm.Events {
		fmt.Fprintf(bw, "%10d  %03X  %02X\n", ev.Sample, ev.Reg, ev.Value)
	}
	return bw.Flush()
}
