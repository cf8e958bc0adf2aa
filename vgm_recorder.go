// vgm_recorder.go - OPL chip backend that records register writes as a VGM stream.

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	VGM_VERSION_151     = 0x00000151
	VGM_HEADER_SIZE_151 = 0x80
	VGM_MAX_WAIT        = 0xFFFF
)

func init() {
	compiledFeatures = append(compiledFeatures, "chip:vgm-recorder")
}

// VGMRecorder is both a chip provider and the chip it provides. Time only
// moves when Advance is called; timer callbacks fire inside Advance.
type VGMRecorder struct {
	mutex   sync.Mutex
	oplType OPLType
	data    bytes.Buffer

	clock       time.Duration
	sample      uint64 // samples already covered by wait commands
	writes      uint64
	initialized bool
	running     bool
	callback    func()
	tickPeriod  time.Duration
	nextTick    time.Duration
}

func NewVGMRecorder() *VGMRecorder {
	return &VGMRecorder{}
}

// Detect reports every chip type as available.
func (r *VGMRecorder) Detect(oplType OPLType) bool {
	return oplType >= OPL_TYPE_OPL2 && oplType <= OPL_TYPE_OPL3
}

func (r *VGMRecorder) Create(oplType OPLType) (OPLChip, error) {
	if !r.Detect(oplType) {
		return nil, errors.Errorf("unsupported chip type %d", oplType)
	}
	r.mutex.Lock()
	r.oplType = oplType
	r.mutex.Unlock()
	return r, nil
}

func (r *VGMRecorder) Init() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.initialized = true
	return nil
}

func (r *VGMRecorder) Start(callback func(), timerFrequency int) error {
	if timerFrequency <= 0 {
		return errors.Errorf("invalid timer frequency %d", timerFrequency)
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if !r.initialized {
		return errors.New("vgm recorder not initialized")
	}
	r.callback = callback
	r.tickPeriod = time.Second / time.Duration(timerFrequency)
	r.nextTick = r.clock + r.tickPeriod
	r.running = true
	return nil
}

func (r *VGMRecorder) Stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.running = false
	r.callback = nil
}

func (r *VGMRecorder) WriteReg(reg uint16, value uint8) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if !r.initialized {
		return
	}
	r.flushWaitLocked()

	cmd := byte(VGM_CMD_YM3812)
	switch r.oplType {
	case OPL_TYPE_OPL3:
		cmd = VGM_CMD_YMF262_PORT0
		if reg&OPL_REGISTER_SET_2_OFFSET != 0 {
			cmd = VGM_CMD_YMF262_PORT1
		}
	case OPL_TYPE_DUAL_OPL2:
		if reg&OPL_REGISTER_SET_2_OFFSET != 0 {
			cmd = VGM_CMD_YM3812_CHIP2
		}
	}
	r.data.Write([]byte{cmd, byte(reg), value})
	r.writes++
}

// Advance moves the recording clock forward, firing the timer callback for
// every tick that falls inside the interval.
func (r *VGMRecorder) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	r.mutex.Lock()
	target := r.clock + d
	for r.running && r.nextTick <= target {
		r.clock = r.nextTick
		r.nextTick += r.tickPeriod
		callback := r.callback
		r.mutex.Unlock()
		if callback != nil {
			callback()
		}
		r.mutex.Lock()
	}
	r.clock = target
	r.mutex.Unlock()
}

func (r *VGMRecorder) Elapsed() time.Duration {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.clock
}

// Writes returns the number of register writes recorded.
func (r *VGMRecorder) Writes() uint64 {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.writes
}

func samplesAt(t time.Duration) uint64 {
	return uint64(t) * VGM_SAMPLE_RATE / uint64(time.Second)
}

func (r *VGMRecorder) flushWaitLocked() {
	target := samplesAt(r.clock)
	for r.sample < target {
		wait := min(target-r.sample, VGM_MAX_WAIT)
		if wait <= 16 {
			r.data.WriteByte(0x70 | byte(wait-1))
		} else {
			r.data.Write([]byte{VGM_CMD_WAIT, byte(wait), byte(wait >> 8)})
		}
		r.sample += wait
	}
}

// Bytes returns the complete VGM file for everything recorded so far.
func (r *VGMRecorder) Bytes() []byte {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.flushWaitLocked()

	header := make([]byte, VGM_HEADER_SIZE_151)
	copy(header[0:4], []byte("Vgm "))
	total := VGM_HEADER_SIZE_151 + r.data.Len() + 1
	binary.LittleEndian.PutUint32(header[0x04:0x08], uint32(total-4))
	binary.LittleEndian.PutUint32(header[0x08:0x0C], VGM_VERSION_151)
	binary.LittleEndian.PutUint32(header[0x18:0x1C], uint32(r.sample))
	binary.LittleEndian.PutUint32(header[0x34:0x38], VGM_HEADER_SIZE_151-0x34)
	switch r.oplType {
	case OPL_TYPE_OPL3:
		binary.LittleEndian.PutUint32(header[0x5C:0x60], VGM_CLOCK_YMF262)
	case OPL_TYPE_DUAL_OPL2:
		binary.LittleEndian.PutUint32(header[0x50:0x54], VGM_CLOCK_YM3812|VGM_CLOCK_DUAL_BIT)
	default:
		binary.LittleEndian.PutUint32(header[0x50:0x54], VGM_CLOCK_YM3812)
	}

	out := make([]byte, 0, total)
	out = append(out, header...)
	out = append(out, r.data.Bytes()...)
	return append(out, VGM_CMD_END)
}

// WriteFile saves the recording, gzip compressed when path ends in .vgz.
func (r *VGMRecorder) WriteFile(path string) error {
	data := r.Bytes()
	if strings.EqualFold(filepath.Ext(path), ".vgz") {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write(data); err != nil {
			return errors.Wrap(err, "compress vgm")
		}
		if err := gz.Close(); err != nil {
			return errors.Wrap(err, "compress vgm")
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
