// vgm_parser.go - VGM/VGZ parser for OPL register writes.
//
// Supported chips (events extracted as OPLEvents):
//   - YM3812 (cmd 0x5A), YM3526 (cmd 0x5B), Y8950 (cmd 0x5C) as register set 1
//   - YMF262 (cmd 0x5E port 0, cmd 0x5F port 1 mapped to 0x100-0x1FF)
//   - Second YM3812/YM3526/Y8950 (cmd 0xAA-0xAC) mapped to 0x100-0x1FF
//
// Ignored chips (commands skipped gracefully):
//   - SN76489 (cmd 0x50), GG stereo (cmd 0x4F), AY-3-8910 (cmd 0xA0)
//   - YM2413 (cmd 0x51), YM2612 (cmd 0x52-0x53), YM2151 (cmd 0x54)
//   - YM2203 (cmd 0x55), YM2608 (cmd 0x56-0x57), YM2610 (cmd 0x58-0x59)
//   - YMZ280B (cmd 0x5D), second YMF262 (cmd 0xAE-0xAF)
//   - Sega PCM (cmd 0xC0+), DAC stream (cmd 0x90-0x95)
//   - PCM RAM writes (cmd 0x68), data blocks (cmd 0x67)
//   - All seek/meta commands (cmd 0xE0-0xFF)

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	VGM_SAMPLE_RATE    = 44100
	VGM_CLOCK_YM3812   = 3579545
	VGM_CLOCK_YMF262   = 14318180
	VGM_CLOCK_DUAL_BIT = 1 << 30

	VGM_CMD_YM3812       = 0x5A
	VGM_CMD_YM3526       = 0x5B
	VGM_CMD_Y8950        = 0x5C
	VGM_CMD_YMF262_PORT0 = 0x5E
	VGM_CMD_YMF262_PORT1 = 0x5F
	VGM_CMD_YM3812_CHIP2 = 0xAA
	VGM_CMD_YM3526_CHIP2 = 0xAB
	VGM_CMD_Y8950_CHIP2  = 0xAC
	VGM_CMD_WAIT         = 0x61
	VGM_CMD_WAIT_NTSC    = 0x62
	VGM_CMD_WAIT_PAL     = 0x63
	VGM_CMD_END          = 0x66
)

type OPLEvent struct {
	Sample uint64
	Reg    uint16
	Value  uint8
}

type VGMFile struct {
	Events        []OPLEvent
	YM3812ClockHz uint32 // bit 30 set for a dual chip setup
	YMF262ClockHz uint32
	TotalSamples  uint64
	LoopSamples   uint64
	LoopSample    uint64
}

// OPLType reports the chip setup the header declares.
func (v *VGMFile) OPLType() OPLType {
	switch {
	case v.YMF262ClockHz != 0:
		return OPL_TYPE_OPL3
	case v.YM3812ClockHz&VGM_CLOCK_DUAL_BIT != 0:
		return OPL_TYPE_DUAL_OPL2
	}
	return OPL_TYPE_OPL2
}

func ParseVGMFile(path string) (*VGMFile, error) {
	data, err := readVGMData(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return ParseVGMData(data)
}

func ParseVGMData(data []byte) (*VGMFile, error) {
	if len(data) < 2 {
		return nil, errors.New("vgm too short")
	}
	if data[0] == 0x1F && data[1] == 0x8B {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, err
		}
	}
	if len(data) < 0x40 {
		return nil, errors.New("vgm too short")
	}
	if !bytes.Equal(data[0:4], []byte("Vgm ")) {
		return nil, errors.New("invalid vgm header")
	}

	totalSamples := uint64(binary.LittleEndian.Uint32(data[0x18:0x1C]))
	loopSamples := binary.LittleEndian.Uint32(data[0x20:0x24])
	loopOffset := binary.LittleEndian.Uint32(data[0x1C:0x20])

	dataOffset := binary.LittleEndian.Uint32(data[0x34:0x38])
	dataStart := uint32(0x40)
	if dataOffset != 0 {
		dataStart = 0x34 + dataOffset
	}
	if int(dataStart) >= len(data) {
		return nil, errors.New("vgm data offset out of range")
	}

	// OPL clocks only exist in 1.51+ headers
	var ym3812Clock, ymf262Clock uint32
	if dataStart >= 0x54 && len(data) >= 0x54 {
		ym3812Clock = binary.LittleEndian.Uint32(data[0x50:0x54])
	}
	if dataStart >= 0x60 && len(data) >= 0x60 {
		ymf262Clock = binary.LittleEndian.Uint32(data[0x5C:0x60])
	}

	events := make([]OPLEvent, 0, 1024)
	samplePos := uint64(0)
	loopSample := uint64(0)
	loopStart := uint32(0)
	if loopOffset != 0 {
		loopStart = 0x1C + loopOffset
	}

	for i := int(dataStart); i < len(data); {
		if loopStart != 0 && loopSample == 0 && uint32(i) == loopStart {
			loopSample = samplePos
		}
		cmd := data[i]
		switch {
		case cmd == VGM_CMD_END:
			i = len(data)
			continue
		case cmd == VGM_CMD_YM3812 || cmd == VGM_CMD_YM3526 || cmd == VGM_CMD_Y8950 ||
			cmd == VGM_CMD_YMF262_PORT0 || cmd == VGM_CMD_YMF262_PORT1 ||
			cmd == VGM_CMD_YM3812_CHIP2 || cmd == VGM_CMD_YM3526_CHIP2 || cmd == VGM_CMD_Y8950_CHIP2:
			if i+2 >= len(data) {
				return nil, errors.Errorf("vgm truncated OPL write at offset %d", i)
			}
			reg := uint16(data[i+1])
			if cmd == VGM_CMD_YMF262_PORT1 || cmd >= VGM_CMD_YM3812_CHIP2 {
				reg |= OPL_REGISTER_SET_2_OFFSET
			}
			events = append(events, OPLEvent{Sample: samplePos, Reg: reg, Value: data[i+2]})
			i += 3
			continue
		case cmd == VGM_CMD_WAIT:
			if i+2 >= len(data) {
				return nil, errors.New("vgm truncated wait")
			}
			wait := binary.LittleEndian.Uint16(data[i+1 : i+3])
			samplePos += uint64(wait)
			i += 3
			continue
		case cmd == VGM_CMD_WAIT_NTSC:
			samplePos += 735
			i++
			continue
		case cmd == VGM_CMD_WAIT_PAL:
			samplePos += 882
			i++
			continue
		case cmd >= 0x70 && cmd <= 0x7F:
			samplePos += uint64(cmd&0x0F) + 1
			i++
			continue
		case cmd == 0x67:
			if i+6 >= len(data) {
				return nil, errors.New("vgm truncated data block")
			}
			if data[i+1] != 0x66 {
				return nil, errors.New("vgm invalid data block")
			}
			blockLen := binary.LittleEndian.Uint32(data[i+3 : i+7])
			i += 7 + int(blockLen)
			continue
		case cmd == 0x68:
			// PCM RAM write: 12 bytes total
			if i+12 > len(data) {
				return nil, errors.Errorf("vgm truncated PCM RAM write at offset %d", i)
			}
			i += 12
			continue
		case cmd >= 0x80 && cmd <= 0x8F:
			// YM2612 port 0 address 2A write + wait: 1 byte (no operand)
			samplePos += uint64(cmd & 0x0F)
			i++
			continue
		case cmd == 0x90 || cmd == 0x91 || cmd == 0x95:
			// DAC stream setup/set data/start fast: 5 bytes total
			if i+5 > len(data) {
				return nil, errors.Errorf("vgm truncated DAC stream command at offset %d", i)
			}
			i += 5
			continue
		case cmd == 0x92:
			if i+6 > len(data) {
				return nil, errors.Errorf("vgm truncated DAC stream frequency at offset %d", i)
			}
			i += 6
			continue
		case cmd == 0x93:
			if i+11 > len(data) {
				return nil, errors.Errorf("vgm truncated DAC stream start at offset %d", i)
			}
			i += 11
			continue
		case cmd == 0x94:
			if i+2 > len(data) {
				return nil, errors.Errorf("vgm truncated DAC stream stop at offset %d", i)
			}
			i += 2
			continue
		case cmd >= 0x30 && cmd <= 0x3F, cmd == 0x4F, cmd == 0x50:
			// One-operand commands (reserved, GG stereo, SN76489): 2 bytes total
			if i+2 > len(data) {
				return nil, errors.Errorf("vgm truncated command 0x%02X at offset %d", cmd, i)
			}
			i += 2
			continue
		case cmd >= 0x41 && cmd <= 0x4E, cmd >= 0x51 && cmd <= 0x5F, cmd >= 0xA0 && cmd <= 0xBF:
			// Two-operand chip writes for chips we do not track: 3 bytes total
			if i+3 > len(data) {
				return nil, errors.Errorf("vgm truncated command 0x%02X at offset %d", cmd, i)
			}
			i += 3
			continue
		case cmd >= 0xC0 && cmd <= 0xDF:
			if i+4 > len(data) {
				return nil, errors.Errorf("vgm truncated command 0x%02X at offset %d", cmd, i)
			}
			i += 4
			continue
		case cmd >= 0xE0:
			if i+5 > len(data) {
				return nil, errors.Errorf("vgm truncated command 0x%02X at offset %d", cmd, i)
			}
			i += 5
			continue
		default:
			// Unknown command: skip 1 byte and hope for the best
			i++
			continue
		}
	}

	if len(events) > 0 {
		totalSamples = max(totalSamples, events[len(events)-1].Sample+1)
	}
	if loopSample == 0 && loopSamples > 0 && totalSamples >= uint64(loopSamples) {
		loopSample = totalSamples - uint64(loopSamples)
	}

	return &VGMFile{
		Events:        events,
		YM3812ClockHz: ym3812Clock,
		YMF262ClockHz: ymf262Clock,
		TotalSamples:  totalSamples,
		LoopSamples:   uint64(loopSamples),
		LoopSample:    loopSample,
	}, nil
}

func readVGMData(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, 2)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if header[0] == 0x1F && header[1] == 0x8B {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}

	return io.ReadAll(f)
}
