// opl_registers.go - Shadowed OPL register writes and register offset mapping.

package main

import "sync"

// OPLRegisterWriter forwards register writes to the chip, skipping writes
// that would not change the register unless forced.
type OPLRegisterWriter struct {
	mutex   sync.Mutex
	chip    OPLChip
	oplType OPLType
	shadow  [OPL_NUM_REGISTERS]uint8
	writes  uint64
}

func NewOPLRegisterWriter(chip OPLChip, oplType OPLType) *OPLRegisterWriter {
	return &OPLRegisterWriter{chip: chip, oplType: oplType}
}

// alwaysWritten reports registers that are re-asserted on every write:
// test and timers, plus their second set copies on dual OPL2.
func (w *OPLRegisterWriter) alwaysWritten(reg uint16) bool {
	if reg >= OPL_REGISTER_TEST && reg <= OPL_REGISTER_TIMER2 {
		return true
	}
	return w.oplType == OPL_TYPE_DUAL_OPL2 &&
		reg >= OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TEST &&
		reg <= OPL_REGISTER_SET_2_OFFSET+OPL_REGISTER_TIMER2
}

func (w *OPLRegisterWriter) Write(reg uint16, value uint8, force bool) {
	if reg >= OPL_NUM_REGISTERS {
		return
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !force && !w.alwaysWritten(reg) && w.shadow[reg] == value {
		return
	}
	w.shadow[reg] = value
	w.writes++
	if w.chip != nil {
		w.chip.WriteReg(reg, value)
	}
}

// Shadow returns the last value written to reg.
func (w *OPLRegisterWriter) Shadow(reg uint16) uint8 {
	if reg >= OPL_NUM_REGISTERS {
		return 0
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.shadow[reg]
}

// Writes returns the number of writes forwarded to the chip.
func (w *OPLRegisterWriter) Writes() uint64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writes
}

// oplOperatorRegisterOffset returns the offset of an operator register from
// its base register. Rhythm instruments ignore oplChannel. Four operator
// instruments are addressed by the first channel of their pair.
func oplOperatorRegisterOffset(oplChannel uint8, operatorNum uint8, rhythmType OPLRhythmType, fourOperator bool) uint16 {
	if rhythmType != RHYTHM_TYPE_UNDEFINED {
		offset := uint16(oplRhythmOperatorOffsets[rhythmType-1])
		if rhythmType == RHYTHM_TYPE_BASS_DRUM && operatorNum == 1 {
			offset += 3
		}
		return offset
	}
	if fourOperator {
		// operators 2 and 3 live on the pair's second channel
		oplChannel += 3 * (operatorNum / 2)
		operatorNum %= 2
	}
	return uint16(oplChannel/9)*OPL_REGISTER_SET_2_OFFSET +
		uint16((oplChannel%9)/3)*8 + uint16((oplChannel%9)%3) + uint16(operatorNum)*3
}

// oplChannelRegisterOffset returns the offset of a channel register (A0/B0/C0).
// A four operator pair is addressed by its first channel.
func oplChannelRegisterOffset(oplChannel uint8) uint16 {
	return uint16(oplChannel/9)*OPL_REGISTER_SET_2_OFFSET + uint16(oplChannel%9)
}

// oplFourOperatorPair returns the OPL3 connection select bit of the four
// operator pair starting at oplChannel, or 0 when no pair starts there.
func oplFourOperatorPair(oplChannel uint8) uint8 {
	if oplChannel >= OPL3_NUM_CHANNELS || oplChannel%9 >= 3 {
		return 0
	}
	return 1 << (oplChannel%9 + oplChannel/9*3)
}
