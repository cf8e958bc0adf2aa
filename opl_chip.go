// opl_chip.go - OPL chip backend interfaces.

package main

// OPLChip is a register-level OPL backend: an emulator, real hardware or a
// register log.
type OPLChip interface {
	Init() error
	// Start begins calling callback timerFrequency times per second.
	Start(callback func(), timerFrequency int) error
	Stop()
	// WriteReg writes a register. Registers 0x100-0x1FF address the second
	// register set (OPL3) or the second chip (dual OPL2).
	WriteReg(reg uint16, value uint8)
}

// OPLChipProvider detects and constructs chip backends.
type OPLChipProvider interface {
	Detect(oplType OPLType) bool
	Create(oplType OPLType) (OPLChip, error)
}
