// Package port describes the SAMD21 PORT peripheral as a set of write-one
// strobe registers per group, so board bring-up code can run against either
// the silicon or a simulated bank.
package port

// Groups of the PORT peripheral (PORT->Group[n]).
const (
	GroupA = 0
	GroupB = 1
	Groups = 2
)

// PadsPerGroup is the width of every 32-bit group register.
const PadsPerGroup = 32

// PINCFG bits.
const (
	PinCfgPMUXEN uint8 = 1 << 0
	PinCfgINEN   uint8 = 1 << 1
	PinCfgPULLEN uint8 = 1 << 2
	PinCfgDRVSTR uint8 = 1 << 6
)

// Port is the register surface used during board initialization.
// Every write is a strobe or an OR into PINCFG, so repeating a write has no
// further effect.
type Port interface {
	DirSet(group int, mask uint32)
	OutSet(group int, mask uint32)
	OutClr(group int, mask uint32)
	// PinCfgSet ORs bits into the PINCFG byte of one pad.
	PinCfgSet(group int, pad uint8, bits uint8)
}

// Ref is the bank/mask pair for raw register access to one pad.
type Ref struct {
	Group int
	Pad   uint8
	Mask  uint32
}

// RefOf derives the register reference for a pad: mask = 1 << pad.
func RefOf(group int, pad uint8) Ref {
	return Ref{Group: group, Pad: pad, Mask: 1 << pad}
}
