//go:build atsamd21

package port

import (
	"device/sam"
	"runtime/volatile"
	"unsafe"
)

type samd21Port struct{}

// Default returns the on-chip PORT peripheral.
func Default() Port { return samd21Port{} }

func (samd21Port) DirSet(group int, mask uint32) {
	if group == GroupB {
		sam.PORT.DIRSET1.Set(mask)
		return
	}
	sam.PORT.DIRSET0.Set(mask)
}

func (samd21Port) OutSet(group int, mask uint32) {
	if group == GroupB {
		sam.PORT.OUTSET1.Set(mask)
		return
	}
	sam.PORT.OUTSET0.Set(mask)
}

func (samd21Port) OutClr(group int, mask uint32) {
	if group == GroupB {
		sam.PORT.OUTCLR1.Set(mask)
		return
	}
	sam.PORT.OUTCLR0.Set(mask)
}

// PINCFG registers are laid out as 32 consecutive bytes per group.
func (samd21Port) PinCfgSet(group int, pad uint8, bits uint8) {
	base := unsafe.Pointer(&sam.PORT.PINCFG0_0.Reg)
	if group == GroupB {
		base = unsafe.Pointer(&sam.PORT.PINCFG1_0.Reg)
	}
	(*volatile.Register8)(unsafe.Add(base, uintptr(pad))).SetBits(bits)
}
