// services/hal/internal/halcore/types.go
package halcore

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// ---- Buses ----

// I2CBusFactory injects configured I²C instances by id ("wire", "wire1").
// Uses the TinyGo drivers.I2C interface to remain compatible on MCU builds.
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// SPIBusFactory injects configured SPI masters by id ("spi").
type SPIBusFactory interface {
	ByID(id string) (drivers.SPI, bool)
}

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is one logical board pin. Number is the logical index, not the pad.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// IRQPin extends GPIOPin with interrupts.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies GPIO pins by logical pin number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- Board outputs ----

// Buzzer is the piezo on the buzzer pin.
type Buzzer interface {
	Tone(hz, beats float64) error
	Off() error
}

// Strip is the WS2812 chain.
type Strip interface {
	WriteColors(c []color.RGBA) error
}

// Util
func EdgeToString(e Edge) string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

func PullToString(p Pull) string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}
