//go:build atsamd21

package platform

import (
	"co2ampel-go/services/hal/internal/halcore"
	"co2ampel-go/variant"

	"tinygo.org/x/drivers/buzzer"
	"tinygo.org/x/drivers/ws2812"
)

// DefaultBuzzer drives the piezo on the buzzer pin. The pin is already an
// output (low) after variant.Init.
func DefaultBuzzer() halcore.Buzzer {
	p, _ := machinePin(variant.PinBuzzer)
	d := buzzer.New(p)
	return &d
}

// DefaultStrip drives the WS2812 chain.
func DefaultStrip() halcore.Strip {
	p, _ := machinePin(variant.PinWS2812)
	return ws2812.NewWS2812(p)
}
