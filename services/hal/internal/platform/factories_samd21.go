// services/hal/internal/platform/factories_samd21.go
//go:build atsamd21

package platform

import (
	"device/sam"
	"machine"

	"co2ampel-go/services/hal/internal/halcore"
	"co2ampel-go/services/hal/internal/platform/setups"
	"co2ampel-go/variant"

	"tinygo.org/x/drivers"
)

// machinePin maps a logical board pin to TinyGo's pad numbering
// (PA00 = 0, PB00 = 32).
func machinePin(n int) (machine.Pin, bool) {
	d, ok := variant.Lookup(n)
	if !ok {
		return machine.NoPin, false
	}
	return machine.Pin(int(d.Port)*32 + int(d.Pad)), true
}

// ---- I²C ----

// DefaultI2CFactory configures every I²C controller in the plan on its
// variant pins.
func DefaultI2CFactory(plan setups.ResourcePlan) halcore.I2CBusFactory {
	f := &samdI2CFactory{buses: make(map[string]drivers.I2C, len(plan.I2C))}
	for _, b := range plan.I2C {
		bus := i2cFor(b.Sercom)
		if bus == nil {
			println("platform: no i2c controller on", b.Sercom.String())
			continue
		}
		sda, _ := machinePin(b.SDA)
		scl, _ := machinePin(b.SCL)
		if err := bus.Configure(machine.I2CConfig{Frequency: b.Hz, SDA: sda, SCL: scl}); err != nil {
			println("platform: i2c", b.ID, "configure failed:", err.Error())
			continue
		}
		f.buses[b.ID] = bus
	}
	return f
}

func i2cFor(s variant.Sercom) *machine.I2C {
	switch s {
	case variant.Sercom0:
		return &machine.I2C{Bus: sam.SERCOM0_I2CM, SERCOM: 0}
	case variant.Sercom2:
		return &machine.I2C{Bus: sam.SERCOM2_I2CM, SERCOM: 2}
	default:
		return nil
	}
}

type samdI2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *samdI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// ---- SPI ----

// DefaultSPIFactory configures every SPI master in the plan. Chip select is
// left to the caller as a plain GPIO.
func DefaultSPIFactory(plan setups.ResourcePlan) halcore.SPIBusFactory {
	f := &samdSPIFactory{buses: make(map[string]drivers.SPI, len(plan.SPI))}
	for _, b := range plan.SPI {
		bus := spiFor(b.Sercom)
		if bus == nil {
			println("platform: no spi controller on", b.Sercom.String())
			continue
		}
		sck, _ := machinePin(b.SCK)
		sdo, _ := machinePin(b.MOSI)
		sdi, _ := machinePin(b.MISO)
		if err := bus.Configure(machine.SPIConfig{Frequency: b.Hz, SCK: sck, SDO: sdo, SDI: sdi}); err != nil {
			println("platform: spi", b.ID, "configure failed:", err.Error())
			continue
		}
		f.buses[b.ID] = bus
	}
	return f
}

func spiFor(s variant.Sercom) *machine.SPI {
	if s == variant.Sercom1 {
		return &machine.SPI{Bus: sam.SERCOM1_SPI, SERCOM: 1}
	}
	return nil
}

type samdSPIFactory struct {
	buses map[string]drivers.SPI
}

func (f *samdSPIFactory) ByID(id string) (drivers.SPI, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// ---- GPIO (includes IRQ support) ----

type samdPinFactory struct{}

// DefaultPinFactory returns a GPIO factory over logical board pins.
func DefaultPinFactory() halcore.PinFactory { return samdPinFactory{} }

func (samdPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	p, ok := machinePin(n)
	if !ok {
		return nil, false
	}
	return &samdPin{p: p, n: n}, true
}

type samdPin struct {
	p machine.Pin
	n int
}

func (r *samdPin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *samdPin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *samdPin) Set(level bool) { r.p.Set(level) }
func (r *samdPin) Get() bool      { return r.p.Get() }

func (r *samdPin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *samdPin) Number() int { return r.n }

// SetIRQ routes the pad's EIC line to handler.
func (r *samdPin) SetIRQ(edge halcore.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *samdPin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e halcore.Edge) machine.PinChange {
	switch e {
	case halcore.EdgeRising:
		return machine.PinRising
	case halcore.EdgeFalling:
		return machine.PinFalling
	case halcore.EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}
