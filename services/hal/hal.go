// services/hal/hal.go
package hal

import (
	"sync"

	"co2ampel-go/bus"
	"co2ampel-go/errcode"
	"co2ampel-go/services/hal/internal/halcore"
	"co2ampel-go/services/hal/internal/halerr"
	"co2ampel-go/services/hal/internal/platform"
	"co2ampel-go/services/hal/internal/platform/setups"
	"co2ampel-go/variant"
	"co2ampel-go/x/mathx"

	"tinygo.org/x/drivers"
)

// Re-exports for callers outside services/hal.
type (
	Pin    = halcore.GPIOPin
	Pull   = halcore.Pull
	Edge   = halcore.Edge
	Params = setups.Params
)

const (
	PullNone = halcore.PullNone
	PullUp   = halcore.PullUp
	PullDown = halcore.PullDown

	EdgeRising  = halcore.EdgeRising
	EdgeFalling = halcore.EdgeFalling
	EdgeBoth    = halcore.EdgeBoth
)

var (
	ErrUnknownPin = halerr.ErrUnknownPin
	ErrPinInUse   = halerr.ErrPinInUse
	ErrNotOwner   = halerr.ErrNotOwner
	ErrUnknownBus = halerr.ErrUnknownBus
	ErrNoIRQ      = halerr.ErrNoIRQ
)

// Buzzer range accepted by Beep.
const (
	MinToneHz = 31
	MaxToneHz = 20000
)

// TopicPin is the retained ownership topic for a pin role, e.g.
// hal/pin/led. The payload is the owner id.
func TopicPin(pin int) bus.Topic { return bus.T("hal", "pin", variant.Role(pin)) }

// Options injects factories. Nil fields take the platform defaults.
// With Conn set, claims and releases are published on TopicPin.
type Options struct {
	Params Params
	Conn   *bus.Connection
	Pins   halcore.PinFactory
	I2C    halcore.I2CBusFactory
	SPI    halcore.SPIBusFactory
	Buzzer halcore.Buzzer
	Strip  halcore.Strip
}

// HAL hands out board pins and buses by logical identity and keeps one
// owner per pin. Pins owned by a bus controller in the plan are reserved
// under the bus id.
type HAL struct {
	mu     sync.Mutex
	pins   halcore.PinFactory
	i2c    halcore.I2CBusFactory
	spi    halcore.SPIBusFactory
	plan   setups.ResourcePlan
	claims map[int]string
	irq    variant.IRQTable
	buzzer halcore.Buzzer
	strip  halcore.Strip
	conn   *bus.Connection
}

// New builds the HAL. variant.Init must have run before any pin is used.
func New(opts Options) *HAL {
	plan := setups.Plan(opts.Params)
	h := &HAL{
		pins:   opts.Pins,
		i2c:    opts.I2C,
		spi:    opts.SPI,
		plan:   plan,
		claims: make(map[int]string),
		buzzer: opts.Buzzer,
		strip:  opts.Strip,
		conn:   opts.Conn,
	}
	if h.pins == nil {
		h.pins = platform.DefaultPinFactory()
	}
	if h.i2c == nil {
		h.i2c = platform.DefaultI2CFactory(plan)
	}
	if h.spi == nil {
		h.spi = platform.DefaultSPIFactory(plan)
	}
	if h.buzzer == nil {
		h.buzzer = platform.DefaultBuzzer()
	}
	if h.strip == nil {
		h.strip = platform.DefaultStrip()
	}
	for pin, id := range plan.BusPins() {
		h.setOwner(pin, id)
	}
	// Output pins driven by board drivers.
	h.setOwner(variant.PinBuzzer, "buzzer")
	h.setOwner(variant.PinWS2812, "ws2812")
	return h
}

// Plan returns the bus plan in effect.
func (h *HAL) Plan() setups.ResourcePlan { return h.plan }

// ClaimPin gives devID exclusive use of a logical pin.
func (h *HAL) ClaimPin(devID string, pin int) (Pin, error) {
	if _, ok := variant.Lookup(pin); !ok {
		return nil, ErrUnknownPin
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if owner, busy := h.claims[pin]; busy && owner != devID {
		return nil, ErrPinInUse
	}
	p, ok := h.pins.ByNumber(pin)
	if !ok {
		return nil, ErrUnknownPin
	}
	h.setOwner(pin, devID)
	return p, nil
}

// ReleasePin drops devID's claim and any EIC handler on the pin.
func (h *HAL) ReleasePin(devID string, pin int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if owner, ok := h.claims[pin]; !ok || owner != devID {
		return ErrNotOwner
	}
	h.clearOwner(pin)
	if line, err := variant.EICFor(pin); err == nil {
		_ = h.irq.RegisterEIC(line, nil)
		if p, ok := h.pins.ByNumber(pin); ok {
			if ip, ok := p.(halcore.IRQPin); ok {
				_ = ip.ClearIRQ()
			}
		}
	}
	return nil
}

func (h *HAL) setOwner(pin int, id string) {
	h.claims[pin] = id
	if h.conn != nil {
		h.conn.Publish(h.conn.NewMessage(TopicPin(pin), id, true))
	}
}

func (h *HAL) clearOwner(pin int) {
	delete(h.claims, pin)
	if h.conn != nil {
		h.conn.Publish(h.conn.NewMessage(TopicPin(pin), nil, true))
	}
}

// Owner reports who holds a pin.
func (h *HAL) Owner(pin int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.claims[pin]
	return o, ok
}

// WatchPin claims pin as a pulled-up input and calls fn on the chosen
// edge. The pin must have an EIC line in the board table.
func (h *HAL) WatchPin(devID string, pin int, edge Edge, fn func()) (Pin, error) {
	line, err := variant.EICFor(pin)
	if err != nil {
		if err == errcode.UnknownPin {
			return nil, ErrUnknownPin
		}
		return nil, ErrNoIRQ
	}
	owner, held := h.Owner(pin)
	held = held && owner == devID
	p, err := h.ClaimPin(devID, pin)
	if err != nil {
		return nil, err
	}
	// Undo only what this call did; an earlier claim by devID survives.
	rollback := func() {
		h.mu.Lock()
		_ = h.irq.RegisterEIC(line, nil)
		h.mu.Unlock()
		if !held {
			_ = h.ReleasePin(devID, pin)
		}
	}
	ip, ok := p.(halcore.IRQPin)
	if !ok {
		rollback()
		return nil, ErrNoIRQ
	}
	if err := p.ConfigureInput(PullUp); err != nil {
		rollback()
		return nil, err
	}
	h.mu.Lock()
	_ = h.irq.RegisterEIC(line, fn)
	h.mu.Unlock()
	if err := ip.SetIRQ(edge, func() { h.irq.DispatchEIC(line) }); err != nil {
		rollback()
		return nil, err
	}
	return p, nil
}

// I2C returns the bus by plan id ("wire", "wire1").
func (h *HAL) I2C(id string) (drivers.I2C, error) {
	if b, ok := h.i2c.ByID(id); ok {
		return b, nil
	}
	return nil, ErrUnknownBus
}

// SPI returns the SPI master by plan id ("spi"). Chip selects are claimed
// separately as GPIO.
func (h *HAL) SPI(id string) (drivers.SPI, error) {
	if b, ok := h.spi.ByID(id); ok {
		return b, nil
	}
	return nil, ErrUnknownBus
}

// Beep plays one tone on the buzzer. hz is clamped to
// [MinToneHz, MaxToneHz].
func (h *HAL) Beep(hz, beats float64) error {
	if err := h.buzzer.Tone(mathx.Clamp(hz, MinToneHz, MaxToneHz), beats); err != nil {
		return err
	}
	return h.buzzer.Off()
}

// Strip returns the WS2812 chain.
func (h *HAL) Strip() halcore.Strip { return h.strip }
