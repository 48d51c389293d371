// services/hal/internal/platform/factories_host.go
//go:build !atsamd21

package platform

import (
	"image/color"
	"sync"
	"time"

	"co2ampel-go/services/hal/internal/halcore"
	"co2ampel-go/services/hal/internal/platform/setups"
	"co2ampel-go/variant"

	"tinygo.org/x/drivers"
)

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side tests.
type HostI2C struct {
	mu     sync.Mutex
	Hz     uint32
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
	// Reply, when set, fills the read buffer of every transaction.
	Reply []byte
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	copy(r, h.Reply)
	return nil
}

type hostI2CFactory struct {
	buses map[string]drivers.I2C
}

func (f *hostI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultI2CFactory creates inert host I²C buses for every bus in the plan.
func DefaultI2CFactory(plan setups.ResourcePlan) halcore.I2CBusFactory {
	f := &hostI2CFactory{buses: make(map[string]drivers.I2C, len(plan.I2C))}
	for _, b := range plan.I2C {
		f.buses[b.ID] = &HostI2C{Hz: b.Hz}
	}
	return f
}

// ----------------------------- SPI (host) ------------------------------------

// HostSPI implements tinygo drivers.SPI for host-side tests. Reads return
// Reply, or zeros when Reply is short.
type HostSPI struct {
	mu    sync.Mutex
	Hz    uint32
	LastW []byte
	Reply []byte
}

func (h *HostSPI) Tx(w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastW = append([]byte(nil), w...)
	for i := range r {
		r[i] = 0
	}
	copy(r, h.Reply)
	return nil
}

func (h *HostSPI) Transfer(b byte) (byte, error) {
	r := []byte{0}
	err := h.Tx([]byte{b}, r)
	return r[0], err
}

type hostSPIFactory struct {
	buses map[string]drivers.SPI
}

func (f *hostSPIFactory) ByID(id string) (drivers.SPI, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultSPIFactory creates inert host SPI masters for every SPI bus in the plan.
func DefaultSPIFactory(plan setups.ResourcePlan) halcore.SPIBusFactory {
	f := &hostSPIFactory{buses: make(map[string]drivers.SPI, len(plan.SPI))}
	for _, b := range plan.SPI {
		f.buses[b.ID] = &HostSPI{Hz: b.Hz}
	}
	return f
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin and IRQPin for host-side tests.
type FakePin struct {
	mu       sync.RWMutex
	number   int
	level    bool
	modeOut  bool
	pull     halcore.Pull
	irqEdge  halcore.Edge
	irqFunc  func()
	debounce time.Duration
	lastIRQ  time.Time
}

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	if pull == halcore.PullUp {
		p.level = true
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	edge := edgeFrom(old, level)
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edge)
	deb := p.debounce
	last := p.lastIRQ
	now := time.Now()
	if want && (deb == 0 || now.Sub(last) >= deb) {
		p.lastIRQ = now
		p.mu.Unlock()
		if irq != nil {
			irq() // ISR-style callback
		}
		return
	}
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// IsOutput reports the configured direction.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

func (p *FakePin) Pull() halcore.Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

func (p *FakePin) SetIRQ(edge halcore.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = halcore.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) halcore.Edge {
	switch {
	case !old && new:
		return halcore.EdgeRising
	case old && !new:
		return halcore.EdgeFalling
	default:
		return halcore.EdgeNone
	}
}

func irqWanted(cfg, seen halcore.Edge) bool {
	switch cfg {
	case halcore.EdgeBoth:
		return seen == halcore.EdgeRising || seen == halcore.EdgeFalling
	case halcore.EdgeNone:
		return false
	default:
		return cfg == seen
	}
}

// HostPinFactory returns stable *FakePin instances per logical pin. Numbers
// outside the board table are rejected.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	if _, ok := variant.Lookup(n); !ok {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests (e.g. to drive IRQ edges).
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() halcore.PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- Outputs (host) --------------------------------

// HostBuzzer records tones.
type HostBuzzer struct {
	mu    sync.Mutex
	Tones [][2]float64
	Offs  int
}

func (b *HostBuzzer) Tone(hz, beats float64) error {
	b.mu.Lock()
	b.Tones = append(b.Tones, [2]float64{hz, beats})
	b.mu.Unlock()
	return nil
}

func (b *HostBuzzer) Off() error {
	b.mu.Lock()
	b.Offs++
	b.mu.Unlock()
	return nil
}

// HostStrip records the last frame written.
type HostStrip struct {
	mu    sync.Mutex
	Frame []color.RGBA
}

func (s *HostStrip) WriteColors(c []color.RGBA) error {
	s.mu.Lock()
	s.Frame = append(s.Frame[:0], c...)
	s.mu.Unlock()
	return nil
}

func (s *HostStrip) Last() []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]color.RGBA(nil), s.Frame...)
}

// DefaultBuzzer and DefaultStrip return recording fakes on host builds.
func DefaultBuzzer() halcore.Buzzer { return &HostBuzzer{} }
func DefaultStrip() halcore.Strip   { return &HostStrip{} }
