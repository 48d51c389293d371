package variant

import (
	"sync"

	"co2ampel-go/port"
)

// InitAction is what the boot sequence does to one pin.
type InitAction uint8

const (
	OutputLow  InitAction = iota // DIRSET, OUTCLR
	OutputHigh                   // DIRSET, OUTSET
	BusPullUp                    // PINCFG.PULLEN, OUTSET
)

func (a InitAction) String() string {
	switch a {
	case OutputLow:
		return "output_low"
	case OutputHigh:
		return "output_high"
	case BusPullUp:
		return "pullup"
	default:
		return "unknown"
	}
}

// InitStep is one entry of the boot sequence.
type InitStep struct {
	Pin    int
	Action InitAction
}

// Power rails and chip selects get a known level, and the two I2C buses
// idle high on the internal pull-ups.
var initSteps = [...]InitStep{
	{PinLSensorPwr, OutputLow}, // off
	{PinLED, OutputLow},        // off
	{PinBuzzer, OutputLow},     // off
	{PinWS2812, OutputLow},
	{WINCChipEnPin, OutputLow}, // off
	{WINCResetPin, OutputLow},
	{WINCSPICSPin, OutputHigh},
	{WINCWakePin, OutputHigh},
	{PinRFM9xCS, OutputHigh},

	{PinWireSDA, BusPullUp},
	{PinWireSCL, BusPullUp},
	{PinWire1SDA, BusPullUp},
	{PinWire1SCL, BusPullUp},
}

// InitSteps returns the boot sequence in execution order.
func InitSteps() []InitStep {
	s := initSteps
	return s[:]
}

// InitPort runs the boot sequence against p. Every write is a set/clear
// strobe, so running it again leaves the same state.
func InitPort(p port.Port) {
	for _, s := range initSteps {
		apply(p, s)
	}
}

func apply(p port.Port, s InitStep) {
	r := pinDescriptions[s.Pin].Ref()
	switch s.Action {
	case OutputLow:
		p.DirSet(r.Group, r.Mask)
		p.OutClr(r.Group, r.Mask)
	case OutputHigh:
		p.DirSet(r.Group, r.Mask)
		p.OutSet(r.Group, r.Mask)
	case BusPullUp:
		p.PinCfgSet(r.Group, r.Pad, port.PinCfgPULLEN)
		p.OutSet(r.Group, r.Mask)
	}
}

var initOnce sync.Once

// Init runs the boot sequence on the default PORT once per process. It must
// be called before anything else touches the pins.
func Init() {
	initOnce.Do(func() { InitPort(port.Default()) })
}
