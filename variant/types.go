package variant

import (
	"co2ampel-go/port"
	"co2ampel-go/x/conv"
)

// Port is the I/O bank a pad belongs to.
type Port uint8

const (
	PortA Port = Port(port.GroupA)
	PortB Port = Port(port.GroupB)
)

func (p Port) String() string {
	switch p {
	case PortA:
		return "A"
	case PortB:
		return "B"
	default:
		return "?"
	}
}

// PioType says how a pad is routed: as plain I/O or handed to a
// peripheral through the pin multiplexer.
type PioType int8

const (
	PioNotAPin     PioType = -1
	PioExtInt      PioType = 0
	PioAnalog      PioType = 1
	PioSercom      PioType = 2 // primary SERCOM mux (C)
	PioSercomAlt   PioType = 3 // alternate SERCOM mux (D)
	PioTimer       PioType = 4
	PioTimerAlt    PioType = 5
	PioCom         PioType = 6 // USB, I2S
	PioACClk       PioType = 7
	PioDigital     PioType = 8
	PioInput       PioType = 9
	PioInputPullup PioType = 10
	PioOutput      PioType = 11
)

func (t PioType) String() string {
	switch t {
	case PioNotAPin:
		return "not_a_pin"
	case PioExtInt:
		return "extint"
	case PioAnalog:
		return "analog"
	case PioSercom:
		return "sercom"
	case PioSercomAlt:
		return "sercom_alt"
	case PioTimer:
		return "timer"
	case PioTimerAlt:
		return "timer_alt"
	case PioCom:
		return "com"
	case PioACClk:
		return "ac_clk"
	case PioDigital:
		return "digital"
	case PioInput:
		return "input"
	case PioInputPullup:
		return "input_pullup"
	case PioOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Attr is the set of capabilities a pin supports.
type Attr uint32

const (
	AttrNone     Attr = 0
	AttrCombo    Attr = 1 << 0
	AttrAnalog   Attr = 1 << 1
	AttrDigital  Attr = 1 << 2
	AttrPWM      Attr = 1 << 3
	AttrTimer    Attr = 1 << 4
	AttrTimerAlt Attr = 1 << 5
	AttrExtInt   Attr = 1 << 6
)

var attrNames = [...]string{"combo", "analog", "digital", "pwm", "timer", "timer_alt", "extint"}

func (a Attr) Has(b Attr) bool { return a&b == b }

// String joins the set flag names with '|', or "none".
func (a Attr) String() string {
	if a == AttrNone {
		return "none"
	}
	var buf []byte
	for i, n := range attrNames {
		if a&(1<<uint(i)) == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, n...)
	}
	return string(buf)
}

// ADCChannel indexes the ADC input mux (AIN0..AIN19).
type ADCChannel int8

const (
	NoADCChannel ADCChannel = -1
	ADCChannel0  ADCChannel = 0
	ADCChannel1  ADCChannel = 1

	MaxADCChannel ADCChannel = 19
)

// PWMChannel packs a TCC instance and channel as instance<<8 | channel.
type PWMChannel int16

const (
	NotOnPWM PWMChannel = -1
	PWM0CH0  PWMChannel = 0<<8 | 0
	PWM0CH1  PWMChannel = 0<<8 | 1
)

func (c PWMChannel) Instance() int { return int(c) >> 8 }
func (c PWMChannel) Channel() int  { return int(c) & 0xff }

// TimerChannel packs a TC/TCC instance and channel as instance<<8 | channel.
// Instances 0..2 are TCC0..TCC2, 3..5 are TC3..TC5.
type TimerChannel int16

const (
	NotOnTimer TimerChannel = -1
	TCC0CH0    TimerChannel = 0<<8 | 0
	TCC0CH1    TimerChannel = 0<<8 | 1
)

func (c TimerChannel) Instance() int { return int(c) >> 8 }
func (c TimerChannel) Channel() int  { return int(c) & 0xff }

// ExtInt is an external interrupt controller (EIC) line.
type ExtInt int8

const (
	ExtIntNone ExtInt = -1
	ExtInt0    ExtInt = 0
	ExtInt2    ExtInt = 2
	ExtInt3    ExtInt = 3
	ExtInt4    ExtInt = 4
	ExtInt5    ExtInt = 5
	ExtIntNMI  ExtInt = 16

	// ExtIntCount is the number of EIC lines including NMI.
	ExtIntCount = 17
)

// Channel count limits for SAMD21.
const (
	pwmInstances   = 3 // TCC0..TCC2
	timerInstances = 6 // TCC0..TCC2, TC3..TC5
	maxWO          = 8 // waveform outputs per instance
)

// PinDescriptor describes one logical pin of the board.
type PinDescriptor struct {
	Port  Port
	Pad   uint8
	Type  PioType
	Attr  Attr
	ADC   ADCChannel
	PWM   PWMChannel
	Timer TimerChannel
	EInt  ExtInt
}

// HasPWM reports whether the pin is wired to a PWM or timer output.
func (d PinDescriptor) HasPWM() bool {
	return d.PWM != NotOnPWM || d.Timer != NotOnTimer
}

func (d PinDescriptor) HasADC() bool    { return d.ADC != NoADCChannel }
func (d PinDescriptor) HasExtInt() bool { return d.EInt != ExtIntNone }

// Bank is the PORT group index for raw register access.
func (d PinDescriptor) Bank() int { return int(d.Port) }

// Mask is the bit for this pad within its group registers.
func (d PinDescriptor) Mask() uint32 { return 1 << d.Pad }

// Ref returns the bank/mask pair used by port.Port writes.
func (d PinDescriptor) Ref() port.Ref { return port.RefOf(d.Bank(), d.Pad) }

// Name returns the datasheet pad name, e.g. "PA27".
func (d PinDescriptor) Name() string {
	return string([]byte{'P', 'A' + byte(d.Port), '0' + d.Pad/10, '0' + d.Pad%10})
}

func (d PinDescriptor) String() string {
	s := d.Name() + " " + d.Type.String() + " " + d.Attr.String()
	if d.HasADC() {
		s += " adc=" + conv.Utoa(uint64(d.ADC))
	}
	if d.PWM != NotOnPWM {
		s += " pwm=" + instCh(d.PWM.Instance(), d.PWM.Channel())
	}
	if d.Timer != NotOnTimer {
		s += " tc=" + instCh(d.Timer.Instance(), d.Timer.Channel())
	}
	if d.HasExtInt() {
		if d.EInt == ExtIntNMI {
			s += " eic=nmi"
		} else {
			s += " eic=" + conv.Utoa(uint64(d.EInt))
		}
	}
	return s
}

func instCh(inst, ch int) string {
	return conv.Itoa(int64(inst)) + "/" + conv.Itoa(int64(ch))
}
