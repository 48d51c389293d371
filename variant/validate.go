package variant

import (
	"co2ampel-go/errcode"
	"co2ampel-go/port"
	"co2ampel-go/x/conv"
)

// Validate checks a pin table for structural faults: duplicate pads, pads
// outside a group, optional fields that are neither a valid channel nor the
// sentinel, and PWM/timer attributes without a channel. It does not judge
// the board's routing choices.
func Validate(pins []PinDescriptor) error {
	type padKey struct {
		port Port
		pad  uint8
	}
	seen := make(map[padKey]int, len(pins))
	for i, d := range pins {
		if d.Port != PortA && d.Port != PortB {
			return pinErr(errcode.InvalidPad, i, "unknown port")
		}
		if d.Pad >= port.PadsPerGroup {
			return pinErr(errcode.InvalidPad, i, "pad out of range")
		}
		k := padKey{d.Port, d.Pad}
		if j, dup := seen[k]; dup {
			return pinErr(errcode.DuplicatePad, i, d.Name()+" already used by pin "+conv.Itoa(int64(j)))
		}
		seen[k] = i

		if d.ADC != NoADCChannel && (d.ADC < 0 || d.ADC > MaxADCChannel) {
			return pinErr(errcode.InvalidChannel, i, "adc")
		}
		if d.PWM != NotOnPWM && !validInstCh(int(d.PWM), pwmInstances) {
			return pinErr(errcode.InvalidChannel, i, "pwm")
		}
		if d.Timer != NotOnTimer && !validInstCh(int(d.Timer), timerInstances) {
			return pinErr(errcode.InvalidChannel, i, "timer")
		}
		if d.EInt != ExtIntNone && (d.EInt < 0 || int(d.EInt) >= ExtIntCount) {
			return pinErr(errcode.InvalidChannel, i, "eic")
		}

		if d.Attr.Has(AttrPWM) && d.PWM == NotOnPWM {
			return pinErr(errcode.AttrMismatch, i, "pwm attribute without pwm channel")
		}
		if d.Attr.Has(AttrTimer) && d.Timer == NotOnTimer {
			return pinErr(errcode.AttrMismatch, i, "timer attribute without timer channel")
		}
	}
	return nil
}

// ValidateRouting checks that every bus interface pin is handed to a SERCOM.
func ValidateRouting() error {
	for _, itf := range Interfaces() {
		for _, p := range itf.Pins {
			d, ok := Lookup(p)
			if !ok {
				return pinErr(errcode.UnknownPin, p, itf.Name)
			}
			if d.Type != PioSercom && d.Type != PioSercomAlt {
				return pinErr(errcode.MisroutedPin, p, itf.Name+" pin routed as "+d.Type.String())
			}
		}
	}
	return nil
}

func validInstCh(v, instances int) bool {
	if v < 0 {
		return false
	}
	inst, ch := v>>8, v&0xff
	return inst < instances && ch < maxWO
}

func pinErr(c errcode.Code, i int, msg string) error {
	return &errcode.E{C: c, Op: "pin " + conv.Itoa(int64(i)), Msg: msg}
}
