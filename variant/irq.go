package variant

import "co2ampel-go/errcode"

// IRQTable routes peripheral interrupts to handlers by SERCOM instance and
// EIC line. Registration happens during bring-up; dispatch runs in interrupt
// context and must not allocate.
type IRQTable struct {
	sercom [SercomCount]func()
	eic    [ExtIntCount]func()
}

// RegisterSercom installs fn for the SERCOM instance. A nil fn clears it.
func (t *IRQTable) RegisterSercom(s Sercom, fn func()) error {
	if int(s) >= SercomCount {
		return errcode.New(errcode.InvalidParams, "irq", "sercom out of range")
	}
	t.sercom[s] = fn
	return nil
}

// RegisterEIC installs fn for the EIC line. A nil fn clears it.
func (t *IRQTable) RegisterEIC(line ExtInt, fn func()) error {
	if line < 0 || int(line) >= ExtIntCount {
		return errcode.New(errcode.InvalidParams, "irq", "eic line out of range")
	}
	t.eic[line] = fn
	return nil
}

// DispatchSercom runs the handler for s and reports whether one ran.
func (t *IRQTable) DispatchSercom(s Sercom) bool {
	if int(s) >= SercomCount {
		return false
	}
	if fn := t.sercom[s]; fn != nil {
		fn()
		return true
	}
	return false
}

// DispatchEIC runs the handler for line and reports whether one ran.
func (t *IRQTable) DispatchEIC(line ExtInt) bool {
	if line < 0 || int(line) >= ExtIntCount {
		return false
	}
	if fn := t.eic[line]; fn != nil {
		fn()
		return true
	}
	return false
}

// EICFor returns the EIC line wired to logical pin i.
func EICFor(i int) (ExtInt, error) {
	d, ok := Lookup(i)
	if !ok {
		return ExtIntNone, errcode.UnknownPin
	}
	if !d.HasExtInt() {
		return ExtIntNone, errcode.Unsupported
	}
	return d.EInt, nil
}
