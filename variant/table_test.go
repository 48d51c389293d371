package variant

import (
	"errors"
	"testing"

	"co2ampel-go/errcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	require.Equal(t, 27, Count())
	require.Equal(t, Count(), PinCount)
	pins := Pins()
	require.Len(t, pins, Count())
	assert.Equal(t, NumDigitalPins+4, Count(), "digital pins plus USB and crystal pads")
}

func TestPadsAreUnique(t *testing.T) {
	type key struct {
		p   Port
		pad uint8
	}
	seen := map[key]int{}
	for i := 0; i < Count(); i++ {
		d := Pin(i)
		k := key{d.Port, d.Pad}
		if j, dup := seen[k]; dup {
			t.Fatalf("pins %d and %d share pad %s", j, i, d.Name())
		}
		seen[k] = i
	}
}

func TestShippedTableValidates(t *testing.T) {
	pins := Pins()
	require.NoError(t, Validate(pins[:]))
	require.NoError(t, ValidateRouting())
}

func TestLEDIsDigitalOnly(t *testing.T) {
	d := Pin(PinLED)
	assert.Equal(t, "PA27", d.Name())
	assert.Equal(t, AttrDigital, d.Attr)
	assert.Equal(t, NoADCChannel, d.ADC)
	assert.Equal(t, NotOnPWM, d.PWM)
	assert.Equal(t, NotOnTimer, d.Timer)
	assert.False(t, d.HasPWM())
	assert.False(t, d.HasADC())
	assert.Equal(t, PinLED, LEDBuiltin)
}

func TestBuzzerHasPWM(t *testing.T) {
	d := Pin(PinBuzzer)
	require.NotEqual(t, NotOnPWM, d.PWM)
	require.NotEqual(t, NotOnTimer, d.Timer)
	assert.True(t, d.HasPWM())

	assert.Equal(t, 0, d.PWM.Instance())
	assert.Equal(t, 1, d.PWM.Channel())
	tc, ok := TCInstance(d.Timer.Instance())
	require.True(t, ok)
	assert.Equal(t, "TCC0", tc)
	assert.Equal(t, 1, d.Timer.Channel())
}

func TestHasPWM_EitherChannel(t *testing.T) {
	base := PinDescriptor{PWM: NotOnPWM, Timer: NotOnTimer}
	assert.False(t, base.HasPWM())

	onlyPWM := base
	onlyPWM.PWM = PWM0CH0
	assert.True(t, onlyPWM.HasPWM())

	onlyTimer := base
	onlyTimer.Timer = TCC0CH0
	assert.True(t, onlyTimer.HasPWM())
}

func TestBankAndMask(t *testing.T) {
	cases := []struct {
		pin  int
		bank int
		mask uint32
		name string
	}{
		{PinLED, 0, 1 << 27, "PA27"},
		{PinSwitch, 1, 1 << 3, "PB03"},
		{WINCChipEnPin, 1, 1 << 10, "PB10"},
		{PinXIN32, 0, 1 << 0, "PA00"},
	}
	for _, c := range cases {
		d := Pin(c.pin)
		assert.Equal(t, c.bank, d.Bank(), c.name)
		assert.Equal(t, c.mask, d.Mask(), c.name)
		assert.Equal(t, c.name, d.Name())
		r := d.Ref()
		assert.Equal(t, c.bank, r.Group)
		assert.Equal(t, c.mask, r.Mask)
	}
}

func TestPinOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { _ = Pin(Count()) })
	assert.Panics(t, func() { _ = Pin(-1) })
}

func TestLookupAndRole(t *testing.T) {
	_, ok := Lookup(Count())
	assert.False(t, ok)
	_, ok = Lookup(-1)
	assert.False(t, ok)

	d, ok := Lookup(PinRFM9xCS)
	require.True(t, ok)
	assert.Equal(t, "PA21", d.Name())
	assert.Equal(t, ExtInt5, d.EInt)

	assert.Equal(t, "led", Role(PinLED))
	assert.Equal(t, "buzzer", Role(PinBuzzer))
	assert.Equal(t, "winc_cs", Role(WINCSPICSPin))
	assert.Equal(t, "", Role(99))

	i, ok := FindPad(PortA, 27)
	require.True(t, ok)
	assert.Equal(t, PinLED, i)
	_, ok = FindPad(PortB, 31)
	assert.False(t, ok)
}

func TestAnalogInputToDigitalPin(t *testing.T) {
	for _, c := range []struct {
		in   int
		want int
		ok   bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, -1, false},
		{-1, -1, false},
	} {
		got, ok := AnalogInputToDigitalPin(c.in)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.ok, ok)
	}
	assert.Equal(t, PinLSensor, A0)
}

func TestDescriptorString(t *testing.T) {
	assert.Equal(t, "PA05 digital digital|pwm|timer pwm=0/1 tc=0/1", Pin(PinBuzzer).String())
	assert.Equal(t, "PA02 analog analog|digital adc=0 eic=2", Pin(PinLSensor).String())
	assert.Equal(t, "PA24 com none", Pin(PinUSBDM).String())
	assert.Equal(t, "PB22 sercom_alt digital", Pin(PinSerial1RX).String())

	nmi := PinDescriptor{Port: PortA, Pad: 8, Type: PioSercom, Attr: AttrDigital,
		ADC: NoADCChannel, PWM: NotOnPWM, Timer: NotOnTimer, EInt: ExtIntNMI}
	assert.Equal(t, "PA08 sercom digital eic=nmi", nmi.String())
}

func TestValidateRejects(t *testing.T) {
	ok := func() PinDescriptor {
		return PinDescriptor{Port: PortA, Pad: 1, Type: PioDigital, Attr: AttrDigital,
			ADC: NoADCChannel, PWM: NotOnPWM, Timer: NotOnTimer, EInt: ExtIntNone}
	}
	other := ok()
	other.Pad = 2

	cases := []struct {
		name string
		mut  func(d *PinDescriptor)
		want errcode.Code
	}{
		{"duplicate pad", func(d *PinDescriptor) { d.Pad = 2 }, errcode.DuplicatePad},
		{"pad too high", func(d *PinDescriptor) { d.Pad = 32 }, errcode.InvalidPad},
		{"unknown port", func(d *PinDescriptor) { d.Port = 2 }, errcode.InvalidPad},
		{"adc below sentinel", func(d *PinDescriptor) { d.ADC = -2 }, errcode.InvalidChannel},
		{"adc too high", func(d *PinDescriptor) { d.ADC = MaxADCChannel + 1 }, errcode.InvalidChannel},
		{"pwm instance", func(d *PinDescriptor) { d.PWM = 3 << 8 }, errcode.InvalidChannel},
		{"timer channel", func(d *PinDescriptor) { d.Timer = 0<<8 | 8 }, errcode.InvalidChannel},
		{"eic", func(d *PinDescriptor) { d.EInt = ExtIntCount }, errcode.InvalidChannel},
		{"pwm attr only", func(d *PinDescriptor) { d.Attr |= AttrPWM }, errcode.AttrMismatch},
		{"timer attr only", func(d *PinDescriptor) { d.Attr |= AttrTimer }, errcode.AttrMismatch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := ok()
			c.mut(&d)
			err := Validate([]PinDescriptor{other, d})
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
			assert.Equal(t, c.want, errcode.Of(err))
			assert.Contains(t, err.Error(), "pin 1")
		})
	}

	require.NoError(t, Validate([]PinDescriptor{other, ok()}))
}
