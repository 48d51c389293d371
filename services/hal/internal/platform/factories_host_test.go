//go:build !atsamd21

package platform

import (
	"image/color"
	"testing"

	"co2ampel-go/services/hal/internal/halcore"
	"co2ampel-go/services/hal/internal/platform/setups"
	"co2ampel-go/variant"
)

func TestHostPinFactory_LogicalRange(t *testing.T) {
	f := DefaultPinFactory().(*HostPinFactory)

	if _, ok := f.ByNumber(variant.Count()); ok {
		t.Fatal("pin past the table must be rejected")
	}
	if _, ok := f.ByNumber(-1); ok {
		t.Fatal("negative pin must be rejected")
	}

	a, ok := f.ByNumber(variant.PinLED)
	if !ok {
		t.Fatal("LED pin missing")
	}
	b, _ := f.ByNumber(variant.PinLED)
	if a != b {
		t.Fatal("factory must return a stable pin per number")
	}
	if a.Number() != variant.PinLED {
		t.Fatalf("Number() = %d", a.Number())
	}
}

func TestFakePin_IRQEdges(t *testing.T) {
	f := &HostPinFactory{}
	gp, _ := f.ByNumber(variant.PinSwitch)
	p := gp.(*FakePin)

	if err := p.ConfigureInput(halcore.PullUp); err != nil {
		t.Fatal(err)
	}
	if !p.Get() || p.IsOutput() || p.Pull() != halcore.PullUp {
		t.Fatal("pull-up input should idle high")
	}

	hits := 0
	_ = p.SetIRQ(halcore.EdgeFalling, func() { hits++ })
	p.Set(false) // falling
	p.Set(true)  // rising, ignored
	p.Set(false) // falling
	if hits != 2 {
		t.Fatalf("falling edges = %d, want 2", hits)
	}

	_ = p.ClearIRQ()
	p.Toggle()
	p.Toggle()
	if hits != 2 {
		t.Fatal("handler ran after ClearIRQ")
	}
}

func TestDefaultI2CFactory_FromPlan(t *testing.T) {
	f := DefaultI2CFactory(setups.Plan(setups.Params{WireHz: 50_000}))

	b, ok := f.ByID("wire")
	if !ok {
		t.Fatal("wire bus missing")
	}
	h := b.(*HostI2C)
	if h.Hz != 50_000 {
		t.Fatalf("Hz = %d", h.Hz)
	}
	h.Reply = []byte{0xAA, 0xBB}
	r := make([]byte, 2)
	if err := b.Tx(0x61, []byte{0x03, 0x00}, r); err != nil {
		t.Fatal(err)
	}
	if h.LastTx.Addr != 0x61 || h.LastTx.Rn != 2 || r[1] != 0xBB {
		t.Fatalf("unexpected tx record %+v / %x", h.LastTx, r)
	}

	if _, ok := f.ByID("wire1"); !ok {
		t.Fatal("wire1 bus missing")
	}
	if _, ok := f.ByID("i2c0"); ok {
		t.Fatal("unexpected bus")
	}
}

func TestHostOutputs(t *testing.T) {
	bz := DefaultBuzzer().(*HostBuzzer)
	_ = bz.Tone(2000, 0.25)
	_ = bz.Off()
	if len(bz.Tones) != 1 || bz.Tones[0][0] != 2000 || bz.Offs != 1 {
		t.Fatalf("buzzer record %+v", bz)
	}

	st := DefaultStrip().(*HostStrip)
	_ = st.WriteColors([]color.RGBA{{R: 255}, {G: 255}})
	if got := st.Last(); len(got) != 2 || got[1].G != 255 {
		t.Fatalf("strip frame %+v", got)
	}
}
