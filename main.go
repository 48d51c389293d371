package main

import (
	"context"
	"image/color"
	"time"

	"co2ampel-go/bus"
	"co2ampel-go/services/config"
	"co2ampel-go/services/hal"
	"co2ampel-go/services/heartbeat"
	"co2ampel-go/variant"
)

const (
	numLEDs    = 4
	pollPeriod = 50 * time.Millisecond
)

func main() {
	// Power rails, chip selects and bus pull-ups before anything else.
	variant.Init()

	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot", variant.Count(), "pins")

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, config.DefaultDevice)
	b := bus.NewBus(8)

	if err := config.NewService().Publish(ctx, b.NewConnection("config")); err != nil {
		println("Error:", err.Error())
	}

	h := hal.New(hal.Options{Conn: b.NewConnection("hal")})
	_ = h.Strip().WriteColors(make([]color.RGBA, numLEDs))

	led, err := h.ClaimPin("heartbeat", variant.PinLED)
	if err != nil {
		println("Error: led:", err.Error())
		return
	}
	_ = led.ConfigureOutput(false)
	hb := &heartbeat.Service{LED: led}
	if err := hb.Start(ctx, b.NewConnection("heartbeat")); err != nil {
		println("Error:", err.Error())
	}

	sw, err := h.ClaimPin("switch", variant.PinSwitch)
	if err != nil {
		println("Error: switch:", err.Error())
		return
	}
	_ = sw.ConfigureInput(hal.PullUp)

	beep := config.DefaultBeep
	if m, ok := b.Retained(config.TopicBeep); ok {
		if v, ok := m.Payload.(config.Beep); ok {
			beep = v
		}
	}

	// The switch has no EIC line on this board, so it is polled.
	tick := time.NewTicker(pollPeriod)
	defer tick.Stop()
	prev := sw.Get()
	for range tick.C {
		now := sw.Get()
		if prev && !now {
			println("Info: switch pressed")
			_ = h.Beep(beep.Hz, beep.Beats)
		}
		prev = now
	}
}
