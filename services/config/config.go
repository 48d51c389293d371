// Package config publishes the per-device runtime settings as retained bus
// messages under "config/<section>".
package config

import (
	"context"
	"errors"

	"co2ampel-go/bus"
)

const (
	serviceName  = "config"
	configPrefix = "config"

	DefaultDevice = "co2ampel"
)

type ctxKey string

// CtxDeviceKey carries the device id in the context passed to Publish.
const CtxDeviceKey ctxKey = "device"

// Heartbeat is the LED heartbeat section.
type Heartbeat struct {
	IntervalMs int
}

// Beep is the tone played when the switch is pressed.
type Beep struct {
	Hz    float64
	Beats float64
}

// Config holds every section for one device.
type Config struct {
	Heartbeat Heartbeat
	Beep      Beep
}

var (
	TopicHeartbeat = bus.T(configPrefix, "heartbeat")
	TopicBeep      = bus.T(configPrefix, "beep")
)

// Defaults for the CO2-Ampel.
var (
	DefaultHeartbeat = Heartbeat{IntervalMs: 1000}
	DefaultBeep      = Beep{Hz: 2000, Beats: 0.1}
)

var embeddedConfigs = map[string]Config{
	DefaultDevice: {
		Heartbeat: DefaultHeartbeat,
		Beep:      DefaultBeep,
	},
}

// Lookup resolves a device's config. Tests may replace it.
var Lookup = func(device string) (Config, bool) {
	c, ok := embeddedConfigs[device]
	return c, ok
}

type Service struct {
	Name string
}

func NewService() *Service { return &Service{Name: serviceName} }

// Publish looks up the device named in ctx and publishes one retained
// message per section.
func (s *Service) Publish(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errors.New("config: missing device id in context")
	}
	cfg, ok := Lookup(device)
	if !ok {
		return errors.New("config: no embedded config for device " + device)
	}
	conn.Publish(conn.NewMessage(TopicHeartbeat, cfg.Heartbeat, true))
	conn.Publish(conn.NewMessage(TopicBeep, cfg.Beep, true))
	return nil
}

// Start runs Publish in the background and logs a failure.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.Publish(ctx, conn); err != nil {
			println("Error:", err.Error())
		}
	}()
}
