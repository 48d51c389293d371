// Package heartbeat blinks the status LED at the configured interval.
package heartbeat

import (
	"context"
	"errors"
	"time"

	"co2ampel-go/bus"
	"co2ampel-go/services/config"
	"co2ampel-go/x/mathx"
)

const (
	DefaultInterval = time.Second
	MinInterval     = 100 * time.Millisecond
	MaxInterval     = 10 * time.Second
)

// Toggler is the LED side of the service; hal.Pin satisfies it.
type Toggler interface {
	Toggle()
}

type Service struct {
	LED Toggler
}

// Interval converts a config section to a tick period within
// [MinInterval, MaxInterval]. Zero means DefaultInterval.
func Interval(c config.Heartbeat) time.Duration {
	if c.IntervalMs == 0 {
		return DefaultInterval
	}
	return mathx.Clamp(time.Duration(c.IntervalMs)*time.Millisecond, MinInterval, MaxInterval)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(config.TopicHeartbeat)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(DefaultInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			return
		case <-tick.C:
			s.LED.Toggle()
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				println("Info: heartbeat config closed, stopping")
				return
			}
			if msg == nil {
				continue
			}
			c, ok := msg.Payload.(config.Heartbeat)
			if !ok {
				continue
			}
			iv := Interval(c)
			tick.Reset(iv)
			println("Info: heartbeat interval", iv.Milliseconds(), "ms")
		}
	}
}

// Start launches the service loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	if s.LED == nil {
		return errors.New("heartbeat: no LED")
	}
	go s.serviceLoop(ctx, conn)
	return nil
}
