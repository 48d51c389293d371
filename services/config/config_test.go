package config

import (
	"context"
	"testing"
	"time"

	"co2ampel-go/bus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceCtx(id string) context.Context {
	return context.WithValue(context.Background(), CtxDeviceKey, id)
}

func TestPublish_RetainedPerSection(t *testing.T) {
	b := bus.NewBus(8)
	conn := b.NewConnection("test-config")

	require.NoError(t, NewService().Publish(deviceCtx(DefaultDevice), conn))

	sub := conn.Subscribe(bus.T(configPrefix, "#"))
	got := map[string]any{}
	for len(got) < 2 {
		select {
		case m := <-sub.Channel():
			got[m.Topic.String()] = m.Payload
		case <-time.After(200 * time.Millisecond):
			t.Fatalf("timeout, got %v", got)
		}
	}
	assert.Equal(t, DefaultHeartbeat, got["config/heartbeat"])
	assert.Equal(t, DefaultBeep, got["config/beep"])
}

func TestPublish_Errors(t *testing.T) {
	conn := bus.NewBus(1).NewConnection("test")
	assert.Error(t, NewService().Publish(context.Background(), conn))
	assert.Error(t, NewService().Publish(deviceCtx("pico"), conn))
}

func TestLookupOverride(t *testing.T) {
	old := Lookup
	Lookup = func(string) (Config, bool) {
		return Config{Heartbeat: Heartbeat{IntervalMs: 250}}, true
	}
	t.Cleanup(func() { Lookup = old })

	b := bus.NewBus(2)
	conn := b.NewConnection("test")
	NewService().Start(deviceCtx("bench"), conn)

	assert.Eventually(t, func() bool {
		m, ok := b.Retained(TopicHeartbeat)
		return ok && m.Payload.(Heartbeat).IntervalMs == 250
	}, time.Second, 10*time.Millisecond)
}
