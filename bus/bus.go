// Package bus is a small in-process publish/subscribe hub.
//
// Topics are segment lists. Subscriptions may use "+" to match one segment
// and a trailing "#" to match any remainder. The last retained message on a
// topic is replayed to every later matching subscriber.
package bus

import (
	"strings"
	"sync"
)

// Topic is a path of segments, e.g. T("config", "heartbeat").
type Topic []string

// T builds a Topic.
func T(parts ...string) Topic { return Topic(parts) }

func (t Topic) String() string { return strings.Join(t, "/") }

func (t Topic) key() string { return strings.Join(t, "\x00") }

// Match reports whether the concrete topic c matches the pattern t.
func (t Topic) Match(c Topic) bool {
	for i, seg := range t {
		if seg == "#" && i == len(t)-1 {
			return true
		}
		if i >= len(c) {
			return false
		}
		if seg != "+" && seg != c[i] {
			return false
		}
	}
	return len(t) == len(c)
}

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

type Subscription struct {
	pattern Topic
	ch      chan *Message
	conn    *Connection
}

func (s *Subscription) Topic() Topic             { return s.pattern }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// Bus routes messages between connections.
type Bus struct {
	mu       sync.Mutex
	subs     []*Subscription
	retained map[string]*Message
	qLen     int
}

// NewBus creates a bus whose subscriptions buffer queueLen messages.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{retained: make(map[string]*Message), qLen: queueLen}
}

// Publish delivers msg to every matching subscription. A full queue drops
// its oldest message. A retained message with a nil payload clears the
// retained slot.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		if msg.Payload == nil {
			delete(b.retained, msg.Topic.key())
		} else {
			b.retained[msg.Topic.key()] = msg
		}
	}
	for _, s := range b.subs {
		if s.pattern.Match(msg.Topic) {
			deliver(s.ch, msg)
		}
	}
}

// Retained returns the retained message on an exact topic.
func (b *Bus) Retained(t Topic) (*Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.retained[t.key()]
	return m, ok
}

func deliver(ch chan *Message, msg *Message) {
	select {
	case ch <- msg:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *Bus) add(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, s)
	for _, m := range b.retained {
		if s.pattern.Match(m.Topic) {
			deliver(s.ch, m)
		}
	}
}

func (b *Bus) remove(s *Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, x := range b.subs {
		if x == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Connection groups the subscriptions of one client.
type Connection struct {
	bus  *Bus
	id   string
	mu   sync.Mutex
	subs []*Subscription
}

// NewConnection creates a connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// NewMessage is shorthand for building a Message.
func (c *Connection) NewMessage(t Topic, payload any, retained bool) *Message {
	return &Message{Topic: t, Payload: payload, Retained: retained}
}

// Subscribe registers a subscription owned by this connection. Matching
// retained messages are queued before it returns.
func (c *Connection) Subscribe(pattern Topic) *Subscription {
	s := &Subscription{pattern: pattern, ch: make(chan *Message, c.bus.qLen), conn: c}
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()
	c.bus.add(s)
	return s
}

// Unsubscribe removes sub and closes its channel.
func (c *Connection) Unsubscribe(sub *Subscription) {
	if !c.bus.remove(sub) {
		return
	}
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Disconnect closes all subscriptions of the connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, s := range subs {
		if c.bus.remove(s) {
			close(s.ch)
		}
	}
}
