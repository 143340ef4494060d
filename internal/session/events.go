package session

import (
	"sync"

	"github.com/Fjolfrin/tbtui/internal/config"
)

// Event is something plots react to.
type Event interface {
	event()
}

// ThemeChanged is published when the UI theme switches.
type ThemeChanged struct {
	Theme config.ThemeName
}

func (ThemeChanged) event() {}

// Bus delivers events to subscribers in subscription order.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
	ids  []int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

var (
	processBus     *Bus
	processBusOnce sync.Once
)

// Events returns the process-wide bus.
func Events() *Bus {
	processBusOnce.Do(func() {
		processBus = NewBus()
	})
	return processBus
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.ids = append(b.ids, id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			for i, v := range b.ids {
				if v == id {
					b.ids = append(b.ids[:i], b.ids[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish calls every subscriber with e. Handlers run on the caller's
// goroutine and must not subscribe or publish.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.ids))
	for _, id := range b.ids {
		handlers = append(handlers, b.subs[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.ids)
}
