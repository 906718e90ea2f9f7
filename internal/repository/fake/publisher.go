package fake

import (
	"context"
	"sync"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
)

// Publisher records every event it is handed.
type Publisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *Publisher) PublishWithRetry(_ context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

// Events returns the recorded events of type t, or all of them when t is empty.
func (p *Publisher) Events(t event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if t == "" || e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
