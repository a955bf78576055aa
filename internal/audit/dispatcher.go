package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
)

const (
	ActionUserRegistered = "user_registered"
	ActionBookingCreated = "booking_created"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives every dispatched event.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks   []Sink
	queue   chan Event
	timeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks:   sinks,
		queue:   make(chan Event, 100),
		timeout: 10 * time.Second,
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			if err := s.Record(ctx, ev); err != nil {
				logger.Error("audit sink failed", "action", ev.Action, "error", err)
			}
			cancel()
		}
	}
}

// Dispatch never blocks the caller: when the queue is full the event is
// dropped. A nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain. Dispatch
// must not be called after Close.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
