package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// AuthEventHandler consumes auth-state-change events. Implemented by the
// session resolver.
type AuthEventHandler interface {
	HandleAuthEvent(ctx context.Context, ev ports.AuthEvent)
}

// HandlerFunc adapts a function to the AuthEventHandler interface.
type HandlerFunc func(ctx context.Context, ev ports.AuthEvent)

func (f HandlerFunc) HandleAuthEvent(ctx context.Context, ev ports.AuthEvent) {
	f(ctx, ev)
}

// Dispatcher routes auth events to a fixed set of workers using consistent
// hashing on the user id, guaranteeing in-order delivery for each logical
// session. It implements ports.AuthEventSink.
type Dispatcher struct {
	workers []chan ports.AuthEvent
	handler AuthEventHandler
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, handler AuthEventHandler, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuthEvent, numWorkers),
		handler: handler,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. The subscription stays live until
// ctx is cancelled at application shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an event to the worker responsible for its user id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(ev ports.AuthEvent) {
	d.workers[d.shardIndex(ev.UserID)] <- ev
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			d.handler.HandleAuthEvent(ctx, ev)
			d.log.Debug().
				Str("user_id", ev.UserID).
				Str("event", string(ev.Type)).
				Int("worker_id", id).
				Msg("auth event processed")
		}
	}
}
