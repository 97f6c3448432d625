package store

import (
	"context"
	"sync"

	"github.com/dmitrymomot/reduxkit/pkg/config"
)

// ObserveOption configures Observe.
type ObserveOption func(*observeConfig)

type observeConfig struct {
	bufferSize int
}

// WithBufferSize sets how many pending states an observation buffers.
// A minimum of 1 is enforced.
func WithBufferSize(n int) ObserveOption {
	return func(c *observeConfig) {
		c.bufferSize = max(n, 1)
	}
}

// ObserveWithConfig applies the observer buffer size from cfg.
func ObserveWithConfig(cfg config.Store) ObserveOption {
	return WithBufferSize(cfg.ObserverBuffer)
}

// Observation is a push-style stream of store states.
// Receive and Close are safe for concurrent use.
type Observation struct {
	ch     chan any
	done   chan struct{}
	closed bool
	mu     sync.Mutex

	unsubscribe func()
}

// Observe streams the state of s: the current state right away, then the
// latest state after every completed dispatch. When the buffer is full the
// oldest pending state is dropped, so a slow reader always catches up with
// the newest one.
//
// The observation ends when ctx is cancelled or Close is called. The store
// listener is removed on the store's own goroutine during the next dispatch.
func Observe(ctx context.Context, s Store, opts ...ObserveOption) (*Observation, error) {
	if s == nil {
		return nil, invalidArgument("expected a store to observe")
	}
	if ctx == nil {
		return nil, invalidArgument("expected a context")
	}

	cfg := &observeConfig{bufferSize: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	o := &Observation{
		ch:   make(chan any, cfg.bufferSize),
		done: make(chan struct{}),
	}

	o.send(s.GetState())

	unsubscribe, err := s.Subscribe(func() {
		if o.isClosed() {
			o.unsubscribe()
			return
		}
		o.send(s.GetState())
	})
	if err != nil {
		return nil, err
	}
	o.unsubscribe = unsubscribe

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = o.Close()
			case <-o.done:
			}
		}()
	}

	return o, nil
}

// Receive returns the channel delivering states. It is closed with the observation.
func (o *Observation) Receive() <-chan any {
	return o.ch
}

// Close ends the observation. It is idempotent.
func (o *Observation) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.closed {
		o.closed = true
		close(o.ch)
		close(o.done)
	}
	return nil
}

func (o *Observation) isClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

func (o *Observation) send(state any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}

	for {
		select {
		case o.ch <- state:
			return
		default:
		}
		select {
		case <-o.ch:
		default:
		}
	}
}
