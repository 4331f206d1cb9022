package notify

import (
	"context"
	"log"
	"sync"
)

// Dispatcher runs deliveries on a single background worker so notification
// latency never sits on a request's critical path. The queue is bounded;
// when it is full the message is dropped and logged, which is an acceptable
// loss for a best-effort channel.
type Dispatcher struct {
	svc    *Service
	logger *log.Logger
	queue  chan string
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts the worker. buffer bounds the number of pending
// messages; values below 1 fall back to 16.
func NewDispatcher(svc *Service, logger *log.Logger, buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 16
	}
	d := &Dispatcher{
		svc:    svc,
		logger: logger,
		queue:  make(chan string, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for text := range d.queue {
		// Send applies its own per-call timeout.
		d.svc.Send(context.Background(), text)
	}
}

// Dispatch enqueues a message and returns immediately. It never blocks and
// never reports failure to the caller.
func (d *Dispatcher) Dispatch(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	select {
	case d.queue <- text:
	default:
		if d.logger != nil {
			d.logger.Printf("notification queue full, dropping message")
		}
	}
}

// Close stops accepting messages and waits for pending deliveries to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
