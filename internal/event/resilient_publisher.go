package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/PetBot_Go/internal/logger"
)

// Publisher is the fire-and-forget side of the bus used by services
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

type retryEntry struct {
	event       Event
	attempts    int
	nextAttempt time.Time
	lastErr     error
}

// ResilientPublisher wraps a Bus with retry and dead-letter handling. The
// first attempt runs on the caller's goroutine; failures are retried with
// exponential backoff by a single background worker.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	closed       bool
	wg           sync.WaitGroup
}

// NewResilientPublisher starts the retry worker. Events that exhaust
// maxRetries are appended to deadLetterPath.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes event, queuing it for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		return
	}

	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryEntry{
		event:       event,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
		lastErr:     err,
	})
}

// Publish satisfies Bus by delegating to PublishWithRetry
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops accepting events, drains the retry queue and closes the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.FromContext(context.Background()).Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) processRetry(entry retryEntry) {
	if wait := time.Until(entry.nextAttempt); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
		}
	}

	entry.attempts++
	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.FromContext(context.Background()).Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type, "attempt", entry.attempts)
		return
	}
	entry.lastErr = err

	if entry.attempts >= p.maxRetries {
		logger.FromContext(context.Background()).Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type, "attempts", entry.attempts)
		p.writeDeadLetter(entry)
		return
	}

	select {
	case <-p.shutdown:
		p.writeDeadLetter(entry)
	default:
		entry.nextAttempt = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts+1))
		p.enqueue(entry)
	}
}

// drain gives every queued event one last attempt
func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			entry.attempts++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				p.writeDeadLetter(entry)
			}
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

var _ Bus = (*ResilientPublisher)(nil)
