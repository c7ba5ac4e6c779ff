package messagebus

import (
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain"
	"log/slog"
	"sync"
)

type EventHandler func(event domain.Event) error

// MessageBus delivers every published event to the handlers registered for
// its type. Each delivery runs in its own goroutine.
type MessageBus struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
		wg:       sync.WaitGroup{},
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				if err := handler(event); err != nil {
					b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				}
			}()
		}
	}
	return nil
}

// Close waits for in-flight handlers to return.
func (b *MessageBus) Close() {
	b.wg.Wait()
}

// Handle adapts a handler for one concrete event type. Events of any other
// type are reported as errors.
func Handle[E domain.Event](fn func(E) error) EventHandler {
	return func(event domain.Event) error {
		e, ok := event.(E)
		if !ok {
			return fmt.Errorf("unexpected event %T for %s handler", event, event.Type())
		}
		return fn(e)
	}
}
