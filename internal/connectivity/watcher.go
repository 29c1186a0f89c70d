package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultProbeInterval = 10 * time.Second

// Watcher polls a Checker at a fixed cadence and fans connectivity
// transitions out to subscribers. Subscribers are invoked on the watcher
// goroutine, only when the online state changes.
type Watcher struct {
	checker  Checker
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(online bool)
}

func NewWatcher(checker Checker, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		checker:  checker,
		interval: interval,
		logger:   logger,
		online:   true, // assume online until the first probe says otherwise
		subs:     make(map[int]func(online bool)),
	}
}

// Online returns the last observed connectivity state.
func (w *Watcher) Online() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.online
}

// IsConnected answers from the last probe, never probing inline. This makes
// the watcher usable as a Checker by consumers that must not block on a
// network round trip.
func (w *Watcher) IsConnected(context.Context) bool {
	return w.Online()
}

// Subscribe registers fn for connectivity transitions and returns an
// unsubscribe function.
func (w *Watcher) Subscribe(fn func(online bool)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

// Start launches the background poll loop. It returns immediately and stops
// when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			w.poll(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (w *Watcher) poll(ctx context.Context) {
	online := w.checker.IsConnected(ctx)

	w.mu.Lock()
	changed := online != w.online
	w.online = online
	var fns []func(bool)
	if changed {
		fns = make([]func(bool), 0, len(w.subs))
		for _, fn := range w.subs {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	if !changed {
		return
	}
	w.logger.Info("connectivity changed", "online", online)
	for _, fn := range fns {
		fn(online)
	}
}
