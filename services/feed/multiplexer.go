// File: services/feed/multiplexer.go
package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Multiplexer fans one underlying watch per distinct key out to every view
// that wants it. Subscriptions are reference-counted: the watch opens with
// the first subscriber and is torn down when the last one cancels. Late
// subscribers immediately receive the retained latest snapshot.
//
// Deliver callbacks run sequentially per key and must not call back into
// the multiplexer.
type Multiplexer struct {
	watcher Watcher
	logger  *zap.Logger

	mu      sync.Mutex
	entries map[Key]*muxEntry
}

type muxEntry struct {
	mu     sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
	last   *Snapshot
	cancel CancelFunc
	closed bool
}

func NewMultiplexer(watcher Watcher, logger *zap.Logger) *Multiplexer {
	return &Multiplexer{
		watcher: watcher,
		logger:  logger,
		entries: make(map[Key]*muxEntry),
	}
}

// Subscribe registers deliver for key's snapshots. The returned cancel must
// be invoked when the owning view is torn down; calling it more than once is
// a no-op, and no snapshot is delivered after it returns.
func (m *Multiplexer) Subscribe(key Key, deliver func(Snapshot)) (CancelFunc, error) {
	for {
		m.mu.Lock()
		e, ok := m.entries[key]
		if !ok {
			e = &muxEntry{subs: make(map[int]func(Snapshot))}
			m.entries[key] = e
		}
		m.mu.Unlock()

		e.mu.Lock()
		if e.closed {
			// Torn down between the map lookup and taking the entry lock;
			// start over with a fresh entry.
			e.mu.Unlock()
			continue
		}
		if e.cancel == nil {
			// First subscriber opens the watch under the entry lock only,
			// so a slow open never blocks subscribes to other keys.
			cancel, err := m.watcher.Watch(context.Background(), key, e.broadcast)
			if err != nil {
				e.closed = true
				e.mu.Unlock()
				m.mu.Lock()
				if m.entries[key] == e {
					delete(m.entries, key)
				}
				m.mu.Unlock()
				return nil, err
			}
			e.cancel = cancel
			m.logger.Debug("feed: opened shared watch", zap.String("key", key.String()))
		}
		id := e.nextID
		e.nextID++
		e.subs[id] = deliver
		// Replay the retained snapshot under the entry lock so it cannot
		// arrive out of order with a concurrent broadcast.
		if e.last != nil {
			deliver(*e.last)
		}
		e.mu.Unlock()

		var once sync.Once
		return func() {
			once.Do(func() { m.unsubscribe(key, e, id) })
		}, nil
	}
}

// ActiveWatches reports how many underlying watches are currently open.
func (m *Multiplexer) ActiveWatches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Multiplexer) unsubscribe(key Key, e *muxEntry, id int) {
	m.mu.Lock()
	e.mu.Lock()
	delete(e.subs, id)
	empty := len(e.subs) == 0
	if empty {
		e.closed = true
		if m.entries[key] == e {
			delete(m.entries, key)
		}
	}
	e.mu.Unlock()
	m.mu.Unlock()

	if empty {
		e.cancel()
		m.logger.Debug("feed: released shared watch", zap.String("key", key.String()))
	}
}

func (e *muxEntry) broadcast(s Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.last = &s
	for _, deliver := range e.subs {
		deliver(s)
	}
}
