package colorstop

import (
	"sync"

	"gradient-frame/pkg/logging"
)

// Store holds the current Collection and swaps it wholesale on every write.
// It is built once by the host and handed by reference to the drag
// controller, the renderer and the exporters.
//
// Writes happen on the UI thread; the lock exists so readers on other
// goroutines (the share server) always see a complete collection.
type Store struct {
	mu          sync.RWMutex
	colors      Collection
	newID       IDFunc
	subscribers map[int]func(Collection)
	nextSub     int
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides the id generator. Mostly useful in tests.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore creates a store holding initial.
func NewStore(initial Collection, opts ...Option) *Store {
	s := &Store{
		colors:      initial,
		newID:       NewID,
		subscribers: make(map[int]func(Collection)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Colors returns the current collection.
func (s *Store) Colors() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colors
}

// AddColor appends a derived stop (see Collection.Add) and returns the new
// collection together with the stop that was created.
func (s *Store) AddColor(color RGBA, offsetHint float64) (Collection, Stop) {
	var added Stop
	next := s.apply(func(c Collection) Collection {
		var out Collection
		out, added = c.Add(color, offsetHint, s.newID)
		return out
	})
	logging.Logger().Debug("color stop added", "id", added.ID, "offset", added.Offset, "color", added.Color.CSS())
	return next, added
}

// UpdateColor replaces the colour of stop id.
func (s *Store) UpdateColor(id ID, color RGBA) Collection {
	return s.apply(func(c Collection) Collection {
		return c.UpdateColor(id, color)
	})
}

// UpdateOffset moves stop id to offset, clamped to [0,100].
func (s *Store) UpdateOffset(id ID, offset float64) Collection {
	return s.apply(func(c Collection) Collection {
		return c.UpdateOffset(id, offset)
	})
}

// RemoveColor deletes stop id.
func (s *Store) RemoveColor(id ID) Collection {
	next := s.apply(func(c Collection) Collection {
		return c.Remove(id)
	})
	logging.Logger().Debug("color stop removed", "id", id, "remaining", next.Len())
	return next
}

// Reset replaces the whole collection.
func (s *Store) Reset(c Collection) Collection {
	return s.apply(func(Collection) Collection { return c })
}

// Subscribe registers fn to receive every collection written to the store.
// fn runs synchronously on the writer's goroutine after the lock is
// released. The returned func unregisters it.
func (s *Store) Subscribe(fn func(Collection)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) apply(fn func(Collection) Collection) Collection {
	s.mu.Lock()
	next := fn(s.colors)
	s.colors = next
	subs := make([]func(Collection), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
	return next
}
