package memory

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

// Tx is the write scope handed to mutation callbacks. Events recorded on it
// are published once the lock is released and only if fn succeeded.
type Tx struct {
	store  *Store
	events []sse.Event
}

func (tx *Tx) record(collection, action, id string) {
	tx.events = append(tx.events, sse.Event{
		Collection: collection,
		Action:     action,
		ID:         id,
		At:         tx.store.now(),
	})
}

// WithTransaction runs fn under the store write lock. fn must validate before
// it mutates so that a returned error leaves the store unchanged.
func (s *Store) WithTransaction(fn func(tx *Tx) error) error {
	tx := &Tx{store: s}

	err := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn(tx)
	}()
	if err != nil {
		return err
	}
	if s.notifier != nil {
		for _, ev := range tx.events {
			s.notifier.Publish(ev)
		}
	}
	return nil
}

// read runs fn under the store read lock.
func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}
