// Package cache is an in-process read cache for remote resources,
// keyed by resource kind and account. Values never expire on their
// own; a mutation invalidates the affected keys and the next read
// fetches fresh data. Concurrent reads of one key share a single
// network call.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/ffdias/fincli/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Kind string

const (
	KindWallet      Kind = "wallet"
	KindInvestments Kind = "investments"
	KindAssets      Kind = "assets"
)

// Key identifies one cacheable resource. Account is empty for
// resources that are not account-scoped, like the asset catalog.
type Key struct {
	Kind    Kind
	Account domain.AccountID
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.Account)
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateStale
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateStale:
		return "stale"
	case StateError:
		return "error"
	}
	return "unknown"
}

type entry struct {
	state State
	value any
	err   error
	// generation the stored value was fetched under; compared against
	// the key's current generation to detect staleness.
	fetchedGen uint64
	inflight   int
}

type Store struct {
	mu          sync.RWMutex
	entries     map[Key]*entry
	generations map[Key]uint64
	sf          singleflight.Group
	log         *zap.Logger
}

func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		entries:     make(map[Key]*entry),
		generations: make(map[Key]uint64),
		log:         log,
	}
}

// State reports the read state machine position for a key: idle when
// never fetched, loading while a fetch is in flight, ready on a
// current value, stale after an invalidation, error after a failed
// fetch.
func (s *Store) State(key Key) State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return StateIdle
	}
	if e.inflight > 0 {
		return StateLoading
	}
	return e.state
}

// Invalidate bumps the generation counter of each key so the next read
// refetches. A ready value is marked stale but kept until replaced.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		s.generations[key]++
		if e, ok := s.entries[key]; ok && e.state == StateReady {
			e.state = StateStale
		}
		s.log.Debug("cache invalidated",
			zap.String("key", key.String()),
			zap.Uint64("generation", s.generations[key]))
	}
}

// Get returns the cached value for key, or runs fetch to fill it. A
// ready value of the current generation short-circuits; anything else
// (idle, stale, a previous error) triggers a fetch. Duplicate
// concurrent calls for the same key and generation issue exactly one
// network request. When fetches race across an invalidation, only the
// most recently initiated one may store its result.
func Get[T any](ctx context.Context, s *Store, key Key, fetch func(context.Context) (T, error)) (T, error) {
	s.mu.Lock()
	gen := s.generations[key]
	e, ok := s.entries[key]
	if ok && e.state == StateReady && e.fetchedGen == gen {
		value := e.value
		s.mu.Unlock()
		return value.(T), nil
	}
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	e.inflight++
	s.mu.Unlock()

	flightKey := fmt.Sprintf("%s#%d", key, gen)
	result, err, shared := s.sf.Do(flightKey, func() (any, error) {
		value, err := fetch(ctx)
		s.settle(key, gen, value, err)
		return value, err
	})

	s.mu.Lock()
	e.inflight--
	s.mu.Unlock()

	if shared {
		s.log.Debug("cache fetch shared", zap.String("key", key.String()))
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

// settle stores a fetch outcome unless a fetch initiated after a later
// invalidation already wrote a fresher result.
func (s *Store) settle(key Key, gen uint64, value any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || gen < e.fetchedGen {
		return
	}

	e.fetchedGen = gen
	if err != nil {
		e.state = StateError
		e.err = err
		e.value = nil
		s.log.Debug("cache fetch failed", zap.String("key", key.String()), zap.Error(err))
		return
	}

	e.state = StateReady
	e.err = nil
	e.value = value
	if gen < s.generations[key] {
		// Invalidated while the fetch was in flight.
		e.state = StateStale
	}
	s.log.Debug("cache filled",
		zap.String("key", key.String()),
		zap.Uint64("generation", gen))
}
