/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/bluele/gcache"

	"github.com/trustbloc/verifiedid-relay/pkg/storage"
)

const (
	lockStripes          = 256
	defaultPurgeInterval = time.Minute
)

var _ storage.KeyValueStore = (*Store)(nil)

type entry struct {
	value    []byte
	expireAt time.Time
}

type options struct {
	clock         gcache.Clock
	purgeInterval time.Duration
}

// Opt configures the store.
type Opt func(opts *options)

// WithClock sets the clock used for expiry.
func WithClock(clock gcache.Clock) Opt {
	return func(opts *options) {
		opts.clock = clock
	}
}

// WithPurgeInterval sets how often expired entries are evicted. Zero disables the background purge.
func WithPurgeInterval(interval time.Duration) Opt {
	return func(opts *options) {
		opts.purgeInterval = interval
	}
}

// Store keeps entries in a gcache with per-entry expiration. Writers of the
// same key are serialized by a striped lock; unrelated keys rarely contend.
// gcache drops an expired entry only when it is read, so a background loop
// purges entries nobody asks for again.
type Store struct {
	cache     gcache.Cache
	clock     gcache.Clock
	locks     [lockStripes]sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New returns a new in-memory store. Call Close to stop the purge loop.
func New(opts ...Opt) *Store {
	o := &options{
		clock:         gcache.NewRealClock(),
		purgeInterval: defaultPurgeInterval,
	}

	for _, f := range opts {
		f(o)
	}

	s := &Store{
		cache: gcache.New(0).Simple().Clock(o.clock).Build(),
		clock: o.clock,
		done:  make(chan struct{}),
	}

	if o.purgeInterval > 0 {
		s.wg.Add(1)

		go s.purgeLoop(o.purgeInterval)
	}

	return s
}

// Close stops the purge loop. It is safe to call more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})

	s.wg.Wait()

	return nil
}

// Len returns the number of retained entries, expired ones included.
func (s *Store) Len() int {
	return s.cache.Len(false)
}

// Purge evicts every expired entry.
func (s *Store) Purge() {
	for _, k := range s.cache.Keys(false) {
		// an expired item is removed by gcache on read
		_, _ = s.cache.Get(k) //nolint:errcheck
	}
}

func (s *Store) purgeLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Purge()
		case <-s.done:
			return
		}
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	e, err := s.get(key)
	if err != nil {
		return nil, err
	}

	return clone(e.value), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	return s.set(key, value, ttl)
}

func (s *Store) Delete(_ context.Context, key string) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	s.cache.Remove(key)

	return nil
}

func (s *Store) Update(_ context.Context, key string, ttl time.Duration, fn storage.UpdateFunc) error {
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	var current []byte

	e, err := s.get(key)

	switch {
	case err == nil:
		current = clone(e.value)
	case errors.Is(err, storage.ErrDataNotFound):
		e = nil
	default:
		return err
	}

	next, err := fn(current, e != nil)
	if err != nil {
		return err
	}

	if e != nil {
		ttl = 0

		if !e.expireAt.IsZero() {
			ttl = e.expireAt.Sub(s.clock.Now())
			if ttl <= 0 {
				// expired between the read and the write
				return nil
			}
		}
	}

	return s.set(key, next, ttl)
}

func (s *Store) get(key string) (*entry, error) {
	v, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, storage.ErrDataNotFound
		}

		return nil, fmt.Errorf("cache get: %w", err)
	}

	e, ok := v.(*entry)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T", v)
	}

	return e, nil
}

func (s *Store) set(key string, value []byte, ttl time.Duration) error {
	e := &entry{value: clone(value)}

	if ttl <= 0 {
		return s.cache.Set(key, e)
	}

	e.expireAt = s.clock.Now().Add(ttl)

	return s.cache.SetWithExpire(key, e, ttl)
}

func (s *Store) lock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key)) //nolint:errcheck

	return &s.locks[h.Sum32()%lockStripes]
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	c := make([]byte, len(b))
	copy(c, b)

	return c
}
