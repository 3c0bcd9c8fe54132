/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination store_mocks_test.go -self_package mocks -package correlationstore_test -source=store.go -mock_names kvStore=MockKVStore

package correlationstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/verifiedid-relay/pkg/correlation"
	"github.com/trustbloc/verifiedid-relay/pkg/storage"
)

const (
	stateKeyPrefix  = "vid_corr-"
	shadowKeyPrefix = "vid_shadow-"
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Update(ctx context.Context, key string, ttl time.Duration, fn storage.UpdateFunc) error
}

// MutateFunc changes a state in place. st is nil when no entry exists for the token,
// in which case the func must return the state to create.
type MutateFunc func(st *correlation.State) (*correlation.State, error)

// Store gives typed access to correlation entries and revocation shadow entries.
type Store struct {
	kv        kvStore
	entryTTL  time.Duration
	shadowTTL time.Duration
}

type Opt func(s *Store)

// WithTTL overrides the correlation and shadow entry lifetimes.
func WithTTL(entryTTL, shadowTTL time.Duration) Opt {
	return func(s *Store) {
		s.entryTTL = entryTTL
		s.shadowTTL = shadowTTL
	}
}

// New returns a correlation store on top of kv.
func New(kv kvStore, opts ...Opt) *Store {
	s := &Store{
		kv:        kv,
		entryTTL:  correlation.EntryTTL,
		shadowTTL: correlation.ShadowTTL,
	}

	for _, f := range opts {
		f(s)
	}

	// a shadow entry must outlive any state a client may still poll
	if s.shadowTTL < s.entryTTL {
		s.shadowTTL = s.entryTTL
	}

	return s
}

// Create stores a new entry, replacing any entry with the same token.
func (s *Store) Create(ctx context.Context, st *correlation.State) error {
	b, err := st.Marshal()
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err = s.kv.Set(ctx, stateKey(st.Token), b, s.entryTTL); err != nil {
		return fmt.Errorf("create state: %w", err)
	}

	return nil
}

// Get returns the entry for token, storage.ErrDataNotFound when it is absent or expired,
// or an error wrapping correlation.ErrDeserialization when it cannot be decoded.
func (s *Store) Get(ctx context.Context, token string) (*correlation.State, error) {
	b, err := s.kv.Get(ctx, stateKey(token))
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("get state: %w", err)
	}

	return correlation.ParseState(b)
}

// Mutate atomically applies fn to the entry for token. A stored entry that cannot be decoded
// is handed to fn as absent so a callback can still record its outcome.
func (s *Store) Mutate(ctx context.Context, token string, fn MutateFunc) (*correlation.State, error) {
	var result *correlation.State

	err := s.kv.Update(ctx, stateKey(token), s.entryTTL, func(current []byte, found bool) ([]byte, error) {
		var st *correlation.State

		if found {
			parsed, err := correlation.ParseState(current)
			if err == nil {
				st = parsed
			}
		}

		next, err := fn(st)
		if err != nil {
			return nil, err
		}

		if next == nil {
			return nil, errors.New("mutate returned no state")
		}

		b, err := next.Marshal()
		if err != nil {
			return nil, fmt.Errorf("marshal state: %w", err)
		}

		result = next

		return b, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MarkRevoked writes the revocation shadow marker for claim with a fresh lifetime.
func (s *Store) MarkRevoked(ctx context.Context, claim string) error {
	if err := s.kv.Set(ctx, shadowKey(claim), []byte(correlation.RevokedMarker), s.shadowTTL); err != nil {
		return fmt.Errorf("mark revoked: %w", err)
	}

	return nil
}

// IsRevoked reports whether a live shadow marker exists for claim.
func (s *Store) IsRevoked(ctx context.Context, claim string) (bool, error) {
	if claim == "" {
		return false, nil
	}

	b, err := s.kv.Get(ctx, shadowKey(claim))
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("get shadow entry: %w", err)
	}

	return string(b) == correlation.RevokedMarker, nil
}

func stateKey(token string) string {
	return stateKeyPrefix + token
}

func shadowKey(claim string) string {
	return shadowKeyPrefix + claim
}
