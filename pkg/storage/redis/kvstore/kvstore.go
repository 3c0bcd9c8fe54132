/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trustbloc/verifiedid-relay/pkg/storage"
)

const maxUpdateAttempts = 16

// ErrConflict is returned when Update keeps losing the optimistic transaction.
var ErrConflict = errors.New("concurrent update conflict")

var _ storage.KeyValueStore = (*Store)(nil)

type redisClient interface {
	API() redis.UniversalClient
}

// Store is a Redis-backed key/value store.
type Store struct {
	redisClient redisClient
	keyPrefix   string
}

// New creates a Store. keyPrefix namespaces every key written by this instance.
func New(redisClient redisClient, keyPrefix string) *Store {
	return &Store{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.redisClient.API().Get(ctx, s.resolveRedisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrDataNotFound
		}

		return nil, fmt.Errorf("redis get: %w", err)
	}

	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.redisClient.API().Set(ctx, s.resolveRedisKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.API().Del(ctx, s.resolveRedisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// Update runs fn inside a WATCH/MULTI transaction on key and retries when another
// writer modified the key in between.
func (s *Store) Update(ctx context.Context, key string, ttl time.Duration, fn storage.UpdateFunc) error {
	k := s.resolveRedisKey(key)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, k).Bytes()

		found := true

		switch {
		case errors.Is(err, redis.Nil):
			found = false
			current = nil
		case err != nil:
			return fmt.Errorf("redis get: %w", err)
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		expiration := ttl
		if found {
			expiration = redis.KeepTTL
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, expiration)

			return nil
		})

		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.redisClient.API().Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return err
	}

	return fmt.Errorf("update %s: %w", key, ErrConflict)
}

func (s *Store) resolveRedisKey(key string) string {
	return s.keyPrefix + key
}
