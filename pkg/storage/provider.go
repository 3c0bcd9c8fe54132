/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package storage

import (
	"context"
	"errors"
	"time"
)

// ErrDataNotFound is returned when a key is absent or has expired.
var ErrDataNotFound = errors.New("data not found")

// Type is a key/value backend type.
type Type string

const (
	TypeMem   Type = "mem"
	TypeRedis Type = "redis"
)

// UpdateFunc computes the next value of a key from its current value.
// found is false when the key is absent; current is nil in that case.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// KeyValueStore is an ephemeral key/value store with per-entry expiry.
// Update must run fn and store its result atomically with respect to other
// writers of the same key. The ttl passed to Update applies when the key is
// created; an existing key keeps its remaining lifetime.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, ttl time.Duration, fn UpdateFunc) error
}
