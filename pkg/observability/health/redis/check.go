/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"

	"github.com/alexliesenfeld/health"
	"github.com/redis/go-redis/v9"
)

const checkName = "redis"

type redisClient interface {
	API() redis.UniversalClient
}

// New returns a health check that pings the redis backing the correlation store.
func New(client redisClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := client.API().Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		return nil
	}
}

// Check wraps New into a named check that reports down after the first failure.
func Check(client redisClient) health.Check {
	return health.Check{
		Name:               checkName,
		Check:              New(client),
		MaxTimeInError:     1,
		MaxContiguousFails: 1,
	}
}
