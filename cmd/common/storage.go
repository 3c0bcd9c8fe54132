/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/storage"
	memkvstore "github.com/trustbloc/verifiedid-relay/pkg/storage/mem/kvstore"
	redisclient "github.com/trustbloc/verifiedid-relay/pkg/storage/redis"
	rediskvstore "github.com/trustbloc/verifiedid-relay/pkg/storage/redis/kvstore"
)

const (
	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://', 'redis://localhost:6379', 'redis://redis-1:6379,redis-2:6379'." +
		" Supported drivers are [mem, redis]." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "VID_DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "VID_DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "VID_DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix for every key the relay writes. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30

	// DatabasePrefixDefault is the default key prefix.
	DatabasePrefixDefault = "vid"
)

// DBParameters holds database configuration.
type DBParameters struct {
	URL     string
	Prefix  string
	Timeout uint64
}

// Store is an initialized key/value backend. Redis is set only for the redis driver.
type Store struct {
	Type  storage.Type
	KV    storage.KeyValueStore
	Redis *redisclient.Client

	mem *memkvstore.Store
}

// Close releases the backend connection and stops the in-memory purge loop.
func (s *Store) Close() error {
	if s.mem != nil {
		return s.mem.Close()
	}

	if s.Redis == nil {
		return nil
	}

	return s.Redis.Close()
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
	if err != nil {
		return nil, fmt.Errorf("failed to configure dbURL: %w", err)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)
	if params.Prefix == "" {
		params.Prefix = DatabasePrefixDefault
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	return params, nil
}

// InitStore opens the key/value backend named by the URL driver. A redis backend is retried once
// per second until Timeout attempts have failed.
func InitStore(params *DBParameters, tracerProvider trace.TracerProvider, logger *log.Log) (*Store, error) {
	driver, dsn, err := parseURL(params.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", params.URL, err)
	}

	switch storage.Type(driver) {
	case storage.TypeMem:
		logger.Info("Using in-memory store", logfields.WithStoreType(driver))

		mem := memkvstore.New()

		return &Store{Type: storage.TypeMem, KV: mem, mem: mem}, nil
	case storage.TypeRedis:
		addrs := strings.Split(dsn, ",")

		opts := []redisclient.ClientOpt{
			redisclient.WithPingRetries(params.Timeout, time.Second),
		}

		if tracerProvider != nil {
			opts = append(opts, redisclient.WithTraceProvider(tracerProvider))
		}

		client, err := redisclient.New(addrs, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis store: %w", err)
		}

		logger.Info("Using redis store", logfields.WithStoreType(driver))

		return &Store{
			Type:  storage.TypeRedis,
			KV:    rediskvstore.New(client, params.Prefix),
			Redis: client,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

func parseURL(u string) (string, string, error) {
	const urlParts = 2

	parsed := strings.SplitN(u, ":", urlParts)

	if len(parsed) != urlParts {
		return "", "", fmt.Errorf("invalid dbURL %s", u)
	}

	return parsed[0], strings.TrimPrefix(parsed[1], "//"), nil
}
