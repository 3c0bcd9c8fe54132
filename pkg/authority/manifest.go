/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package authority

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"
)

// ErrManifestURLMissing is returned when no manifest URL is configured.
var ErrManifestURLMissing = errors.New("manifest URL is not configured")

// FetchManifest downloads the signed credential manifest and returns its decoded payload.
// Decoded manifests are cached per URL.
func (c *Client) FetchManifest(ctx context.Context, manifestURL string) (json.RawMessage, error) {
	if manifestURL == "" {
		return nil, ErrManifestURLMissing
	}

	if v, err := c.manifestCache.Get(manifestURL); err == nil {
		if b, ok := v.(json.RawMessage); ok {
			logger.Debugc(ctx, "Manifest served from cache", log.WithURL(manifestURL))

			return b, nil
		}
	}

	defer c.observe("FetchManifest", time.Now())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, err := c.sendHTTPRequest(req, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	token := gjson.GetBytes(body, "token").String()
	if token == "" {
		return nil, errors.New("manifest response has no token")
	}

	jws, err := jose.ParseSigned(token)
	if err != nil {
		return nil, fmt.Errorf("parse manifest token: %w", err)
	}

	payload := json.RawMessage(jws.UnsafePayloadWithoutVerification())

	if !json.Valid(payload) {
		return nil, errors.New("manifest payload is not JSON")
	}

	if err = c.manifestCache.SetWithExpire(manifestURL, payload, c.manifestCacheTTL); err != nil {
		logger.Warnc(ctx, "Failed to cache manifest", log.WithURL(manifestURL), log.WithError(err))
	}

	return payload, nil
}
