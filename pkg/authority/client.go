/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination client_mocks_test.go -self_package mocks -package authority_test -source=client.go -mock_names httpClient=MockHTTPClient,tokenAcquirer=MockTokenAcquirer

package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/verifiedid-relay/internal/logfields"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics"
	"github.com/trustbloc/verifiedid-relay/pkg/observability/metrics/noop"
)

var logger = log.New("authority-client")

const (
	defaultTimeout          = 30 * time.Second
	defaultManifestCacheTTL = 60 * time.Minute
	manifestCacheSize       = 64
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type tokenAcquirer interface {
	Token(ctx context.Context) (string, error)
}

// Config holds the collaborators of the authority client.
type Config struct {
	// RequestURL is the request API endpoint that creates issuance and presentation requests.
	RequestURL string
	// AdminEndpoint is the admin API credentials endpoint of the revocation-demo contract.
	AdminEndpoint string
	HTTPClient    httpClient
	// RequestTokens authorizes request API calls.
	RequestTokens tokenAcquirer
	// AdminTokens authorizes admin API calls.
	AdminTokens      tokenAcquirer
	Timeout          time.Duration
	ManifestCacheTTL time.Duration
	Metrics          metrics.Metrics
}

// Client calls the verification authority.
type Client struct {
	requestURL       string
	adminEndpoint    string
	httpClient       httpClient
	requestTokens    tokenAcquirer
	adminTokens      tokenAcquirer
	timeout          time.Duration
	manifestCacheTTL time.Duration
	manifestCache    gcache.Cache
	metrics          metrics.Metrics
}

// CreateRequestResponse is returned by the request API on success.
type CreateRequestResponse struct {
	RequestID string `json:"requestId"`
	URL       string `json:"url"`
	Expiry    int64  `json:"expiry"`
}

// Credential is an entry of an admin API credential search.
type Credential struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func New(cfg *Config) *Client {
	c := &Client{
		requestURL:       cfg.RequestURL,
		adminEndpoint:    strings.TrimSuffix(cfg.AdminEndpoint, "/"),
		httpClient:       cfg.HTTPClient,
		requestTokens:    cfg.RequestTokens,
		adminTokens:      cfg.AdminTokens,
		timeout:          cfg.Timeout,
		manifestCacheTTL: cfg.ManifestCacheTTL,
		metrics:          cfg.Metrics,
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}

	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}

	if c.manifestCacheTTL <= 0 {
		c.manifestCacheTTL = defaultManifestCacheTTL
	}

	if c.metrics == nil {
		c.metrics = noop.GetMetrics()
	}

	if c.adminTokens == nil {
		c.adminTokens = c.requestTokens
	}

	c.manifestCache = gcache.New(manifestCacheSize).LRU().Build()

	return c
}

// CreateRequest posts a serialized issuance or presentation request. Any status other
// than 201 is returned as a *ResponseError.
func (c *Client) CreateRequest(ctx context.Context, payload []byte) (*CreateRequestResponse, error) {
	defer c.observe("CreateRequest", time.Now())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	body, err := c.sendHTTPRequest(req, c.requestTokens, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var resp CreateRequestResponse

	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode request API response: %w", err)
	}

	return &resp, nil
}

// FindCredentials searches the admin API by an already URL-encoded index claim hash.
func (c *Client) FindCredentials(ctx context.Context, encodedHash string) ([]Credential, error) {
	defer c.observe("FindCredentials", time.Now())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s?filter=indexclaimhash%%20eq%%20%s", c.adminEndpoint, encodedHash)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, err := c.sendHTTPRequest(req, c.adminTokens, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var credentials []Credential

	gjson.GetBytes(body, "value").ForEach(func(_, v gjson.Result) bool {
		credentials = append(credentials, Credential{
			ID:     v.Get("id").String(),
			Status: v.Get("status").String(),
		})

		return true
	})

	return credentials, nil
}

// RevokeCredential revokes a credential by its admin API identifier. Only 204 counts as success.
func (c *Client) RevokeCredential(ctx context.Context, credentialID string) error {
	defer c.observe("RevokeCredential", time.Now())

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/revoke", c.adminEndpoint, credentialID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	_, err = c.sendHTTPRequest(req, c.adminTokens, http.StatusNoContent)

	return err
}

func (c *Client) sendHTTPRequest(req *http.Request, tokens tokenAcquirer, status int) ([]byte, error) {
	if tokens != nil {
		token, err := tokens.Token(req.Context())
		if err != nil {
			return nil, fmt.Errorf("acquire access token: %w", err)
		}

		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request to %s: %w", req.URL.Host, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("failed to close response body", log.WithError(closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("Unable to read response", log.WithHTTPStatus(resp.StatusCode), log.WithError(err))
	}

	if resp.StatusCode != status {
		logger.Debugc(req.Context(), "Unexpected authority response",
			log.WithURL(req.URL.String()), log.WithHTTPStatus(resp.StatusCode))

		return nil, ParseResponseError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) observe(operation string, start time.Time) {
	d := time.Since(start)

	c.metrics.AuthorityCallTime(operation, d)

	logger.Debug("authority call", logfields.WithOperation(operation), log.WithDuration(d))
}
