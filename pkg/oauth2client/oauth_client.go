/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oauth2client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config describes a client-credentials grant against a token endpoint.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	HTTPClient   *http.Client
}

// TokenAcquirer obtains bearer tokens with the client-credentials grant and reuses
// a token until it expires.
type TokenAcquirer struct {
	conf       clientcredentials.Config
	httpClient *http.Client

	mu    sync.Mutex
	token *oauth2.Token
}

func NewTokenAcquirer(cfg Config) *TokenAcquirer {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &TokenAcquirer{
		conf: clientcredentials.Config{
			TokenURL:     cfg.TokenURL,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       cfg.Scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: httpClient,
	}
}

// Token returns a valid access token, fetching a new one when the cached token has expired.
func (a *TokenAcquirer) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := oauth2.ReuseTokenSource(a.token, a.conf.TokenSource(ctx)).Token()
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	a.token = token

	return token.AccessToken, nil
}
