/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("session")

// CookieName holds the signed correlation token of the browser's last request.
const CookieName = "vid_state"

type Config struct {
	// HashKey authenticates the cookie value. It should be 32 or 64 bytes.
	HashKey []byte
	// BlockKey optionally encrypts the cookie value. It must be 16, 24 or 32 bytes when set.
	BlockKey []byte
	MaxAge   time.Duration
	Secure   bool
}

// Store keeps the correlation token in a signed, HttpOnly cookie.
type Store struct {
	codec  *securecookie.SecureCookie
	maxAge int
	secure bool
}

func New(cfg *Config) (*Store, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("session hash key is required")
	}

	maxAge := int(cfg.MaxAge / time.Second)

	codec := securecookie.New(cfg.HashKey, cfg.BlockKey).MaxAge(maxAge)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Store{
		codec:  codec,
		maxAge: maxAge,
		secure: cfg.Secure,
	}, nil
}

// Save binds token to the browser session.
func (s *Store) Save(ctx echo.Context, token string) error {
	value, err := s.codec.Encode(CookieName, token)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Token returns the correlation token of the session, or an empty string when there is none
// or the cookie fails verification.
func (s *Store) Token(ctx echo.Context) string {
	cookie, err := ctx.Cookie(CookieName)
	if err != nil {
		return ""
	}

	var token string

	if err = s.codec.Decode(CookieName, cookie.Value, &token); err != nil {
		logger.Debugc(ctx.Request().Context(), "Ignoring invalid session cookie", log.WithError(err))

		return ""
	}

	return token
}
