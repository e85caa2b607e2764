package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"courtbook/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// UnauthenticatedHandler is invoked when the session is terminally
// unauthenticated (no credentials, or refresh failed). returnTo carries
// the original request path+query so the caller can come back after a
// fresh login.
type UnauthenticatedHandler func(returnTo string)

// Session owns the token pair and the refresh flow. Concurrent 401s
// converge on a single in-flight refresh call; callers that arrive while
// one is running await its result instead of starting another.
type Session struct {
	store      CredentialStore
	refreshURL string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
	sf         singleflight.Group

	onUnauthenticated UnauthenticatedHandler
}

func NewSession(
	store CredentialStore,
	refreshURL string,
	httpClient *http.Client,
	clk clock.Clock,
	logger *slog.Logger,
	onUnauthenticated UnauthenticatedHandler,
) *Session {
	if onUnauthenticated == nil {
		onUnauthenticated = func(string) {}
	}
	return &Session{
		store:             store,
		refreshURL:        refreshURL,
		httpClient:        httpClient,
		clock:             clk,
		logger:            logger,
		onUnauthenticated: onUnauthenticated,
	}
}

// AccessToken returns the stored access token, or "" when none is
// available. Storage errors degrade to "no token".
func (s *Session) AccessToken() string {
	creds, err := s.store.Load()
	if err != nil {
		s.logger.Warn("credential load failed", "error", err)
		return ""
	}
	return creds.AccessToken
}

// Authenticated reports whether a usable access token is stored. The exp
// claim is decoded without signature verification, mirroring what a
// browser client can check locally; the server remains the source of
// truth on validity.
func (s *Session) Authenticated() bool {
	token := s.AccessToken()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque or malformed token: presence is all we can check.
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(s.clock.Now())
}

// SetTokens persists a new access token and, when provided, a new
// refresh token. An empty refresh argument keeps the stored one (the
// login endpoint returns only an access token).
func (s *Session) SetTokens(access, refresh string) error {
	if refresh == "" {
		prev, err := s.store.Load()
		if err == nil {
			refresh = prev.RefreshToken
		}
	}
	return s.store.Save(Credentials{AccessToken: access, RefreshToken: refresh})
}

// Clear discards both tokens together.
func (s *Session) Clear() error {
	return s.store.Clear()
}

func (s *Session) HandleUnauthenticated(returnTo string) {
	s.onUnauthenticated(returnTo)
}

// Refresh exchanges the stored refresh token for a new pair. It never
// propagates an error: the result is the new access token, or "" when no
// refresh credential exists or the exchange failed for any reason.
// Concurrent calls share one execution.
func (s *Session) Refresh(ctx context.Context) (string, bool) {
	v, _, _ := s.sf.Do("refresh", func() (any, error) {
		return s.doRefresh(ctx), nil
	})
	token, _ := v.(string)
	return token, token != ""
}

func (s *Session) doRefresh(ctx context.Context) string {
	creds, err := s.store.Load()
	if err != nil || creds.RefreshToken == "" {
		return ""
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": creds.RefreshToken})
	if err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return ""
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("token refresh failed", "error", err)
		return ""
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("token refresh rejected", "status", resp.StatusCode)
		return ""
	}

	tokens, err := decodeTokenResponse(resp.Body)
	if err != nil {
		s.logger.Warn("token refresh response rejected", "error", err)
		return ""
	}

	if err := s.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		s.logger.Warn("credential save failed", "error", err)
		return ""
	}
	return tokens.AccessToken
}
