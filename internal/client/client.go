package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Client wraps every outbound request to the court-booking backend with
// bearer-token attachment and a single-shot credential refresh on 401.
//
// Per-request state machine:
//
//	SENT -> (2xx/4xx-non-401/5xx) DONE
//	SENT -> 401 -> REFRESHING -> (success) RETRIED -> DONE
//	                          -> (failure) UNAUTHENTICATED -> DONE
//
// A request is replayed at most once regardless of outcome.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	session *Session
	logger  *slog.Logger
}

func New(cfg config.APIConfig, store CredentialStore, clk clock.Clock, logger *slog.Logger, onUnauthenticated UnauthenticatedHandler) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.Wrap(err, "parse API base URL")
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	session := NewSession(store, base.String()+"/auth/refresh", httpClient, clk, logger, onUnauthenticated)

	return &Client{
		baseURL: base,
		http:    httpClient,
		session: session,
		logger:  logger,
	}, nil
}

func (c *Client) Session() *Session {
	return c.session
}

// APIError is a non-2xx backend response. It is always Marked with the
// matching errs sentinel, so callers dispatch with errors.Is and read
// Detail for user-facing context.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return http.StatusText(e.Status) + ": " + e.Detail
	}
	return http.StatusText(e.Status)
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return errs.ErrUnauthenticated
	case http.StatusForbidden:
		return errs.ErrForbidden
	case http.StatusNotFound:
		return errs.ErrNotFound
	case http.StatusConflict:
		return errs.ErrConflict
	case http.StatusUnprocessableEntity:
		return errs.ErrValidation
	default:
		if status >= 500 {
			return errs.ErrServer
		}
		return errs.ErrValidation
	}
}

// get/post/put/patch/del are thin verb helpers over do.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do issues one logical request. The body is marshalled once up front so
// the 401 replay resends identical bytes; the X-Request-ID stays the
// same across the replay because it is the same logical request.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "marshal request body")
		}
	}

	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + path
	if query != nil {
		target.RawQuery = query.Encode()
	}
	requestID := uuid.NewString()

	build := func(token string) (*http.Request, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
		if err != nil {
			return nil, errs.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" && req.Header.Get("Authorization") == "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req, nil
	}

	req, err := build(c.session.AccessToken())
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Network-level failure: no response to interpret, no retry.
		return errs.Mark(errs.Wrap(err, method+" "+path), errs.ErrNetwork)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)

		newToken, ok := c.session.Refresh(ctx)
		if !ok {
			// Terminal: clear both credentials together and hand control
			// to the login flow, preserving the original path+query.
			if err := c.session.Clear(); err != nil {
				c.logger.Warn("credential clear failed", "error", err)
			}
			c.session.HandleUnauthenticated(returnTarget(path, query))
			return errs.Mark(&APIError{Status: http.StatusUnauthorized}, errs.ErrUnauthenticated)
		}

		replay, err := build(newToken)
		if err != nil {
			return err
		}
		replay.Header.Set("Authorization", "Bearer "+newToken)

		resp, err = c.http.Do(replay)
		if err != nil {
			return errs.Mark(errs.Wrap(err, method+" "+path+" (replay)"), errs.ErrNetwork)
		}
		// A second 401 falls through to plain status mapping below:
		// no request is retried more than once.
	}
	defer drain(resp)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "decode response body")
		}
		return nil
	}

	var errBody errorBodyDTO
	_ = json.NewDecoder(resp.Body).Decode(&errBody)
	apiErr := &APIError{Status: resp.StatusCode, Detail: errBody.text()}
	return errs.Mark(apiErr, sentinelFor(resp.StatusCode))
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func returnTarget(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
