// Package api is the HTTP gateway to the remote task service. It owns
// transport and the cross-cutting response normalization: bearer injection,
// session teardown on authorization expiry, and the transient rate-limit
// notice. Everything else flows back to callers as a normalized *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/session"
)

// TokenSource supplies the bearer credential for outgoing requests. A session
// keeper satisfies it.
type TokenSource interface {
	Token() string
}

// Options configure a Client. Sessions and OnUnauthorized wire the gateway's
// 401 side effect: the persisted session is cleared and the callback forces
// navigation back to the login surface.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Sessions       session.Keeper
	OnUnauthorized func()
	Notices        *NoticeCenter
	Localizer      *msg.Localizer
	Logger         *zap.Logger
}

// Client talks to the remote task service.
type Client struct {
	baseURL        string
	http           *http.Client
	sessions       session.Keeper
	onUnauthorized func()
	notices        *NoticeCenter
	loc            *msg.Localizer
	log            *zap.Logger
}

// New builds a Client from options, filling in usable defaults.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	loc := opts.Localizer
	if loc == nil {
		loc = msg.NewLocalizer(msg.LanguageTr)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notices := opts.Notices
	if notices == nil {
		notices = NewNoticeCenter(nil)
	}
	return &Client{
		baseURL:        opts.BaseURL,
		http:           httpClient,
		sessions:       opts.Sessions,
		onUnauthorized: opts.OnUnauthorized,
		notices:        notices,
		loc:            loc,
		log:            logger,
	}
}

// Notices exposes the gateway's notice center for presentation layers.
func (c *Client) Notices() *NoticeCenter {
	return c.notices
}

// envelope is the service's uniform response wrapper.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Messages   string          `json:"messages"`
	RetryAfter int             `json:"retryAfter"`
}

// do issues one JSON request. When out is non-nil the response data payload
// is decoded into it. Non-2xx statuses come back as *Error after the
// cross-cutting side effects have fired.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessions != nil {
		if token := c.sessions.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request transport failure", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}
	var env envelope
	if len(raw) > 0 {
		// A body that is not the uniform envelope is tolerated; the status
		// code still drives the outcome.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.reject(resp.StatusCode, env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}

// reject normalizes an error status. The 401 and 429 side effects fire here,
// unconditionally and regardless of which operation triggered them; the
// caller still receives the normal rejection afterwards.
func (c *Client) reject(status int, env envelope) error {
	apiErr := &Error{StatusCode: status, Message: env.Messages, RetryAfter: env.RetryAfter}

	switch status {
	case http.StatusUnauthorized:
		c.log.Info("authorization expired, clearing session")
		if c.sessions != nil {
			if err := c.sessions.Clear(); err != nil {
				c.log.Warn("failed to clear session", zap.Error(err))
			}
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		if apiErr.Message == "" {
			apiErr.Message = c.loc.T(msg.SessionExpired)
		}
	case http.StatusTooManyRequests:
		message := env.Messages
		if message == "" {
			message = c.loc.T(msg.RateLimited)
		}
		retryAfter := env.RetryAfter
		if retryAfter <= 0 {
			retryAfter = 60
		}
		apiErr.Message = message
		apiErr.RetryAfter = retryAfter
		c.notices.Show(Notice{Message: message, RetryAfter: retryAfter})
	}

	return apiErr
}
