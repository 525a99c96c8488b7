// Package api implements the HTTP transport for the directory REST API:
// bearer-token attachment, the uniform response envelope, and the mapping
// of transport and HTTP failures to the shared error taxonomy.
//
// Every call is one-shot: no retries, no backoff, no circuit breaker.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/allodocta/backoffice/internal/common"
	"github.com/allodocta/backoffice/internal/logging"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// GenericErrorMessage is the localized fallback shown when a failure is not
// API-shaped (network error, malformed body).
const GenericErrorMessage = "Une erreur s'est produite lors de l'appel à l'API"

// TokenSource supplies the current bearer token and lets the transport wipe
// it when the server rejects a session. session.Session satisfies it.
type TokenSource interface {
	Current() (token string, ok bool)
	Clear(ctx context.Context) error
}

// Client talks to the directory REST API. It reads the token fresh from the
// TokenSource on every call, so a logout or refresh is immediately visible.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// Get issues a GET and decodes the envelope data into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (*Result, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) (*Result, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body. The id (and any other selector) goes
// into query, matching the API's `PUT /{resource}-update?id=` shape.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any, out any) (*Result, error) {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Delete issues a DELETE against `/{resource}-delete?id=`.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) (*Result, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// PostRaw issues a POST and decodes the raw response body into out without
// envelope unwrapping. The auth endpoints (/login, /refresh-token) respond
// outside the envelope shape and go through here.
func (c *Client) PostRaw(ctx context.Context, path string, body any, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return &common.OperationError{Message: GenericErrorMessage}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "path", path, "err", err)
		return &common.OperationError{Message: GenericErrorMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &common.OperationError{Message: GenericErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &common.OperationError{Message: apiMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &common.OperationError{Message: GenericErrorMessage}
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token, ok := c.tokens.Current(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do runs one enveloped call. An HTTP 401 on an authenticated request wipes
// the session (implicit logout) before surfacing an AuthenticationError;
// a 401 on an anonymous request (e.g. bad login) leaves the session alone.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*Result, error) {
	hadToken := false
	if _, ok := c.tokens.Current(); ok {
		hadToken = true
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, &common.OperationError{Message: GenericErrorMessage}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return nil, &common.OperationError{Message: GenericErrorMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.OperationError{Message: GenericErrorMessage}
	}

	if resp.StatusCode == http.StatusUnauthorized && hadToken {
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.log.Warn(ctx, "failed to clear rejected session", "err", clearErr)
		}
		return nil, &common.AuthenticationError{Message: apiMessage(data)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &common.OperationError{Message: apiMessage(data)}
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &common.OperationError{Message: GenericErrorMessage}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		return nil, &common.OperationError{Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &common.OperationError{Message: GenericErrorMessage}
		}
	}

	return &Result{Message: env.Message, Meta: env.Meta}, nil
}

// apiMessage extracts the server's message from an API-shaped error body,
// falling back to the generic localized message.
func apiMessage(data []byte) string {
	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return GenericErrorMessage
}
