// Package upstream wraps the content API the dashboard fronts. One typed
// client per resource shares the base Client; every call is context-bound and
// returns either a parsed body or a structured *Error.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"opsdash/internal/common"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: trimmed, httpClient: httpClient}
}

// Error carries everything a caller needs to classify an upstream failure:
// the HTTP status when a response arrived, the server's message when it sent
// one, or Network=true when the request left but no response came back.
type Error struct {
	Status  int
	Message string
	Network bool
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Network:
		return "upstream unreachable: " + e.Cause.Error()
	case e.Message != "":
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("upstream %d", e.Status)
	default:
		return "upstream request failed: " + e.Cause.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &Error{Cause: fmt.Errorf("encode request: %w", err)}
	}
	return c.send(ctx, method, path, "application/json", bytes.NewReader(encoded), out)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Cause: fmt.Errorf("create request: %w", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", common.NewUUID().String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Network: true, Cause: err}
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Network: true, Cause: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := decodeInto(payload, out); err != nil {
		return &Error{Status: resp.StatusCode, Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// fetch is send without decoding; download endpoints use it to stream the raw
// body through.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", &Error{Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("X-Request-ID", common.NewUUID().String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &Error{Network: true, Cause: err}
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{Network: true, Cause: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newStatusError(resp.StatusCode, payload)
	}
	return payload, resp.Header.Get("Content-Type"), nil
}

func newStatusError(status int, payload []byte) *Error {
	var parsed errorPayload
	if err := json.Unmarshal(payload, &parsed); err == nil {
		message := parsed.Message
		if message == "" {
			message = parsed.Error
		}
		return &Error{Status: status, Message: message}
	}
	return &Error{Status: status, Message: strings.TrimSpace(string(payload))}
}

// decodeInto unwraps the API's inconsistent envelopes. List endpoints return
// either a bare array, {data:[...]}, or {items:[...]}; object endpoints
// return bare or {data:{...}}. A shape that matches none of these leaves out
// at its zero value rather than failing, so callers render an empty screen
// instead of crashing.
func decodeInto(payload []byte, out any) error {
	if json.Unmarshal(payload, out) == nil {
		return nil
	}
	var dataEnvelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &dataEnvelope); err == nil && len(dataEnvelope.Data) > 0 {
		if json.Unmarshal(dataEnvelope.Data, out) == nil {
			return nil
		}
	}
	var itemsEnvelope struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(payload, &itemsEnvelope); err == nil && len(itemsEnvelope.Items) > 0 {
		if json.Unmarshal(itemsEnvelope.Items, out) == nil {
			return nil
		}
	}
	if !json.Valid(payload) {
		return fmt.Errorf("invalid json")
	}
	return nil
}
