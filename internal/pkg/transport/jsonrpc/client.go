// Package jsonrpc provides a small JSON-RPC 2.0 client over HTTP, shaped for
// the single-object params style used by monerod's /json_rpc endpoint.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// requestID is sent with every call. monerod echoes it back and nothing
// else depends on it.
const requestID = "0"

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-200 HTTP status on the RPC endpoint.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// request is a JSON-RPC 2.0 request envelope.
type request struct {
	JsonRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *struct {
		Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
		Message string `json:"message"` // Human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a JSON-RPC client.
type Client interface {
	// Call sends a JSON-RPC request with the given method and params object.
	// It returns the raw JSON result, which is empty when the server omitted it.
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client sends JSON-RPC requests to a fixed endpoint.
type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Call implements Client.
func (c *client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		JsonRPC: "2.0",
		ID:      requestID,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		// Drain so the connection can be reused by the next call.
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// Endpoint returns the URL requests are sent to.
func (c *client) Endpoint() string {
	return c.endpoint
}

// NewClient returns a Client that posts JSON-RPC requests to endpoint
// using httpClient.
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
