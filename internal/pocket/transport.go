package pocket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is Pocket's retrieve endpoint.
const DefaultEndpoint = "https://getpocket.com/v3/get"

// Transport performs a single synchronous POST. Implementations must not
// retry.
type Transport interface {
	Send(ctx context.Context, endpoint string, headers http.Header, body []byte) (status int, raw []byte, err error)
}

// Headers returns the fixed header set sent with every request.
func Headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	return h
}

type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps client. A nil client gets a 30s timeout.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Send(ctx context.Context, endpoint string, headers http.Header, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, raw, nil
}
