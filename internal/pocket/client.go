package pocket

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// maxErrorBody caps how much of a failed reply ends up in a StatusError.
const maxErrorBody = 1024

type Client struct {
	transport Transport
	endpoint  string
	log       *slog.Logger
}

func NewClient(transport Transport, endpoint string, log *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{transport: transport, endpoint: endpoint, log: log}
}

// List sends q to Pocket and returns the raw reply body. A non-2xx reply is
// returned as a *StatusError without looking at the body.
func (c *Client) List(ctx context.Context, q *Query) ([]byte, error) {
	if q == nil || q.accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	body, err := q.Encode()
	if err != nil {
		return nil, err
	}

	c.log.Debug("sending list request",
		"endpoint", c.endpoint,
		"state", q.state,
		"sort", q.sort,
		"detailType", q.detailType,
		"tag", q.tag.IsSet(),
		"search", q.search.IsSet(),
	)

	status, raw, err := c.transport.Send(ctx, c.endpoint, Headers(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	c.log.Debug("received list response", "status", status, "bytes", len(raw))

	if status < 200 || status > 299 {
		b := raw
		if len(b) > maxErrorBody {
			b = b[:maxErrorBody]
		}
		return nil, &StatusError{Code: status, Body: string(b)}
	}

	if !utf8.Valid(raw) {
		return nil, ErrDecodeResponse
	}
	return raw, nil
}
