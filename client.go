// Package openai is a client for the OpenAI chat completion API,
// reachable either directly or through an Azure OpenAI deployment.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kitbuilder587/go-openai/metrics"
)

const organizationHeader = "OpenAI-Organization"

const defaultTimeout = 60 * time.Second

// Client is the capability every backend exposes. Call sites are written
// against it once and stay independent of the routing topology.
type Client interface {
	Headers() http.Header
	APIKey() string
	APIBase() string
	Get(ctx context.Context, route string, query url.Values, out any) error
	Post(ctx context.Context, route string, body any, out any) error
}

// base assembles outgoing requests and resolves responses. It holds only
// immutable configuration, so concurrent calls need no locking.
type base struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newBase(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) base {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: m,
	}
}

// request builds the outgoing exchange: method, URL, auth and shared
// headers, plus whatever the mutation closure attaches. No I/O happens
// here.
func (b *base) request(ctx context.Context, method, route string, headers http.Header, mutate func(*http.Request) error) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+route, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	req.Header.Set("X-Request-ID", uuid.New().String())
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if mutate != nil {
		if err := mutate(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// withQuery merges the caller's query with whatever the route already
// carries (the Azure rewrite puts api-version there).
func withQuery(query url.Values) func(*http.Request) error {
	return func(req *http.Request) error {
		if len(query) == 0 {
			return nil
		}
		merged := req.URL.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}
		req.URL.RawQuery = merged.Encode()
		return nil
	}
}

func withJSON(body any) func(*http.Request) error {
	return func(req *http.Request) error {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Body = io.NopCloser(bytes.NewReader(payload))
		req.ContentLength = int64(len(payload))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(payload)), nil
		}
		return nil
	}
}

func (b *base) do(req *http.Request, backend string, out any) error {
	start := time.Now()

	resp, err := b.client.Do(req)
	if err != nil {
		b.record(backend, "network_error", start)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	err = b.resolve(resp, out)
	b.record(backend, statusLabel(err), start)
	return err
}

func (b *base) record(backend, status string, start time.Time) {
	if b.metrics == nil {
		return
	}
	b.metrics.RecordRequest(backend, status, time.Since(start))
}
