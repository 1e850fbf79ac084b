package openai

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/go-openai/metrics"
)

const directName = "openai"

// Config configures the direct multi-tenant backend.
type Config struct {
	APIKey       string
	Organization string
	BaseURL      string // override for tests, defaults to the public endpoint
	Timeout      time.Duration
	Metrics      *metrics.Metrics
}

// API talks to the multi-tenant endpoint. Routes pass through unchanged.
type API struct {
	base
	organization string
}

func New(cfg Config, logger *zap.Logger) *API {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &API{
		base:         newBase(cfg.APIKey, cfg.BaseURL, cfg.Timeout, logger, cfg.Metrics),
		organization: cfg.Organization,
	}
}

func (c *API) Headers() http.Header {
	headers := http.Header{}
	if c.organization != "" {
		headers.Set(organizationHeader, c.organization)
	}
	return headers
}

func (c *API) APIKey() string {
	return c.apiKey
}

func (c *API) APIBase() string {
	return c.baseURL
}

func (c *API) Get(ctx context.Context, route string, query url.Values, out any) error {
	req, err := c.request(ctx, http.MethodGet, route, c.Headers(), withQuery(query))
	if err != nil {
		return err
	}
	return c.do(req, directName, out)
}

func (c *API) Post(ctx context.Context, route string, body any, out any) error {
	req, err := c.request(ctx, http.MethodPost, route, c.Headers(), withJSON(body))
	if err != nil {
		return err
	}
	return c.do(req, directName, out)
}
