package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/go-openai/metrics"
)

const azureName = "azure"

const defaultAPIVersion = "2023-05-15"

// AzureConfig configures the gateway-routed backend. Resource names the
// Azure OpenAI resource the base URL is derived from.
type AzureConfig struct {
	APIKey     string
	Resource   string
	Deployment string
	APIVersion string
	BaseURL    string // override for tests, defaults to the resource endpoint
	Timeout    time.Duration
	Metrics    *metrics.Metrics
}

// Azure talks to a versioned deployment endpoint. Every route is
// rewritten to address the deployment before dispatch.
type Azure struct {
	base
	resource   string
	deployment string
	apiVersion string
}

func NewAzure(cfg AzureConfig, logger *zap.Logger) *Azure {
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.openai.azure.com", cfg.Resource)
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	return &Azure{
		base:       newBase(cfg.APIKey, cfg.BaseURL, cfg.Timeout, logger, cfg.Metrics),
		resource:   cfg.Resource,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
	}
}

// deploymentRoute rewrites a route into the gateway form. The incoming
// route is a suffix, never the full path.
func (c *Azure) deploymentRoute(route string) string {
	return fmt.Sprintf("/openai/deployments/%s/%s?api-version=%s",
		c.deployment, strings.TrimPrefix(route, "/"), c.apiVersion)
}

func (c *Azure) Headers() http.Header {
	return http.Header{}
}

func (c *Azure) APIKey() string {
	return c.apiKey
}

func (c *Azure) APIBase() string {
	return c.baseURL
}

func (c *Azure) Get(ctx context.Context, route string, query url.Values, out any) error {
	req, err := c.request(ctx, http.MethodGet, c.deploymentRoute(route), c.Headers(), withQuery(query))
	if err != nil {
		return err
	}
	return c.do(req, azureName, out)
}

func (c *Azure) Post(ctx context.Context, route string, body any, out any) error {
	req, err := c.request(ctx, http.MethodPost, c.deploymentRoute(route), c.Headers(), withJSON(body))
	if err != nil {
		return err
	}
	return c.do(req, azureName, out)
}
