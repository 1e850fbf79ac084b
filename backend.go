package openai

import (
	"context"
	"net/http"
	"net/url"
)

// Backend is a closed dispatch over the two supported topologies. Adding
// a topology means one more field, one more constructor, and one more
// arm in each forwarding method.
//
// Only DirectBackend and AzureBackend produce a usable value; the zero
// value has no variant to dispatch to and must not be used.
type Backend struct {
	direct *API
	azure  *Azure
}

func DirectBackend(c *API) Backend {
	return Backend{direct: c}
}

func AzureBackend(c *Azure) Backend {
	return Backend{azure: c}
}

// Name reports which topology the backend dispatches to.
func (b Backend) Name() string {
	if b.azure != nil {
		return azureName
	}
	return directName
}

func (b Backend) Headers() http.Header {
	if b.azure != nil {
		return b.azure.Headers()
	}
	return b.direct.Headers()
}

func (b Backend) APIKey() string {
	if b.azure != nil {
		return b.azure.APIKey()
	}
	return b.direct.APIKey()
}

func (b Backend) APIBase() string {
	if b.azure != nil {
		return b.azure.APIBase()
	}
	return b.direct.APIBase()
}

func (b Backend) Get(ctx context.Context, route string, query url.Values, out any) error {
	if b.azure != nil {
		return b.azure.Get(ctx, route, query, out)
	}
	return b.direct.Get(ctx, route, query, out)
}

func (b Backend) Post(ctx context.Context, route string, body any, out any) error {
	if b.azure != nil {
		return b.azure.Post(ctx, route, body, out)
	}
	return b.direct.Post(ctx, route, body, out)
}
