package chat

import (
	"context"

	"golang.org/x/sync/errgroup"

	openai "github.com/kitbuilder587/go-openai"
	"github.com/kitbuilder587/go-openai/prompt"
)

const completionsRoute = "/chat/completions"

// Service issues chat completion calls through a backend.
type Service struct {
	backend openai.Backend
}

func NewService(backend openai.Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) Create(ctx context.Context, req Request) (*Response, error) {
	var resp Response
	if err := s.backend.Post(ctx, completionsRoute, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateWithTemplate renders the template with the supplied values,
// wraps the result as a single user message, and performs a minimal
// completion call. Build failures surface as ErrInvalidArgument, the
// same as direct builder use.
func (s *Service) CreateWithTemplate(ctx context.Context, tmpl prompt.Template, values map[string]string, model string) (*Response, error) {
	msg, err := NewMessageBuilder().Content(tmpl.Render(values)).Build()
	if err != nil {
		return nil, err
	}

	req, err := NewRequestBuilder().Model(model).Messages(msg).Build()
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, req)
}

// CreateEach performs one completion call per request concurrently.
// Responses come back in input order; the first failure cancels the
// remaining calls and is returned.
func (s *Service) CreateEach(ctx context.Context, reqs []Request) ([]*Response, error) {
	responses := make([]*Response, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			resp, err := s.Create(ctx, req)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}
