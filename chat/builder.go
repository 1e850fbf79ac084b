package chat

import (
	"fmt"

	openai "github.com/kitbuilder587/go-openai"
)

// MessageBuilder accumulates the fields of a single message. Role
// defaults to user.
type MessageBuilder struct {
	msg Message
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{msg: Message{Role: RoleUser}}
}

func (b *MessageBuilder) Role(role Role) *MessageBuilder {
	b.msg.Role = role
	return b
}

func (b *MessageBuilder) Content(content string) *MessageBuilder {
	b.msg.Content = content
	return b
}

func (b *MessageBuilder) Name(name string) *MessageBuilder {
	b.msg.Name = name
	return b
}

// Build validates the accumulated fields and finalizes the message.
func (b *MessageBuilder) Build() (Message, error) {
	if !b.msg.Role.Valid() {
		return Message{}, fmt.Errorf("%w: role %q must be one of system, user, assistant", openai.ErrInvalidArgument, b.msg.Role)
	}
	if b.msg.Content == "" {
		return Message{}, fmt.Errorf("%w: message content must not be empty", openai.ErrInvalidArgument)
	}
	return b.msg, nil
}

// RequestBuilder accumulates optional tuning fields around the two
// required ones, model and messages. Build validates; it never
// substitutes a default for a required field.
type RequestBuilder struct {
	req Request
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{}
}

func (b *RequestBuilder) Model(model string) *RequestBuilder {
	b.req.Model = model
	return b
}

func (b *RequestBuilder) Messages(messages ...Message) *RequestBuilder {
	b.req.Messages = messages
	return b
}

func (b *RequestBuilder) Temperature(v float64) *RequestBuilder {
	b.req.Temperature = &v
	return b
}

func (b *RequestBuilder) TopP(v float64) *RequestBuilder {
	b.req.TopP = &v
	return b
}

func (b *RequestBuilder) N(v int) *RequestBuilder {
	b.req.N = &v
	return b
}

func (b *RequestBuilder) Stream(v bool) *RequestBuilder {
	b.req.Stream = &v
	return b
}

func (b *RequestBuilder) Stop(sequences ...string) *RequestBuilder {
	b.req.Stop = sequences
	return b
}

func (b *RequestBuilder) MaxTokens(v int) *RequestBuilder {
	b.req.MaxTokens = &v
	return b
}

func (b *RequestBuilder) PresencePenalty(v float64) *RequestBuilder {
	b.req.PresencePenalty = &v
	return b
}

func (b *RequestBuilder) FrequencyPenalty(v float64) *RequestBuilder {
	b.req.FrequencyPenalty = &v
	return b
}

func (b *RequestBuilder) LogitBias(bias map[string]float64) *RequestBuilder {
	b.req.LogitBias = bias
	return b
}

func (b *RequestBuilder) User(user string) *RequestBuilder {
	b.req.User = user
	return b
}

// Build validates the accumulated fields and finalizes the request.
func (b *RequestBuilder) Build() (Request, error) {
	if b.req.Model == "" {
		return Request{}, fmt.Errorf("%w: model must not be empty", openai.ErrInvalidArgument)
	}
	if len(b.req.Messages) == 0 {
		return Request{}, fmt.Errorf("%w: messages must not be empty", openai.ErrInvalidArgument)
	}
	for i, msg := range b.req.Messages {
		if !msg.Role.Valid() {
			return Request{}, fmt.Errorf("%w: message %d role %q must be one of system, user, assistant", openai.ErrInvalidArgument, i, msg.Role)
		}
	}
	return b.req, nil
}
