package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	openai "github.com/kitbuilder587/go-openai"
)

func TestRequestBuilderOmitsUnsetFields(t *testing.T) {
	msg, err := NewMessageBuilder().Content("hello").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	req, err := NewRequestBuilder().Model("gpt-x").Messages(msg).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(keys) != 2 {
		t.Errorf("serialized keys = %v, want only model and messages", keys)
	}
	for _, absent := range []string{"temperature", "top_p", "n", "stream", "stop", "max_tokens", "presence_penalty", "frequency_penalty", "logit_bias", "user"} {
		if _, ok := keys[absent]; ok {
			t.Errorf("unset field %q present in payload %s", absent, payload)
		}
	}
	if strings.Contains(string(payload), "null") {
		t.Errorf("payload contains null: %s", payload)
	}
}

func TestRequestBuilderSerializesSetFields(t *testing.T) {
	msg, err := NewMessageBuilder().Role(RoleSystem).Content("be terse").Name("ops").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	req, err := NewRequestBuilder().
		Model("gpt-x").
		Messages(msg).
		Temperature(0.2).
		TopP(0.9).
		N(2).
		Stream(false).
		Stop("END").
		MaxTokens(128).
		PresencePenalty(0.1).
		FrequencyPenalty(0.3).
		LogitBias(map[string]float64{"50256": -100}).
		User("tester").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(payload, &keys); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, present := range []string{"model", "messages", "temperature", "top_p", "n", "stream", "stop", "max_tokens", "presence_penalty", "frequency_penalty", "logit_bias", "user"} {
		if _, ok := keys[present]; !ok {
			t.Errorf("set field %q missing from payload %s", present, payload)
		}
	}
	// stream was explicitly set to false and must still be on the wire
	if string(keys["stream"]) != "false" {
		t.Errorf("stream = %s, want false", keys["stream"])
	}
}

func TestRequestBuilderValidation(t *testing.T) {
	validMsg := Message{Role: RoleUser, Content: "hello"}

	tests := []struct {
		name  string
		build func() (Request, error)
	}{
		{
			name: "missing model",
			build: func() (Request, error) {
				return NewRequestBuilder().Messages(validMsg).Build()
			},
		},
		{
			name: "empty messages",
			build: func() (Request, error) {
				return NewRequestBuilder().Model("gpt-x").Build()
			},
		},
		{
			name: "invalid role",
			build: func() (Request, error) {
				return NewRequestBuilder().Model("gpt-x").Messages(Message{Role: "robot", Content: "hi"}).Build()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if !errors.Is(err, openai.ErrInvalidArgument) {
				t.Errorf("Build() error = %v, want %v", err, openai.ErrInvalidArgument)
			}
		})
	}
}

func TestMessageBuilder(t *testing.T) {
	t.Run("defaults to user role", func(t *testing.T) {
		msg, err := NewMessageBuilder().Content("hello").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if msg.Role != RoleUser {
			t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := NewMessageBuilder().Role(RoleSystem).Build()
		if !errors.Is(err, openai.ErrInvalidArgument) {
			t.Errorf("Build() error = %v, want %v", err, openai.ErrInvalidArgument)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := NewMessageBuilder().Role("tool").Content("hi").Build()
		if !errors.Is(err, openai.ErrInvalidArgument) {
			t.Errorf("Build() error = %v, want %v", err, openai.ErrInvalidArgument)
		}
	})

	t.Run("name is optional on the wire", func(t *testing.T) {
		msg, err := NewMessageBuilder().Content("hello").Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if strings.Contains(string(payload), "name") {
			t.Errorf("unset name present in payload %s", payload)
		}
	})
}
