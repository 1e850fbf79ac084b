// Package config loads client settings from the environment for
// embedding programs that want the conventional variable names. The
// core client itself takes credentials programmatically.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	openai "github.com/kitbuilder587/go-openai"
)

var (
	ErrMissingAPIKey     = errors.New("OPENAI_API_KEY is required")
	ErrMissingResource   = errors.New("AZURE_OPENAI_RESOURCE is required")
	ErrMissingDeployment = errors.New("AZURE_OPENAI_DEPLOYMENT is required")
	ErrUnknownBackend    = errors.New("unknown backend")
)

const (
	BackendOpenAI = "openai"
	BackendAzure  = "azure"
)

type Config struct {
	Backend string
	OpenAI  OpenAIConfig
	Azure   AzureConfig
	Log     LogConfig
	Timeout time.Duration
}

type OpenAIConfig struct {
	APIKey       string
	Organization string
	BaseURL      string
}

type AzureConfig struct {
	APIKey     string
	Resource   string
	Deployment string
	APIVersion string
	BaseURL    string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Backend: getEnvOrDefault("OPENAI_BACKEND", BackendOpenAI),
		OpenAI: OpenAIConfig{
			APIKey:       os.Getenv("OPENAI_API_KEY"),
			Organization: os.Getenv("OPENAI_ORGANIZATION"),
			BaseURL:      os.Getenv("OPENAI_BASE_URL"),
		},
		Azure: AzureConfig{
			APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
			Resource:   os.Getenv("AZURE_OPENAI_RESOURCE"),
			Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
			APIVersion: os.Getenv("AZURE_OPENAI_API_VERSION"),
			BaseURL:    os.Getenv("AZURE_OPENAI_BASE_URL"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Timeout: time.Duration(getEnvIntOrDefault("REQUEST_TIMEOUT_SEC", 60)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return ErrMissingAPIKey
		}
	case BackendAzure:
		if c.Azure.APIKey == "" {
			return ErrMissingAPIKey
		}
		if c.Azure.Resource == "" {
			return ErrMissingResource
		}
		if c.Azure.Deployment == "" {
			return ErrMissingDeployment
		}
	default:
		return ErrUnknownBackend
	}
	return nil
}

// NewBackend builds the backend the configuration selects.
func NewBackend(cfg *Config, logger *zap.Logger) (openai.Backend, error) {
	if err := cfg.Validate(); err != nil {
		return openai.Backend{}, err
	}

	switch cfg.Backend {
	case BackendOpenAI:
		return openai.DirectBackend(openai.New(openai.Config{
			APIKey:       cfg.OpenAI.APIKey,
			Organization: cfg.OpenAI.Organization,
			BaseURL:      cfg.OpenAI.BaseURL,
			Timeout:      cfg.Timeout,
		}, logger)), nil
	case BackendAzure:
		return openai.AzureBackend(openai.NewAzure(openai.AzureConfig{
			APIKey:     cfg.Azure.APIKey,
			Resource:   cfg.Azure.Resource,
			Deployment: cfg.Azure.Deployment,
			APIVersion: cfg.Azure.APIVersion,
			BaseURL:    cfg.Azure.BaseURL,
			Timeout:    cfg.Timeout,
		}, logger)), nil
	}
	return openai.Backend{}, ErrUnknownBackend
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
