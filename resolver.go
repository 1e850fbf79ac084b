package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// resolve turns a completed exchange into a decoded success value or a
// typed error. The status code alone decides which schema is attempted;
// a decode failure on either path is reported as ErrDecodeFailed, never
// mistaken for the other kind.
func (b *base) resolve(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return fmt.Errorf("%w: error body: %v", ErrDecodeFailed, err)
		}
		// JSON that lacks the error object unmarshals to a zero value;
		// that is not an upstream-reported failure.
		if apiErr.Error.Message == "" && apiErr.Error.Type == "" {
			return fmt.Errorf("%w: error body does not match error schema (status %d)", ErrDecodeFailed, resp.StatusCode)
		}
		b.logger.Error("api request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("type", apiErr.Error.Type),
			zap.String("message", apiErr.Error.Message),
		)
		return &apiErr.Error
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return nil
}

func statusLabel(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.Is(err, ErrDecodeFailed):
		return "decode_error"
	default:
		return "network_error"
	}
}
