package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"google.golang.org/api/googleapi"
)

// ConfigError indicates the gateway cannot be constructed (missing credential, unknown provider).
// It is returned at startup only, never per call.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm configuration error: %s", e.Message)
}

// AuthError indicates the provider rejected the credential or it lacks permission.
type AuthError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s rejected the credential: %s", e.Provider, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// QuotaError indicates rate or usage limits are exhausted at the provider.
type QuotaError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s quota exceeded: %s", e.Provider, e.Message)
}

func (e *QuotaError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the provider returned no text.
type EmptyResponseError struct {
	Provider Provider
	Model    string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s returned an empty completion (model %s)", e.Provider, e.Model)
}

// ProviderError wraps any other provider-side failure.
type ProviderError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Classify maps a raw provider error onto AuthError, QuotaError or ProviderError.
// Providers do not expose stable error codes for these cases, so the message is
// matched for "api key", "quota" and "permission" (in that order); HTTP status codes
// are consulted when the SDK error carries one. Errors that are already classified
// are returned unchanged.
func Classify(provider Provider, err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	status := httpStatus(err)

	switch {
	case strings.Contains(lower, "api key"):
		return &AuthError{Provider: provider, Message: msg, Cause: err}
	case strings.Contains(lower, "quota") || status == http.StatusTooManyRequests:
		return &QuotaError{Provider: provider, Message: msg, Cause: err}
	case strings.Contains(lower, "permission") || status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{Provider: provider, Message: msg, Cause: err}
	default:
		return &ProviderError{Provider: provider, Message: msg, Cause: err}
	}
}

func isClassified(err error) bool {
	var (
		cfgErr   *ConfigError
		authErr  *AuthError
		quotaErr *QuotaError
		emptyErr *EmptyResponseError
		provErr  *ProviderError
	)
	return errors.As(err, &cfgErr) || errors.As(err, &authErr) || errors.As(err, &quotaErr) ||
		errors.As(err, &emptyErr) || errors.As(err, &provErr)
}

// httpStatus extracts an HTTP status code from SDK errors, or 0.
func httpStatus(err error) int {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	var aErr *anthropic.Error
	if errors.As(err, &aErr) {
		return aErr.StatusCode
	}
	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}
	return 0
}
