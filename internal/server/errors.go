package server

import (
	"fmt"
	"net/http"
	"strings"
)

// errorKind is the coarse classification reported to analytics and logs.
type errorKind string

const (
	errKindClientInput   errorKind = "client_input"
	errKindProvider      errorKind = "provider"
	errKindEmptyResponse errorKind = "empty_response"
	errKindParse         errorKind = "parse"
	errKindInternal      errorKind = "internal"
)

// apiError pairs an HTTP status with the user-facing detail message. All
// request failures are surfaced to the caller through this type; there is no
// silent failure on the primary path.
type apiError struct {
	status int
	kind   errorKind
	detail string
}

func (e *apiError) Error() string {
	return e.detail
}

func clientInputError(detail string) *apiError {
	return &apiError{status: http.StatusBadRequest, kind: errKindClientInput, detail: detail}
}

func internalError(detail string) *apiError {
	return &apiError{status: http.StatusInternalServerError, kind: errKindInternal, detail: detail}
}

func emptyResponseError() *apiError {
	return &apiError{
		status: http.StatusBadGateway,
		kind:   errKindEmptyResponse,
		detail: "Vision model failed to return a response.",
	}
}

// classifyProviderError translates a collaborator failure into a user-facing
// 502. Quota and credential problems get targeted messages based on the error
// text; everything else surfaces the raw error.
func classifyProviderError(provider string, err error) *apiError {
	msg := err.Error()
	lower := strings.ToLower(msg)

	var detail string
	switch {
	case strings.Contains(lower, "quota") || strings.Contains(lower, "insufficient_quota"):
		detail = fmt.Sprintf("API quota exceeded. Please check your %s account billing and usage limits. Error: %s", provider, msg)
	case strings.Contains(lower, "api_key") || strings.Contains(lower, "authentication"):
		detail = fmt.Sprintf("API authentication failed. Please check your %s API key in .env. Error: %s", provider, msg)
	default:
		detail = "Vision model error: " + msg
	}
	return &apiError{status: http.StatusBadGateway, kind: errKindProvider, detail: detail}
}

// parseError reports a JSON decode failure with a capped slice of the
// untouched raw response for diagnosis.
func parseError(raw string) *apiError {
	snippet := raw
	if len(snippet) > 500 {
		snippet = snippet[:500]
	}
	return &apiError{
		status: http.StatusInternalServerError,
		kind:   errKindParse,
		detail: "Failed to parse model output as JSON. Raw response: " + snippet,
	}
}
