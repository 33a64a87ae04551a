package generation

import (
	"errors"
	"net/http"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/util"
)

var (
	ErrMissingCredential = errors.New("api key is required")
	ErrMissingField      = errors.New("skills, experience and job description are required")
)

// Error codes used in logs.
const (
	CodeMissingCredential = "missing_credential"
	CodeMissingField      = "missing_field"
	CodeUpstream          = "upstream_failure"
	CodeUnexpected        = "unexpected_failure"
	CodeMethodNotAllowed  = "method_not_allowed"
	CodeBadRequest        = "bad_request"
)

// Classify maps a Generate error to an HTTP status, a log code and the
// message shown to the caller.
func Classify(err error) (status int, code string, message string) {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return http.StatusBadRequest, CodeMissingCredential, "API key is required"
	case errors.Is(err, ErrMissingField):
		return http.StatusBadRequest, CodeMissingField, "All fields are required"
	}
	if upstream, ok := llm.AsUpstream(err); ok {
		msg := upstream.Message
		if msg == "" {
			msg = upstream.Error()
		}
		return upstream.HTTPStatus(), CodeUpstream, util.RedactSecrets(msg)
	}
	if errors.Is(err, llm.ErrEmptyContent) {
		return http.StatusBadGateway, CodeUpstream, "Empty response from text generation service"
	}
	return http.StatusInternalServerError, CodeUnexpected, util.RedactSecrets(err.Error())
}
