package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Client abstracts text-generation providers.
type Client interface {
	Complete(ctx context.Context, req Completion) (string, error)
}

// Message is a single chat turn.
type Message struct {
	Role    string
	Content string
}

// Completion captures one chat-style generation call.
type Completion struct {
	APIKey      string
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Role names shared by providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyContent is returned when the provider answered without any text.
var ErrEmptyContent = errors.New("llm response empty content")

// UpstreamError reports a non-2xx answer from a provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s http status %d: %s", e.Provider, e.StatusCode, msg)
}

// HTTPStatus returns the status to surface downstream. Codes outside the
// 4xx/5xx range map to 502.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// AsUpstream unwraps err into an UpstreamError if it carries one.
func AsUpstream(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
