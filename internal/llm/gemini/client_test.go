package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"resume-builder/internal/llm"
)

func TestSplitMessages(t *testing.T) {
	system, parts := splitMessages([]llm.Message{
		{Role: llm.RoleSystem, Content: "be helpful"},
		{Role: llm.RoleUser, Content: "write a resume"},
		{Role: llm.RoleSystem, Content: "be brief"},
	})

	assert.Equal(t, "be helpful\n\nbe brief", system)
	require.Len(t, parts, 1)
	assert.Equal(t, genai.Text("write a resume"), parts[0])
}

func TestExtractTextJoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Resume"), genai.Text("---Letter")}},
		}},
	}

	got, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Resume---Letter", got)
}

func TestExtractTextNoCandidates(t *testing.T) {
	_, err := extractText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
	assert.ErrorIs(t, err, llm.ErrEmptyContent)
}

func TestMapErrorUpstream(t *testing.T) {
	err := mapError(fmt.Errorf("rpc: %w", &googleapi.Error{Code: http.StatusForbidden, Message: "API key not valid"}))

	upstream, ok := llm.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Equal(t, "API key not valid", upstream.Message)
	assert.Equal(t, "gemini", upstream.Provider)
}

func TestMapErrorOther(t *testing.T) {
	err := mapError(errors.New("connection reset"))
	_, ok := llm.AsUpstream(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	_, err := NewClient().Complete(context.Background(), llm.Completion{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is required")
}
