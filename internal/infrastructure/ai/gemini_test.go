package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type stubGenerator struct {
	resp      *genai.GenerateContentResponse
	err       error
	gotModel  string
	gotPrompt string
	calls     int
}

func (s *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.calls++
	s.gotModel = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.gotPrompt = contents[0].Parts[0].Text
	}
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func TestGeminiCompleterReturnsText(t *testing.T) {
	gen := &stubGenerator{resp: textResponse("dir")}
	completer := &geminiCompleter{models: gen, model: "gemma-3-27b-it"}

	out, err := completer.Complete(context.Background(), "list files")
	require.NoError(t, err)

	assert.Equal(t, "dir", out)
	assert.Equal(t, "gemma-3-27b-it", gen.gotModel)
	assert.Equal(t, "list files", gen.gotPrompt)
	assert.Equal(t, 1, gen.calls)
}

func TestGeminiCompleterPropagatesError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	completer := &geminiCompleter{models: gen, model: "m"}

	_, err := completer.Complete(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 1, gen.calls)
}

func TestGeminiCompleterEmptyResponse(t *testing.T) {
	completer := &geminiCompleter{models: &stubGenerator{resp: &genai.GenerateContentResponse{}}, model: "m"}

	_, err := completer.Complete(context.Background(), "x")
	assert.Error(t, err)
}

func TestGeminiCompleterCandidateWithoutText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: genai.RoleModel}, FinishReason: genai.FinishReasonSafety}},
	}
	completer := &geminiCompleter{models: &stubGenerator{resp: resp}, model: "m"}

	out, err := completer.Complete(context.Background(), "x")
	assert.Empty(t, out)
	assert.ErrorContains(t, err, "no text in response")
}
