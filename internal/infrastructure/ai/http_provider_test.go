package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

func TestHTTPCompleterSendsPromptAndParsesDefaultPath(t *testing.T) {
	var gotBody map[string]interface{}
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  ls -la\n"}}]}`))
	}))
	defer server.Close()

	completer := newHTTPCompleter(domain.BackendSettings{
		Endpoint:  server.URL,
		Model:     "gpt-test",
		MaxTokens: 64,
	}, "secret", server.Client())

	out, err := completer.Complete(context.Background(), "list files")
	require.NoError(t, err)

	assert.Equal(t, "  ls -la\n", out)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "gpt-test", gotBody["model"])
	assert.EqualValues(t, 64, gotBody["max_tokens"])
	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "list files", messages[0].(map[string]interface{})["content"])
}

func TestHTTPCompleterCustomFormat(t *testing.T) {
	var gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"pwd"}]}`))
	}))
	defer server.Close()

	completer := newHTTPCompleter(domain.BackendSettings{
		Endpoint: server.URL,
		APIFormat: domain.APIFormat{
			AuthHeaderName:   "x-api-key",
			ResponseJSONPath: "content[0].text",
			ExtraHeaders:     map[string]string{"anthropic-version": "2023-06-01"},
		},
	}, "key", server.Client())

	out, err := completer.Complete(context.Background(), "where am i")
	require.NoError(t, err)
	assert.Equal(t, "pwd", out)
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
}

func TestHTTPCompleterErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	completer := newHTTPCompleter(domain.BackendSettings{Endpoint: server.URL}, "bad", server.Client())

	_, err := completer.Complete(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestExtractJSONPath(t *testing.T) {
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"a":{"b":[{"c":"x"}]},"n":1}`), &data))

	got, err := extractJSONPath(data, "a.b[0].c")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	_, err = extractJSONPath(data, "a.b[3].c")
	assert.Error(t, err)

	_, err = extractJSONPath(data, "missing")
	assert.Error(t, err)

	_, err = extractJSONPath(data, "n")
	assert.Error(t, err)
}
