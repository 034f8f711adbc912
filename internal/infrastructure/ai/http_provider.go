package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/doeshing/smartcmd-go/internal/domain"
	"github.com/doeshing/smartcmd-go/internal/ports"
)

const httpProviderName = "http"

// httpCompleter is a configuration-driven chat-completions client.
// Request and response shapes follow the OpenAI format unless APIFormat overrides them.
type httpCompleter struct {
	settings   domain.BackendSettings
	apiKey     string
	httpClient *http.Client
}

func newHTTPCompleter(settings domain.BackendSettings, apiKey string, client *http.Client) *httpCompleter {
	return &httpCompleter{
		settings:   settings,
		apiKey:     apiKey,
		httpClient: client,
	}
}

func (p *httpCompleter) Name() string {
	return httpProviderName
}

// Complete implements ports.Completer.
func (p *httpCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody, err := p.buildRequestBody(prompt)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.settings.Endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	p.setHeaders(httpReq)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	content, err := p.parseResponse(responseBody.Bytes())
	if err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	return content, nil
}

func (p *httpCompleter) buildRequestBody(prompt string) ([]byte, error) {
	request := map[string]interface{}{
		"model": valueOrDefault(p.settings.Model, domain.DefaultModel),
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
	}
	if p.settings.MaxTokens > 0 {
		request["max_tokens"] = p.settings.MaxTokens
	}
	return json.Marshal(request)
}

func (p *httpCompleter) setHeaders(req *http.Request) {
	format := p.settings.APIFormat
	req.Header.Set(format.GetAuthHeaderName(), format.GetAuthHeaderPrefix()+p.apiKey)
	for key, value := range format.ExtraHeaders {
		req.Header.Set(key, value)
	}
}

// parseResponse extracts the generated text using the configured JSON path.
func (p *httpCompleter) parseResponse(body []byte) (string, error) {
	var response map[string]interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("unmarshal JSON: %w", err)
	}

	path := p.settings.APIFormat.GetResponseJSONPath()
	content, err := extractJSONPath(response, path)
	if err != nil {
		return "", fmt.Errorf("extract from path '%s': %w", path, err)
	}
	return content, nil
}

var _ ports.Completer = (*httpCompleter)(nil)
