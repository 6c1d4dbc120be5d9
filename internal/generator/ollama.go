package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/newsninja/newsninja/internal/apperr"
)

// Generation latency is high and variable; the timeout is deliberately
// generous compared to the search backends.
const defaultGenerateTimeout = 120 * time.Second

type OllamaConfig func(client *OllamaClient)

// OllamaClient talks to an Ollama-compatible inference server.
type OllamaClient struct {
	base url.URL
	http *http.Client
}

func NewOllamaClient(baseUrl string, opts ...OllamaConfig) (*OllamaClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &OllamaClient{
		base: *base,
		http: &http.Client{
			Timeout: defaultGenerateTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) OllamaConfig {
	return func(client *OllamaClient) {
		client.http = httpClient
	}
}

type GenerateRequest struct {
	Model string `json:"model"`

	// Prompt is the full textual prompt; no chat structuring is used.
	Prompt string `json:"prompt"`

	// Stream is always false here: the response is consumed in one piece.
	Stream bool `json:"stream"`

	// Options lists model-specific decoding options.
	Options map[string]any `json:"options"`
}

type GenerateResponse struct {
	Response string `json:"response"`
}

func (oc *OllamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if req.Prompt == "" {
		return nil, apperr.NewValidation("missing prompt")
	}
	if req.Model == "" {
		return nil, apperr.NewValidation("missing model name")
	}
	req.Stream = false

	var resp GenerateResponse
	if err := oc.do(ctx, http.MethodPost, "/api/generate", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Healthy probes the tags endpoint to check the inference server is up.
func (oc *OllamaClient) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reqURL := oc.base.JoinPath("/api/tags")
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return false
	}

	resp, err := oc.http.Do(request)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (oc *OllamaClient) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := oc.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
