package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-1.5-flash"

// GeminiProvider talks to the Google generative-language endpoint. The
// credential travels as a query parameter, which is how this API works.
type GeminiProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// NewGeminiProviderWithBaseURL points the provider at a non-default host,
// used for self-hosted proxies and in tests.
func NewGeminiProviderWithBaseURL(apiKey, model, baseURL string) *GeminiProvider {
	p := NewGeminiProvider(apiKey, model)
	if baseURL != "" {
		p.baseURL = baseURL
	}
	return p
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Gemini request/response wire types
type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:     req.Temperature,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: req.MaxTokens,
		},
	}

	body, _ := json.Marshal(apiReq)

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{
			Kind:    KindUnreachable,
			Message: "cannot reach the AI service",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errFromStatus(resp.StatusCode)
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &UpstreamError{
			Kind:    KindBadResponse,
			Status:  resp.StatusCode,
			Message: "invalid response from AI service",
			Err:     err,
		}
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return nil, &UpstreamError{
			Kind:    KindBadResponse,
			Status:  resp.StatusCode,
			Message: "invalid response from AI service",
		}
	}

	return &CompletionResponse{
		Content: apiResp.Candidates[0].Content.Parts[0].Text,
		Model:   model,
	}, nil
}

// Ping sends a trivial "Hello" prompt through the normal completion path and
// reports whether the credential works. The result is advisory.
func (g *GeminiProvider) Ping(ctx context.Context) error {
	_, err := g.Complete(ctx, &CompletionRequest{
		Prompt: "Hello",
	})
	return err
}
