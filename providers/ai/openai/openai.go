// Package openai implements the ai.Provider transport against any
// OpenAI-compatible chat completions endpoint.
package openai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/canvasmith/canvasmith/internal/utils"
	"github.com/canvasmith/canvasmith/providers/ai"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Provider talks to an OpenAI-compatible chat completions API.
type Provider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ ai.Provider = (*Provider)(nil)

// New creates a provider for the given model against the default OpenAI
// endpoint. Configure it with the With* builder methods.
func New(model string) *Provider {
	return &Provider{
		model:   model,
		baseURL: defaultBaseURL,
	}
}

// WithAPIKey sets the API key used for authenticating requests.
func (p *Provider) WithAPIKey(apiKey string) *Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the default base URL for API requests.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets the HTTP client used for outbound requests.
func (p *Provider) WithHttpClient(httpClient *http.Client) *Provider {
	p.httpClient = httpClient
	return p
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}

type wireChoice struct {
	Message      wireMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type wireResponse struct {
	Id      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []wireChoice `json:"choices"`
	Usage   *ai.Usage    `json:"usage,omitempty"`
}

// SendMessage implements ai.Provider against the chat completions endpoint.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	model := request.Model
	if model == "" {
		model = p.model
	}

	messages := make([]wireMessage, 0, len(request.Messages)+1)
	if request.SystemPrompt != "" {
		messages = append(messages, wireMessage{Role: string(ai.RoleSystem), Content: request.SystemPrompt})
	}
	for _, msg := range request.Messages {
		messages = append(messages, wireMessage{Role: string(msg.Role), Content: msg.Content})
	}

	body := wireRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   request.MaxTokens,
		Temperature: request.Temperature,
	}

	resp, err := utils.DoPostSync[wireResponse](ctx, p.httpClient, p.baseURL+"/chat/completions", p.apiKey, body)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion returned no choices")
	}

	return &ai.ChatResponse{
		Id:           resp.Id,
		Model:        resp.Model,
		Content:      resp.Choices[0].Message.Content,
		FinishReason: resp.Choices[0].FinishReason,
		Usage:        resp.Usage,
	}, nil
}
