package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/pkg/errors"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

// Client chama a API de chat completions para a geração assistida de posts
type Client interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) ([]byte, error)
}

type openAIClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &openAIClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CompleteJSON envia os prompts e retorna o conteúdo da primeira escolha,
// que a API garante ser um objeto JSON válido via response_format
func (c *openAIClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) ([]byte, error) {
	if c.cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY não configurada")
	}

	payload := chatRequest{
		Model: c.cfg.OpenAI.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.7,
		MaxTokens:      4000,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAI.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar a API da OpenAI")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API da OpenAI respondeu %s: %s", resp.Status, string(data))
	}

	var response chatResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 {
		return nil, errors.New("resposta da OpenAI sem escolhas")
	}

	return []byte(response.Choices[0].Message.Content), nil
}
