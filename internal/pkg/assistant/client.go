package assistant

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain "github.com/cmlabs-hris/retail-hr/internal/domain/assistant"
	"golang.org/x/oauth2"
)

const (
	extractPrompt = `Read this identity or employment document and answer with a single JSON object ` +
		`with the keys name, idNumber, expiryDate (YYYY-MM-DD), iban and role. Use an empty string for anything you cannot read.`
	advisePrompt = `You are an HR assistant for a retail company. Answer briefly and practically.`
)

var ErrEmptyReply = errors.New("assistant returned no choices")

type Config struct {
	BaseURL string // e.g. https://api.openai.com/v1
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	base := &http.Client{Timeout: cfg.Timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.APIKey,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Extract(ctx context.Context, image []byte, mimeType string) (domain.Extraction, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: extractPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			},
		}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	reply, err := c.complete(ctx, req)
	if err != nil {
		return domain.Extraction{}, err
	}

	var extraction domain.Extraction
	if err := json.Unmarshal([]byte(stripFence(reply)), &extraction); err != nil {
		return domain.Extraction{}, fmt.Errorf("failed to parse extraction: %w", err)
	}
	return extraction, nil
}

func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	reply, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: advisePrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (c *Client) complete(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return decoded.Choices[0].Message.Content, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
