// Package groq provides the client for the Groq chat completions API.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Ralphkenny/AI-Content-Generator/internal/config"
	"github.com/Ralphkenny/AI-Content-Generator/internal/logging"
)

// FallbackContent is returned when a 200 response carries no generated text.
const FallbackContent = "No content returned."

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

// Client sends chat completion requests to the Groq API.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a Client from the injected configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.APIURL,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout, // Upstream request timeout
		},
	}
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

// message is a single conversation turn.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse holds the fields read from a successful response.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message message `json:"message"`
}

// UpstreamError is returned when the API answers with a non-200 status. It
// carries the verbatim status code and raw response body so callers can pass
// both through to the invoking platform.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("groq: request failed with status %d", e.StatusCode)
}

// Generate sends the keyword as a single user message and returns the
// generated text. A non-200 answer is returned as *UpstreamError; any other
// failure is a transport-level error.
func (c *Client) Generate(ctx context.Context, keyword string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("groq: api key not set")
	}

	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: keyword}},
	})
	if err != nil {
		return "", fmt.Errorf("groq: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("groq: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq: sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("groq: reading response: %w", err)
	}

	// Diagnostic line with the upstream status and raw body, emitted before
	// branching on success/failure.
	log.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"response_body": string(body),
	}).Info("groq response received")

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("groq: decoding response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return FallbackContent, nil
	}
	return out.Choices[0].Message.Content, nil
}
