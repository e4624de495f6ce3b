package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"unicode/utf8"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/sirupsen/logrus"
)

const (
	anthropicAPI     = "https://api.anthropic.com/v1/messages"
	defaultMaxTokens = 8192
)

// Claude calls the Anthropic Messages API.
type Claude struct {
	APIKey     string
	Model      string
	MaxTokens  int
	Endpoint   string
	HTTPClient *http.Client
}

// NewClaude creates a client using the ANTHROPIC_API_KEY env var.
func NewClaude(model string, maxTokens int) (*Claude, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Claude{
		APIKey:     key,
		Model:      model,
		MaxTokens:  maxTokens,
		Endpoint:   anthropicAPI,
		HTTPClient: &http.Client{},
	}, nil
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []apiContentBlock `json:"content"`
	Usage   Usage             `json:"usage"`
	Error   *apiError         `json:"error,omitempty"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage reports token counts for one request.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (c *Claude) Name() string { return BackendClaude }

// Extract asks Claude for the locations in a text.
func (c *Claude) Extract(ctx context.Context, title, text string) ([]model.ExtractedLocation, error) {
	if !utf8.ValidString(text) {
		return nil, model.InvalidInput("text is not valid UTF-8")
	}
	raw, usage, err := c.complete(ctx, title, text)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"title":  title,
		"input":  usage.InputTokens,
		"output": usage.OutputTokens,
	}).Debug("extraction complete")

	resp, err := ParseExtraction(raw)
	if err != nil {
		return nil, err
	}
	for i := range resp.Locations {
		resp.Locations[i].Type = normalizeType(resp.Locations[i].Type)
	}
	return resp.Locations, nil
}

func (c *Claude) ExtractLocations(ctx context.Context, text string) ([]string, error) {
	locs, err := c.Extract(ctx, "", text)
	if err != nil {
		return nil, err
	}
	return Names(locs), nil
}

// complete sends the prompt and returns the raw text response.
func (c *Claude) complete(ctx context.Context, title, text string) (string, Usage, error) {
	reqBody := apiRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		System:    systemPrompt,
		Messages: []apiMessage{
			{Role: "user", Content: buildExtractionPrompt(title, text)},
			{Role: "assistant", Content: "{"},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", Usage{}, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = anthropicAPI
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", Usage{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", Usage{}, model.Unavailable("anthropic api", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", Usage{}, fmt.Errorf("reading response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", Usage{}, fmt.Errorf("parsing response: %w", err)
	}

	if apiResp.Error != nil {
		return "", Usage{}, fmt.Errorf("API error (%s): %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", Usage{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if len(apiResp.Content) == 0 {
		return "", Usage{}, fmt.Errorf("empty response from API")
	}

	// Prepend the "{" from the assistant prefill to reconstruct full JSON
	return "{" + apiResp.Content[0].Text, apiResp.Usage, nil
}
