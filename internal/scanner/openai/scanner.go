package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"metalflow/internal/config"
	"metalflow/internal/domain"
	"metalflow/internal/port"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Scanner implements port.DocumentScanner using the OpenAI Chat
// Completions API.
type Scanner struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewScanner creates an OpenAI-based order scanner from config.
func NewScanner(cfg *config.ScannerConfig) *Scanner {
	return newScanner(cfg, apiURL)
}

// NewScannerWithEndpoint creates a scanner pointing at a custom API
// endpoint (for testing).
func NewScannerWithEndpoint(cfg *config.ScannerConfig, endpoint string) *Scanner {
	return newScanner(cfg, endpoint)
}

func newScanner(cfg *config.ScannerConfig, endpoint string) *Scanner {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Scanner{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *Scanner) Scan(ctx context.Context, input port.ScanInput) (*port.ScanResult, error) {
	if s.apiKey == "" {
		return nil, domain.ErrScannerUnconfigured
	}

	contentBlocks, err := buildContentBlocks(input)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]interface{}{
		"model":                 s.model,
		"max_completion_tokens": 8192,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": contentBlocks,
			},
		},
		"response_format": map[string]interface{}{
			"type": "json_object",
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling openai API: %v", domain.ErrScanFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrScanFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: openai API error (status %d): %s",
			domain.ErrScanFailed, resp.StatusCode, truncate(string(respBody), 500))
	}

	return parseResponse(respBody)
}

func buildContentBlocks(input port.ScanInput) ([]map[string]interface{}, error) {
	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)
	dataURI := fmt.Sprintf("data:%s;base64,%s", input.ContentType, encoded)

	var blocks []map[string]interface{}
	switch input.ContentType {
	case "application/pdf":
		blocks = append(blocks, map[string]interface{}{
			"type": "file",
			"file": map[string]interface{}{
				"filename":  "order.pdf",
				"file_data": dataURI,
			},
		})
	case "image/jpeg", "image/png":
		blocks = append(blocks, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]interface{}{
				"url": dataURI,
			},
		})
	default:
		return nil, fmt.Errorf("%w: unsupported content type for scanning: %s",
			domain.ErrUnsupportedFileType, input.ContentType)
	}

	blocks = append(blocks, map[string]interface{}{
		"type": "text",
		"text": orderScanPrompt,
	})
	return blocks, nil
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte) (*port.ScanResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %v", domain.ErrScanFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response from API: no choices", domain.ErrScanFailed)
	}
	if resp.Choices[0].FinishReason == "length" {
		return nil, fmt.Errorf("%w: output truncated (finish_reason: length)", domain.ErrScanFailed)
	}

	text := stripCodeFences(resp.Choices[0].Message.Content)
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text block in response", domain.ErrScanFailed)
	}

	var result port.ScanResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: parsing extraction JSON: %v (raw: %s)",
			domain.ErrScanFailed, err, truncate(text, 500))
	}
	return &result, nil
}

// stripCodeFences removes an optional markdown fence wrapper, with or
// without a language tag, around the JSON payload.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 && !strings.HasPrefix(trimmed, "{") {
		trimmed = trimmed[i+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
