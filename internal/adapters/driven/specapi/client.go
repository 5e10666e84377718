// Package specapi provides extraction and chat adapters backed by the
// specification extraction HTTP service.
package specapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/voltaic-labs/cellspec-cli/internal/core/domain"
	"github.com/voltaic-labs/cellspec-cli/internal/core/ports/driven"
	"github.com/voltaic-labs/cellspec-cli/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.Extractor  = (*Client)(nil)
	_ driven.ChatClient = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL           = "http://localhost:8000"
	DefaultTimeout           = 120 * time.Second
	DefaultRequestsPerSecond = 2
)

// Config holds configuration for the extraction service client.
type Config struct {
	// BaseURL is the extraction API base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s). Extraction runs
	// a full document analysis, so this is deliberately generous.
	Timeout time.Duration

	// RequestsPerSecond caps the request rate against the service
	// (default: 2).
	RequestsPerSecond float64
}

// Client talks to the extraction service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// chatRequest is the /chat request format.
type chatRequest struct {
	FileID  string `json:"file_id"`
	Message string `json:"message"`
}

// chatResponse is the /chat response format.
type chatResponse struct {
	Response string `json:"response"`
}

// NewClient creates a new extraction service client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// ProcessDocument uploads the file and returns the decoded extraction
// result. A non-2xx status or transport failure is reported as an
// extraction failure; a 2xx body without a usable specifications payload
// is reported as a malformed response.
func (c *Client) ProcessDocument(ctx context.Context, filename string, file io.Reader) (*driven.ExtractionResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("process document: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/process-document",
		&body,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("%w: status %d", domain.ErrExtractionFailed, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrExtractionFailed, resp.StatusCode, string(respBody))
	}

	result, err := decodeExtractionResponse(resp.Body)
	if err != nil {
		logger.Warn("specapi: malformed response for %s: %v", filename, err)
		return nil, err
	}
	return result, nil
}

// SendMessage asks the service a follow-up question about a processed file.
func (c *Client) SendMessage(ctx context.Context, fileID, message string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	jsonBody, err := json.Marshal(chatRequest{FileID: fileID, Message: message})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("chat error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("chat error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return chatResp.Response, nil
}
