package devoteeservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP client for the devotee registration service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a devotee service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDevotee fetches a devotee profile by ID
func (c *Client) GetDevotee(ctx context.Context, devoteeID int64) (*Devotee, error) {
	url := fmt.Sprintf("%s/internal/devotees/%d", c.baseURL, devoteeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrDevoteeNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("GetDevotee: unexpected status %d from devotee service: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrInvalidResponse, resp.StatusCode)
	}

	var devotee Devotee
	if err := json.NewDecoder(resp.Body).Decode(&devotee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode body: %v", ErrInvalidResponse, err)
	}

	return &devotee, nil
}
