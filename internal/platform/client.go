package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser fetches a user (teacher, student or admin) by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.get(ctx, fmt.Sprintf("/internal/users/%s", id), ErrUserNotFound, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetSubject fetches a subject by id.
func (c *Client) GetSubject(ctx context.Context, id string) (*Subject, error) {
	var s Subject
	if err := c.get(ctx, fmt.Sprintf("/internal/subjects/%s", id), ErrSubjectNotFound, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) get(ctx context.Context, path string, notFound error, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build platform request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("platform service request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return notFound
	default:
		reason := extractErrorMessage(resp.Body)
		c.log.Error("platform service returned an error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("reason", reason),
		)
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, reason)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

const genericErrorMessage = "request rejected by the platform service"

// extractErrorMessage pulls the human-readable reason out of a platform error
// payload. The platform answers either {"message": "..."} or
// {"messages": ["...", ...]}; anything else falls back to a generic string.
func extractErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return genericErrorMessage
	}

	var payload struct {
		Message  string   `json:"message"`
		Messages []string `json:"messages"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return genericErrorMessage
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Messages) > 0 {
		return strings.Join(payload.Messages, "; ")
	}
	return genericErrorMessage
}
