// Package client is the HTTP client front-ends use to reach the complaint API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grievance-labs/complaintbot/internal/domain"
)

// Client calls the complaint service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the complaint API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Create files a new complaint.
func (c *Client) Create(ctx context.Context, req *domain.CreateComplaintRequest) (*domain.CreateComplaintResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/complaints", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out domain.CreateComplaintResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &out, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, decodeValidationError(resp)
	default:
		return nil, domain.ErrInternal
	}
}

// Get fetches a complaint by ID.
func (c *Client) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/complaints/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out domain.Complaint
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &out, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	default:
		return nil, domain.ErrInternal
	}
}

// decodeValidationError maps the API's 422 payload back into a
// domain.ValidationError. The detail is either a field map or a plain string.
func decodeValidationError(resp *http.Response) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.NewValidationError("request", "invalid request")
	}

	var fields map[string]string
	if err := json.Unmarshal(payload.Detail, &fields); err == nil && len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	var msg string
	if err := json.Unmarshal(payload.Detail, &msg); err == nil && msg != "" {
		return domain.NewValidationError("request", msg)
	}
	return domain.NewValidationError("request", "invalid request")
}
