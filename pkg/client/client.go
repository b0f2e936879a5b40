// Package client is a typed HTTP client for the Markfy REST API. It is the
// transport used by pkg/optimistic, which layers optimistic projections on
// top of these calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Bookmark mirrors the API's bookmark representation.
type Bookmark struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	IsFavorite  bool   `json:"isFavorite"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Pagination mirrors the API's pagination metadata.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// LinkList is one page of bookmarks.
type LinkList struct {
	Data       []Bookmark `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateRequest is the body for creating a bookmark.
type CreateRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	IsFavorite  bool   `json:"isFavorite,omitempty"`
}

// UpdateRequest is a partial update; nil fields are not sent.
type UpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	IsFavorite  *bool   `json:"isFavorite,omitempty"`
}

// ListOptions control listing calls. Zero values are omitted and the server
// applies its defaults.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

// FieldError is one field-level issue from a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is any non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    []FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("markfy: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to a Markfy server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option adjusts client construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListLinks fetches one page of bookmarks.
func (c *Client) ListLinks(ctx context.Context, opts ListOptions) (*LinkList, error) {
	var out LinkList
	if err := c.do(ctx, http.MethodGet, "/api/links"+listQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFavorites fetches one page of favorite bookmarks.
func (c *Client) ListFavorites(ctx context.Context, opts ListOptions) (*LinkList, error) {
	var out LinkList
	if err := c.do(ctx, http.MethodGet, "/api/links/favorites"+listQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLink fetches a single bookmark by id.
func (c *Client) GetLink(ctx context.Context, id string) (*Bookmark, error) {
	var out Bookmark
	if err := c.do(ctx, http.MethodGet, "/api/links/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLink creates a new bookmark.
func (c *Client) CreateLink(ctx context.Context, req CreateRequest) (*Bookmark, error) {
	var out Bookmark
	if err := c.do(ctx, http.MethodPost, "/api/links", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLink applies a partial update to a bookmark.
func (c *Client) UpdateLink(ctx context.Context, id string, req UpdateRequest) (*Bookmark, error) {
	var out Bookmark
	if err := c.do(ctx, http.MethodPatch, "/api/links/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLink deletes a bookmark.
func (c *Client) DeleteLink(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/links/"+url.PathEscape(id), nil, nil)
}

// ToggleFavorite flips a bookmark's favorite flag server-side.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (*Bookmark, error) {
	var out Bookmark
	if err := c.do(ctx, http.MethodPatch, "/api/links/"+url.PathEscape(id)+"/favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var payload struct {
			Error   string       `json:"error"`
			Details []FieldError `json:"details"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Details = payload.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func listQuery(opts ListOptions) string {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.Sort != "" {
		params.Set("sort", opts.Sort)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
