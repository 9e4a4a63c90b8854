// Package client is a Go client for the HomeNest HTTP API. It feeds the
// listing store and session controller the same way the web client feeds
// its views.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"homenest/listing"
	"homenest/models"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used for authenticated calls. An empty
// token reverts to anonymous access.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Properties fetches listings with the given query applied server-side.
func (c *Client) Properties(ctx context.Context, q listing.QueryState) ([]models.Property, error) {
	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	path := "/properties"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, path, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// LatestProperties fetches the home-page strip of newest listings.
func (c *Client) LatestProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, "/latest-properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (c *Client) Property(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) CreateProperty(ctx context.Context, input models.PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodPost, "/properties", input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, input models.PropertyInput) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodPatch, "/properties/"+url.PathEscape(id), input, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/properties/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Reviews(ctx context.Context, propertyID string) ([]models.Review, error) {
	path := "/reviews"
	if propertyID != "" {
		path += "?propertyId=" + url.QueryEscape(propertyID)
	}
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Fetcher adapts the client into the listing store's refresh function.
func (c *Client) Fetcher() listing.FetchFunc {
	return func(ctx context.Context) ([]models.Property, error) {
		return c.Properties(ctx, listing.DefaultQuery())
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			if payload.Error != "" {
				msg = payload.Error
			} else if payload.Message != "" {
				msg = payload.Message
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
