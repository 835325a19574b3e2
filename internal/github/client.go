// Package github fetches and caches the public repository listing for the
// configured account.
package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL   = "https://api.github.com"
	readmePreviewLen = 400
)

// ErrRemoteUnavailable marks a transport failure or non-2xx status on the
// repository listing call.
var ErrRemoteUnavailable = errors.New("github unavailable")

// Client issues requests against the GitHub REST API.
type Client struct {
	Username string
	Token    string // empty means anonymous (lower rate limit)
	BaseURL  string
	HTTP     *http.Client
}

func NewClient(username, token string) *Client {
	return &Client{
		Username: username,
		Token:    token,
		BaseURL:  defaultBaseURL,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos fetches up to 100 repositories for the configured user, most
// recently updated first. Any transport error or non-2xx status is reported
// as ErrRemoteUnavailable.
func (c *Client) ListRepos(ctx context.Context) ([]gjson.Result, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.BaseURL, c.Username)

	body, status, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: listing returned status %d", ErrRemoteUnavailable, status)
	}

	return gjson.ParseBytes(body).Array(), nil
}

// ReadmePreview returns the first 400 characters of the repository's readme,
// or "" when the readme is missing or the request fails. It never errors;
// a missing preview only degrades the project card.
func (c *Client) ReadmePreview(ctx context.Context, repo string) string {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.BaseURL, c.Username, repo)

	// vnd.github.raw returns the readme as text; the default JSON variant
	// would wrap it in base64.
	body, status, err := c.get(ctx, url, "application/vnd.github.raw")
	if err != nil || status != http.StatusOK {
		return ""
	}

	runes := []rune(string(body))
	if len(runes) > readmePreviewLen {
		runes = runes[:readmePreviewLen]
	}
	return string(runes)
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return doc.Bytes(), resp.StatusCode, nil
}
