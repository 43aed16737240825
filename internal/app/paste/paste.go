package paste

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client defines the remote paste service used by the share wrapper.
type Client interface {
	// Publish uploads body and returns the service's response body.
	Publish(body []byte) (string, error)
}

// HTTPClient publishes text to a paste service over plain HTTP.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a paste client for the given endpoint.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Publish POSTs body to the paste endpoint. Any non-2xx status is an error.
func (c *HTTPClient) Publish(body []byte) (string, error) {
	resp, err := c.client.Post(c.endpoint, "text/plain; charset=utf-8", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("paste request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("paste service returned status %v", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read paste response: %w", err)
	}

	return string(respBody), nil
}
