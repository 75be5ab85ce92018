package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps a resty client preconfigured for JSON APIs.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client for baseURL. A zero timeout leaves resty's
// default (none) in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
