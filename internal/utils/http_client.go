package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}

// NewHTTPClientWithTimeout returns a client whose requests are bounded by
// timeout. A non-positive timeout leaves requests unbounded.
func NewHTTPClientWithTimeout(timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// UserAgent is sent with every outgoing request.
const UserAgent = "go-clip-keeper"
