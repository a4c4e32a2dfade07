package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(0)
//	resp, err := client.R().SetBody(envelope).Post("")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// A positive timeout bounds every request; zero keeps the transport default
// (no client-side timeout). Retries stay disabled: a failed JSON-RPC call is
// reported to the caller as-is.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().SetRetryCount(0)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
