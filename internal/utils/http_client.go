package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every outgoing request unless overridden.
const DefaultUserAgent = "go-workers-bot"

// HTTPClient embeds *resty.Client so adapters can use the full resty API
// while sharing one place for the defaults applied to every remote call.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption tweaks the client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request. Zero keeps resty's default of no timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithUserAgent replaces DefaultUserAgent.
func WithUserAgent(agent string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", agent)
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetHeader(key, value)
	}
}

// NewHTTPClient returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient(
//	    utils.WithBaseURL("https://api.cloudflare.com/client/v4"),
//	    utils.WithTimeout(30*time.Second),
//	)
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", DefaultUserAgent)
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
