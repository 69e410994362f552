package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding exposes the whole resty API while
// leaving room for application-specific behavior later.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTP client with its own connection
// pool and configuration.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
