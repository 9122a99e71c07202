package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the whole resty API stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL that sends and accepts
// JSON. A zero timeout leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
