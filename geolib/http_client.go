package geolib

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultHTTPTimeout is a timeout of a single request to provider.
	DefaultHTTPTimeout = 5 * time.Second

	// DefaultUserAgent is a generic browser user agent. Some free
	// services answer differently to unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_2) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/65.0.3325.162 Safari/537.36"
)

type httpClient struct {
	userAgent string
	client    *http.Client
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			flushResponse(resp.Body)
		}

		return nil, NewTransportError("cannot send a request", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		flushResponse(resp.Body)

		return nil, NewTransportError("",
			fmt.Errorf("netloc has responded with %s", resp.Status))
	}

	return resp, nil
}

func flushResponse(body io.ReadCloser) {
	io.Copy(io.Discard, body) // nolint: errcheck
	body.Close()
}

// NewHTTPClient prepares a new HTTP client which sets a default user
// agent (if request has none) and converts failures and non-2xx
// responses into transport errors.
//
// If client has no timeout, DefaultHTTPTimeout is used. If userAgent
// is empty, DefaultUserAgent is used.
func NewHTTPClient(client *http.Client, userAgent string) HTTPClient {
	if client == nil {
		client = &http.Client{}
	}

	if client.Timeout == 0 {
		client.Timeout = DefaultHTTPTimeout
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return httpClient{
		userAgent: userAgent,
		client:    client,
	}
}
