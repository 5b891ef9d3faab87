// Package transport provides the HTTPS GET capability the resolver core
// consumes. It owns connection pooling and TLS; everything above it only
// sees a status code and body bytes, or a transport error.
package transport

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// Error message constants for consistent error handling
const (
	errRequestFailed = "request failed: %w"
	errReadBody      = "read body: %w"
	errConfigureHTTP = "configure HTTP/2 transport: %w"
)

// maxResponseBytes caps how much of a DoH response body is read.
// Provider JSON responses are tiny; anything near this is garbage.
const maxResponseBytes = 1 << 20

// Options defines configuration parameters for the HTTPS client.
// RoundTripper can be injected for testing; when nil a pooled
// HTTP/2-capable transport is built.
type Options struct {
	RoundTripper http.RoundTripper
}

// HTTPSClient performs DoH GET requests over a shared, pooled client.
// Per-attempt deadlines come from the request context, not from here.
type HTTPSClient struct {
	client *http.Client
}

// NewHTTPSClient creates an HTTPS client with the specified options.
func NewHTTPSClient(opts Options) (*HTTPSClient, error) {
	rt := opts.RoundTripper
	if rt == nil {
		t := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			MaxIdleConns:        16,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}
		if err := http2.ConfigureTransport(t); err != nil {
			return nil, fmt.Errorf(errConfigureHTTP, err)
		}
		rt = t
	}
	return &HTTPSClient{
		client: &http.Client{Transport: rt},
	}, nil
}

// Do sends the request and returns the HTTP status code and body bytes.
// Timeouts and cancellation are driven by the request's context; a fired
// deadline surfaces as a transport error like any other.
func (c *HTTPSClient) Do(req *http.Request) (int, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf(errRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf(errReadBody, err)
	}
	return resp.StatusCode, body, nil
}
