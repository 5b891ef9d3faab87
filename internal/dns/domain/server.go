package domain

import (
	"fmt"
	"net/url"
	"time"
)

// TypeStyle selects how a server expects the record type query parameter
// to be encoded. Google and Cloudflare both accept either form, but their
// JSON APIs document different canonical shapes, so the descriptor owns
// the choice.
type TypeStyle uint8

const (
	// TypeStyleMnemonic sends the record type as its mnemonic (e.g. "MX").
	TypeStyleMnemonic TypeStyle = iota
	// TypeStyleNumeric sends the record type as its decimal code (e.g. "15").
	TypeStyleNumeric
)

// Server describes one DoH JSON endpoint. A resolver holds an ordered
// slice of these; the order is fallback priority, not load balancing.
// Servers are immutable once constructed.
type Server struct {
	// Name is the display name used in logs and error causes.
	Name string
	// Endpoint is the base HTTPS URL of the JSON API (no query string).
	Endpoint string
	// Timeout bounds a single attempt against this server.
	Timeout time.Duration
	// TypeStyle selects mnemonic or numeric type query parameters.
	TypeStyle TypeStyle
	// RequiresAccept is true when the endpoint requires an
	// "Accept: application/dns-json" request header.
	RequiresAccept bool
}

// NewServer constructs a Server and validates its fields.
func NewServer(name, endpoint string, timeout time.Duration, style TypeStyle, requiresAccept bool) (Server, error) {
	s := Server{
		Name:           name,
		Endpoint:       endpoint,
		Timeout:        timeout,
		TypeStyle:      style,
		RequiresAccept: requiresAccept,
	}
	if err := s.Validate(); err != nil {
		return Server{}, err
	}
	return s, nil
}

// Validate checks whether the Server fields describe a usable endpoint.
func (s Server) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("server name must not be empty")
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", s.Endpoint, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("endpoint must be an https URL, got %q", s.Endpoint)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %v", s.Timeout)
	}
	return nil
}

// Google returns a descriptor for Google's public DoH JSON endpoint with
// the given per-attempt timeout.
func Google(timeout time.Duration) Server {
	return Server{
		Name:      "google",
		Endpoint:  "https://dns.google/resolve",
		Timeout:   timeout,
		TypeStyle: TypeStyleNumeric,
	}
}

// Cloudflare returns a descriptor for Cloudflare's 1.1.1.1 DoH JSON
// endpoint. Cloudflare refuses ANY queries with NOTIMP; that limitation
// surfaces through the normal response path.
func Cloudflare(timeout time.Duration) Server {
	return Server{
		Name:           "cloudflare",
		Endpoint:       "https://1.1.1.1/dns-query",
		Timeout:        timeout,
		TypeStyle:      TypeStyleMnemonic,
		RequiresAccept: true,
	}
}

// CloudflareSecondary returns a descriptor for Cloudflare's 1.0.0.1
// endpoint, otherwise identical to Cloudflare.
func CloudflareSecondary(timeout time.Duration) Server {
	return Server{
		Name:           "cloudflare2",
		Endpoint:       "https://1.0.0.1/dns-query",
		Timeout:        timeout,
		TypeStyle:      TypeStyleMnemonic,
		RequiresAccept: true,
	}
}
