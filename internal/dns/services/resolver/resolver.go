// Package resolver implements the DoH resolver client: it walks an
// ordered fallback chain of DoH JSON servers, one attempt per server
// under that server's own timeout, and returns the first successfully
// decoded response.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/haukened/doh-dns/internal/dns/common/log"
	"github.com/haukened/doh-dns/internal/dns/domain"
	"github.com/haukened/doh-dns/internal/dns/gateways/dohjson"
	"github.com/haukened/doh-dns/internal/dns/gateways/transport"
)

// Error message constants for consistent error handling
const (
	errBuildRequest = "build request: %w"
	errTransport    = "transport: %w"
	errHTTPStatus   = "unexpected HTTP status %d"
	errDecodeFailed = "decode response: %w"
)

// Default fallback chain timeouts: Google is the fast primary,
// Cloudflare the slower fallback.
const (
	defaultGoogleTimeout     = 3 * time.Second
	defaultCloudflareTimeout = 10 * time.Second
)

// Resolver resolves DNS queries against an ordered chain of DoH servers.
// Configuration is read-only after construction, so a single Resolver is
// safe for concurrent use; independent Resolve calls share nothing.
type Resolver struct {
	servers []domain.Server
	client  HTTPClient
	codec   Codec
	logger  log.Logger
}

// Options defines configuration parameters for the resolver.
// Servers is required and ordered by fallback priority. Client, Codec,
// and Logger are optional injection points; defaults are a pooled HTTPS
// client, the DoH JSON codec, and a no-op logger.
type Options struct {
	Servers []domain.Server
	Client  HTTPClient
	Codec   Codec
	Logger  log.Logger
}

// New creates a resolver with the specified options. An empty server
// list is a construction-time error, never a resolution-time one.
func New(opts Options) (*Resolver, error) {
	if len(opts.Servers) == 0 {
		return nil, ErrNoServers
	}
	for _, s := range opts.Servers {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid server %q: %w", s.Name, err)
		}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.Codec == nil {
		opts.Codec = dohjson.NewCodec(opts.Logger)
	}
	if opts.Client == nil {
		client, err := transport.NewHTTPSClient(transport.Options{})
		if err != nil {
			return nil, err
		}
		opts.Client = client
	}

	servers := make([]domain.Server, len(opts.Servers))
	copy(servers, opts.Servers)

	return &Resolver{
		servers: servers,
		client:  opts.Client,
		codec:   opts.Codec,
		logger:  opts.Logger,
	}, nil
}

// Default creates a resolver with the standard fallback chain: Google
// with a 3 second timeout, then Cloudflare with 10 seconds.
func Default() (*Resolver, error) {
	return New(Options{
		Servers: []domain.Server{
			domain.Google(defaultGoogleTimeout),
			domain.Cloudflare(defaultCloudflareTimeout),
		},
	})
}

// Resolve resolves the given name and record type. Servers are tried
// strictly left to right, once each: any attempt failure (transport
// error, timeout, non-2xx status, malformed body) logs the cause and
// advances to the next server. When the chain is exhausted it returns
// AllServersFailedError with the causes in chain order. A non-NOERROR
// DNS status from a server that answered over HTTP is a successful
// result, not an error.
func (r *Resolver) Resolve(ctx context.Context, name string, rrtype domain.RRType) (domain.Result, error) {
	query, err := domain.NewQuery(name, rrtype)
	if err != nil {
		return domain.Result{}, err
	}

	attempts := make([]*AttemptError, 0, len(r.servers))
	for _, server := range r.servers {
		result, err := r.attempt(ctx, server, query)
		if err == nil {
			return result, nil
		}
		// A canceled caller context means the chain was abandoned, not
		// exhausted. Return the context error as-is.
		if ctx.Err() != nil {
			return domain.Result{}, ctx.Err()
		}
		r.logger.Warn(map[string]any{
			"server": server.Name,
			"name":   query.Name,
			"type":   query.Type.String(),
			"cause":  err.Error(),
		}, "DoH server attempt failed")
		attempts = append(attempts, &AttemptError{Server: server.Name, Cause: err})
	}
	return domain.Result{}, &AllServersFailedError{attempts: attempts}
}

// attempt performs a single request against a single server, bounded by
// that server's timeout. Nothing from an abandoned attempt outlives the
// child context.
func (r *Resolver) attempt(ctx context.Context, server domain.Server, query domain.Query) (domain.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, server.Timeout)
	defer cancel()

	req, err := r.codec.BuildRequest(server, query)
	if err != nil {
		return domain.Result{}, fmt.Errorf(errBuildRequest, err)
	}
	req = req.WithContext(ctx)

	status, body, err := r.client.Do(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf(errTransport, err)
	}
	if status < 200 || status > 299 {
		return domain.Result{}, fmt.Errorf(errHTTPStatus, status)
	}

	result, err := r.codec.DecodeResponse(body)
	if err != nil {
		return domain.Result{}, fmt.Errorf(errDecodeFailed, err)
	}
	return result, nil
}
