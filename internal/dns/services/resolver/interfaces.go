package resolver

import (
	"net/http"

	"github.com/haukened/doh-dns/internal/dns/domain"
)

// HTTPClient is the external transport capability: send an HTTPS GET and
// get back a status code and body bytes, or a transport error. Deadlines
// and cancellation travel on the request's context.
type HTTPClient interface {
	Do(req *http.Request) (status int, body []byte, err error)
}

// Codec builds provider-specific requests and decodes the provider's
// JSON response schema into the normalized domain model.
type Codec interface {
	BuildRequest(server domain.Server, query domain.Query) (*http.Request, error)
	DecodeResponse(body []byte) (domain.Result, error)
}
