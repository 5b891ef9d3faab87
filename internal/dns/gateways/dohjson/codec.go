// Package dohjson implements the DoH JSON wire contract: building query
// URLs for a server descriptor and decoding the provider's JSON response
// schema into the normalized domain model.
package dohjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/haukened/doh-dns/internal/dns/common/log"
	"github.com/haukened/doh-dns/internal/dns/domain"
)

// acceptHeader is the media type some providers require on requests.
const acceptHeader = "application/dns-json"

// ErrMalformed indicates a response body that does not match the DoH
// JSON schema. The resolver treats it like a transport failure and
// advances the fallback chain.
var ErrMalformed = errors.New("malformed DoH response")

// Codec builds DoH JSON requests and decodes DoH JSON responses.
type Codec struct {
	logger log.Logger
}

// NewCodec creates a Codec. A nil logger gets the no-op sink.
func NewCodec(logger log.Logger) *Codec {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Codec{logger: logger}
}

// BuildRequest produces the HTTPS GET request for one query against one
// server. It is a pure function of its inputs: the name goes through
// verbatim, and the type parameter is encoded in whichever style the
// descriptor declares. Types outside the known table are always sent
// numerically since they have no mnemonic.
func (c *Codec) BuildRequest(server domain.Server, query domain.Query) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, server.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", server.Name, err)
	}

	params := url.Values{}
	params.Set("name", query.Name)
	if server.TypeStyle == domain.TypeStyleMnemonic && query.Type.IsValid() {
		params.Set("type", query.Type.String())
	} else {
		params.Set("type", strconv.FormatUint(uint64(query.Type), 10))
	}
	req.URL.RawQuery = params.Encode()

	if server.RequiresAccept {
		req.Header.Set("Accept", acceptHeader)
	}
	return req, nil
}

// dohResponse mirrors the provider JSON schema. Status is required;
// Answer is optional and absent means zero records. Answer entries stay
// raw so one malformed entry cannot poison its siblings.
type dohResponse struct {
	Status  *int              `json:"Status"`
	Comment string            `json:"Comment"`
	Answer  []json.RawMessage `json:"Answer"`
}

// dohAnswer is one answer entry. Pointer fields distinguish a missing
// required field from a zero value (a TTL of 0 is legitimate).
type dohAnswer struct {
	Name *string `json:"name"`
	Type *uint16 `json:"type"`
	TTL  *uint32 `json:"TTL"`
	Data *string `json:"data"`
}

// DecodeResponse parses a DoH JSON body into a Result. Answer entries
// missing a required field are dropped individually and logged; the
// decode fails with ErrMalformed only when the body is not valid JSON,
// the Status field is absent, or a non-empty answer list yields zero
// usable entries. Answer order is preserved exactly, and unknown numeric
// types pass through so ANY queries keep everything the server returned.
func (c *Codec) DecodeResponse(body []byte) (domain.Result, error) {
	var raw dohResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.Result{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Status == nil {
		return domain.Result{}, fmt.Errorf("%w: missing Status field", ErrMalformed)
	}

	answers := make([]domain.Answer, 0, len(raw.Answer))
	for i, entry := range raw.Answer {
		var a dohAnswer
		if err := json.Unmarshal(entry, &a); err != nil {
			c.logger.Debug(map[string]any{
				"index": i,
				"entry": string(entry),
				"error": err.Error(),
			}, "Dropping undecodable answer entry")
			continue
		}
		if a.Name == nil || a.Type == nil || a.TTL == nil || a.Data == nil {
			c.logger.Debug(map[string]any{
				"index": i,
				"entry": string(entry),
			}, "Dropping answer entry with missing fields")
			continue
		}
		answers = append(answers, domain.Answer{
			Name: *a.Name,
			Type: domain.RRType(*a.Type),
			TTL:  *a.TTL,
			Data: *a.Data,
		})
	}

	if len(raw.Answer) > 0 && len(answers) == 0 {
		return domain.Result{}, fmt.Errorf("%w: no usable answer entries", ErrMalformed)
	}

	return domain.Result{
		Status:  domain.RCode(*raw.Status),
		Answers: answers,
		Comment: raw.Comment,
	}, nil
}
