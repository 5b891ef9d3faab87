package domain

import "fmt"

// Query represents a single DNS question to resolve over DoH.
// The name is sent to the server verbatim; label-length rules are the
// server's to enforce.
type Query struct {
	Name string
	Type RRType
}

// NewQuery constructs a Query and validates its fields.
func NewQuery(name string, rrtype RRType) (Query, error) {
	q := Query{
		Name: name,
		Type: rrtype,
	}
	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Validate checks whether the Query fields are structurally valid.
// Numeric types outside the known table are allowed so callers can query
// codes this client does not enumerate.
func (q Query) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("query name must not be empty")
	}
	return nil
}
