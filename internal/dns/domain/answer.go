package domain

// Answer is a single record from a DoH JSON response, normalized from the
// provider's `{name, type, TTL, data}` answer entry. Names and TTLs are
// kept exactly as the server returned them: trailing dots are preserved
// and TTLs are not clamped or aged.
type Answer struct {
	Name string
	Type RRType
	TTL  uint32
	Data string
}
