package domain

import (
	"errors"
	"testing"
)

func TestRRType_IsValid(t *testing.T) {
	cases := []struct {
		value RRType
		want  bool
	}{
		{1, true}, {2, true}, {5, true}, {6, true}, {11, true}, {12, true}, {13, true},
		{15, true}, {16, true}, {17, true}, {28, true}, {33, true}, {35, true}, {37, true},
		{39, true}, {43, true}, {44, true}, {45, true}, {46, true}, {47, true}, {48, true},
		{50, true}, {51, true}, {52, true}, {59, true}, {99, true}, {255, true}, {257, true},
		{0, false}, {3, false}, {4, false}, {7, false}, {10, false}, {14, false},
		{41, false}, {100, false}, {999, false}, {9999, false},
	}
	for _, tc := range cases {
		if got := tc.value.IsValid(); got != tc.want {
			t.Errorf("IsValid(%d) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestRRType_String(t *testing.T) {
	cases := []struct {
		t    RRType
		want string
	}{
		{1, "A"}, {2, "NS"}, {5, "CNAME"}, {6, "SOA"}, {11, "WKS"}, {12, "PTR"},
		{13, "HINFO"}, {15, "MX"}, {16, "TXT"}, {17, "RP"}, {28, "AAAA"}, {33, "SRV"},
		{35, "NAPTR"}, {37, "CERT"}, {39, "DNAME"}, {43, "DS"}, {44, "SSHFP"},
		{45, "IPSECKEY"}, {46, "RRSIG"}, {47, "NSEC"}, {48, "DNSKEY"}, {50, "NSEC3"},
		{51, "NSEC3PARAM"}, {52, "TLSA"}, {59, "CDS"}, {99, "SPF"}, {255, "ANY"}, {257, "CAA"},
		{0, "UNKNOWN(0)"}, {3, "UNKNOWN(3)"}, {9999, "UNKNOWN(9999)"},
	}
	for _, tc := range cases {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestParseRRType(t *testing.T) {
	cases := []struct {
		input string
		want  RRType
	}{
		{"A", 1}, {"NS", 2}, {"CNAME", 5}, {"SOA", 6}, {"PTR", 12}, {"MX", 15},
		{"TXT", 16}, {"AAAA", 28}, {"SRV", 33}, {"ANY", 255}, {"CAA", 257},
		// case-insensitive
		{"a", 1}, {"mx", 15}, {"Txt", 16}, {"aaaa", 28},
	}
	for _, tc := range cases {
		got, err := ParseRRType(tc.input)
		if err != nil {
			t.Errorf("ParseRRType(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRRType(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseRRType_Unknown(t *testing.T) {
	for _, input := range []string{"", "foo", "UNKNOWN", "UNKNOWN(15)", "A "} {
		if _, err := ParseRRType(input); !errors.Is(err, ErrUnknownType) {
			t.Errorf("ParseRRType(%q) error = %v, want ErrUnknownType", input, err)
		}
	}
}

// The mnemonic/code mapping must be a bijection for all supported types.
func TestRRType_RoundTrip(t *testing.T) {
	for code, name := range rrTypeNames {
		if got := code.String(); got != name {
			t.Errorf("String(%d) = %q, want %q", code, got, name)
		}
		parsed, err := ParseRRType(name)
		if err != nil {
			t.Errorf("ParseRRType(%q) unexpected error: %v", name, err)
			continue
		}
		if parsed != code {
			t.Errorf("ParseRRType(String(%d)) = %d, want %d", code, parsed, code)
		}
	}
	for name, code := range rrTypeCodes {
		if got := code.String(); got != name {
			t.Errorf("String(ParseRRType(%q)) = %q, want %q", name, got, name)
		}
	}
}
