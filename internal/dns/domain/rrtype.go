package domain

import (
	"errors"
	"fmt"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA          RRType = 1   // A - IPv4 address
	RRTypeNS         RRType = 2   // NS - Name server
	RRTypeCNAME      RRType = 5   // CNAME - Canonical name
	RRTypeSOA        RRType = 6   // SOA - Start of authority
	RRTypeWKS        RRType = 11  // WKS - Well known service
	RRTypePTR        RRType = 12  // PTR - Pointer
	RRTypeHINFO      RRType = 13  // HINFO - Host information
	RRTypeMX         RRType = 15  // MX - Mail exchange
	RRTypeTXT        RRType = 16  // TXT - Text
	RRTypeRP         RRType = 17  // RP - Responsible person
	RRTypeAAAA       RRType = 28  // AAAA - IPv6 address
	RRTypeSRV        RRType = 33  // SRV - Service
	RRTypeNAPTR      RRType = 35  // NAPTR - Naming authority pointer
	RRTypeCERT       RRType = 37  // CERT - Certificate
	RRTypeDNAME      RRType = 39  // DNAME - Delegation name
	RRTypeDS         RRType = 43  // DS - Delegation signer
	RRTypeSSHFP      RRType = 44  // SSHFP - SSH key fingerprint
	RRTypeIPSECKEY   RRType = 45  // IPSECKEY - IPsec key
	RRTypeRRSIG      RRType = 46  // RRSIG - Resource record signature
	RRTypeNSEC       RRType = 47  // NSEC - Next secure
	RRTypeDNSKEY     RRType = 48  // DNSKEY - DNS key
	RRTypeNSEC3      RRType = 50  // NSEC3 - Next secure v3
	RRTypeNSEC3PARAM RRType = 51  // NSEC3PARAM - NSEC3 parameters
	RRTypeTLSA       RRType = 52  // TLSA - TLS association
	RRTypeCDS        RRType = 59  // CDS - Child delegation signer
	RRTypeSPF        RRType = 99  // SPF - Sender policy framework (RFC 7208)
	RRTypeANY        RRType = 255 // ANY - Any type (query only)
	RRTypeCAA        RRType = 257 // CAA - Certificate authority authorization
)

// ErrUnknownType is returned when a record type mnemonic is not in the table.
var ErrUnknownType = errors.New("unknown record type")

var rrTypeNames = map[RRType]string{
	RRTypeA:          "A",
	RRTypeNS:         "NS",
	RRTypeCNAME:      "CNAME",
	RRTypeSOA:        "SOA",
	RRTypeWKS:        "WKS",
	RRTypePTR:        "PTR",
	RRTypeHINFO:      "HINFO",
	RRTypeMX:         "MX",
	RRTypeTXT:        "TXT",
	RRTypeRP:         "RP",
	RRTypeAAAA:       "AAAA",
	RRTypeSRV:        "SRV",
	RRTypeNAPTR:      "NAPTR",
	RRTypeCERT:       "CERT",
	RRTypeDNAME:      "DNAME",
	RRTypeDS:         "DS",
	RRTypeSSHFP:      "SSHFP",
	RRTypeIPSECKEY:   "IPSECKEY",
	RRTypeRRSIG:      "RRSIG",
	RRTypeNSEC:       "NSEC",
	RRTypeDNSKEY:     "DNSKEY",
	RRTypeNSEC3:      "NSEC3",
	RRTypeNSEC3PARAM: "NSEC3PARAM",
	RRTypeTLSA:       "TLSA",
	RRTypeCDS:        "CDS",
	RRTypeSPF:        "SPF",
	RRTypeANY:        "ANY",
	RRTypeCAA:        "CAA",
}

var rrTypeCodes = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for code, name := range rrTypeNames {
		m[name] = code
	}
	return m
}()

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)" rather than failing,
// since upstream servers may return codes this client does not enumerate.
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
}

// ParseRRType converts a record type mnemonic to its RRType value.
// Matching is case-insensitive. Unknown mnemonics return ErrUnknownType.
func ParseRRType(s string) (RRType, error) {
	if code, ok := rrTypeCodes[strings.ToUpper(s)]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
