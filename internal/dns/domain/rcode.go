package domain

import "fmt"

// RCode represents a DNS response status code as reported in the Status
// field of a DoH JSON response. See IANA DNS Parameters, RCODEs.
type RCode uint16

// DNS response code constants
const (
	RCodeNoError   RCode = 0  // NOERROR - No error
	RCodeFormErr   RCode = 1  // FORMERR - Format error
	RCodeServFail  RCode = 2  // SERVFAIL - Server failure
	RCodeNXDomain  RCode = 3  // NXDOMAIN - Non-existent domain
	RCodeNotImp    RCode = 4  // NOTIMP - Not implemented (Cloudflare returns this for ANY)
	RCodeRefused   RCode = 5  // REFUSED - Query refused
	RCodeYXDomain  RCode = 6  // YXDOMAIN - Name exists when it should not
	RCodeYXRRSet   RCode = 7  // YXRRSET - RR set exists when it should not
	RCodeNXRRSet   RCode = 8  // NXRRSET - RR set that should exist does not
	RCodeNotAuth   RCode = 9  // NOTAUTH - Server not authoritative for zone
	RCodeNotZone   RCode = 10 // NOTZONE - Name not contained in zone
	RCodeBadVers   RCode = 16 // BADVERS - Bad OPT version
	RCodeBadKey    RCode = 17 // BADKEY - Key not recognized
	RCodeBadTime   RCode = 18 // BADTIME - Signature out of time window
	RCodeBadMode   RCode = 19 // BADMODE - Bad TKEY mode
	RCodeBadName   RCode = 20 // BADNAME - Duplicate key name
	RCodeBadAlg    RCode = 21 // BADALG - Algorithm not supported
	RCodeBadTrunc  RCode = 22 // BADTRUNC - Bad truncation
	RCodeBadCookie RCode = 23 // BADCOOKIE - Bad or missing server cookie
)

// String returns the textual representation of the RCode.
// Unknown codes render as "UNKNOWN(<value>)".
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormErr:
		return "FORMERR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	case RCodeYXDomain:
		return "YXDOMAIN"
	case RCodeYXRRSet:
		return "YXRRSET"
	case RCodeNXRRSet:
		return "NXRRSET"
	case RCodeNotAuth:
		return "NOTAUTH"
	case RCodeNotZone:
		return "NOTZONE"
	case RCodeBadVers:
		return "BADVERS"
	case RCodeBadKey:
		return "BADKEY"
	case RCodeBadTime:
		return "BADTIME"
	case RCodeBadMode:
		return "BADMODE"
	case RCodeBadName:
		return "BADNAME"
	case RCodeBadAlg:
		return "BADALG"
	case RCodeBadTrunc:
		return "BADTRUNC"
	case RCodeBadCookie:
		return "BADCOOKIE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(r))
	}
}
