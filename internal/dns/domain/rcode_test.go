package domain

import "testing"

func TestRCode_String(t *testing.T) {
	cases := []struct {
		r    RCode
		want string
	}{
		{0, "NOERROR"}, {1, "FORMERR"}, {2, "SERVFAIL"}, {3, "NXDOMAIN"}, {4, "NOTIMP"},
		{5, "REFUSED"}, {6, "YXDOMAIN"}, {7, "YXRRSET"}, {8, "NXRRSET"}, {9, "NOTAUTH"},
		{10, "NOTZONE"}, {16, "BADVERS"}, {17, "BADKEY"}, {18, "BADTIME"}, {19, "BADMODE"},
		{20, "BADNAME"}, {21, "BADALG"}, {22, "BADTRUNC"}, {23, "BADCOOKIE"},
		{11, "UNKNOWN(11)"}, {15, "UNKNOWN(15)"}, {24, "UNKNOWN(24)"}, {999, "UNKNOWN(999)"},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("String(%d) = %v, want %v", tc.r, got, tc.want)
		}
	}
}
