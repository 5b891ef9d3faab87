package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/haukened/doh-dns/internal/dns/domain"
)

// TestE2E_GmailMX resolves gmail.com MX against the real default chain.
// Needs outbound HTTPS, so it only runs outside short mode.
func TestE2E_GmailMX(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}

	r, err := Default()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := r.Resolve(ctx, "gmail.com", domain.RRTypeMX)
	require.NoError(t, err)
	require.Equal(t, domain.RCodeNoError, result.Status)
	require.True(t, result.HasAnswers())

	found := false
	for _, a := range result.Answers {
		if a.Type == domain.RRTypeMX {
			found = true
			// trailing dot comes back verbatim from the server
			require.Equal(t, "gmail.com.", a.Name)
		}
	}
	require.True(t, found, "expected at least one MX answer")
}
