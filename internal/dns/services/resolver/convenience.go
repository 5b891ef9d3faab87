package resolver

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/haukened/doh-dns/internal/dns/domain"
)

// ResolveType resolves the given name for a record type mnemonic
// (case-insensitive). Unknown mnemonics return domain.ErrUnknownType
// immediately, without touching the network.
func (r *Resolver) ResolveType(ctx context.Context, name, rrtype string) ([]domain.Answer, error) {
	t, err := domain.ParseRRType(rrtype)
	if err != nil {
		return nil, err
	}
	return r.resolveFiltered(ctx, name, t)
}

// ResolveA resolves IPv4 host address records.
func (r *Resolver) ResolveA(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeA)
}

// ResolveAAAA resolves IPv6 host address records.
func (r *Resolver) ResolveAAAA(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeAAAA)
}

// ResolveNS resolves authoritative name server records.
func (r *Resolver) ResolveNS(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeNS)
}

// ResolveCNAME resolves canonical name records.
func (r *Resolver) ResolveCNAME(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeCNAME)
}

// ResolveSOA resolves start of authority records.
func (r *Resolver) ResolveSOA(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeSOA)
}

// ResolvePTR resolves domain name pointer records.
func (r *Resolver) ResolvePTR(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypePTR)
}

// ResolveMX resolves mail exchange records. Data keeps the provider's
// "priority host" form; use ResolveMXSorted for priority ordering.
func (r *Resolver) ResolveMX(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeMX)
}

// ResolveTXT resolves text records.
func (r *Resolver) ResolveTXT(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeTXT)
}

// ResolveSRV resolves service selection records.
func (r *Resolver) ResolveSRV(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeSRV)
}

// ResolveCAA resolves certificate authority authorization records.
func (r *Resolver) ResolveCAA(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeCAA)
}

// ResolveANY queries all record types. Cloudflare answers ANY with
// NOTIMP; use a Google server for this.
func (r *Resolver) ResolveANY(ctx context.Context, name string) ([]domain.Answer, error) {
	return r.resolveFiltered(ctx, name, domain.RRTypeANY)
}

// ResolveMXSorted resolves MX records ordered by priority, with the
// priority stripped from the data. Entries whose data is not in
// "priority host" form are skipped.
func (r *Resolver) ResolveMXSorted(ctx context.Context, name string) ([]domain.Answer, error) {
	answers, err := r.ResolveMX(ctx, name)
	if err != nil {
		return nil, err
	}

	type prioritized struct {
		answer   domain.Answer
		priority uint64
	}
	mxs := make([]prioritized, 0, len(answers))
	for _, a := range answers {
		if a.Type != domain.RRTypeMX {
			continue
		}
		parts := strings.Fields(a.Data)
		if len(parts) < 2 {
			continue
		}
		priority, err := strconv.ParseUint(parts[0], 10, 16)
		if err != nil {
			continue
		}
		a.Data = parts[1]
		mxs = append(mxs, prioritized{answer: a, priority: priority})
	}
	sort.SliceStable(mxs, func(i, j int) bool {
		return mxs[i].priority < mxs[j].priority
	})

	sorted := make([]domain.Answer, len(mxs))
	for i, mx := range mxs {
		sorted[i] = mx.answer
	}
	return sorted, nil
}

// resolveFiltered resolves and keeps only answers of the requested type.
// ANY keeps everything, and CNAME chain entries are kept for A/AAAA
// queries since providers return the chain inline.
func (r *Resolver) resolveFiltered(ctx context.Context, name string, rrtype domain.RRType) ([]domain.Answer, error) {
	result, err := r.Resolve(ctx, name, rrtype)
	if err != nil {
		return nil, err
	}

	answers := make([]domain.Answer, 0, len(result.Answers))
	for _, a := range result.Answers {
		if a.Type == rrtype || rrtype == domain.RRTypeANY || allowCNAME(a, rrtype) {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

// allowCNAME reports whether a CNAME chain entry should be kept for the
// requested type.
func allowCNAME(a domain.Answer, requested domain.RRType) bool {
	if requested == domain.RRTypeA || requested == domain.RRTypeAAAA {
		return a.Type == domain.RRTypeCNAME
	}
	return false
}
