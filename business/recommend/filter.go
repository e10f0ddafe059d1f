package recommend

import (
	"slices"
	"strings"

	"beaconia/domain"
)

// costTiers lists, per budget, every cost tier the budget unlocks.
var costTiers = map[string][]string{
	domain.CostFree:   {domain.CostFree},
	domain.CostLow:    {domain.CostFree, domain.CostLow},
	domain.CostMedium: {domain.CostFree, domain.CostLow, domain.CostMedium},
}

// CostTiers returns the inclusive tier set for a budget. Unknown budgets
// unlock nothing.
func CostTiers(budget string) []string {
	tiers := costTiers[budget]
	out := make([]string, len(tiers))
	copy(out, tiers)
	return out
}

// BuildCandidateQuery turns a request into the coarse catalog query. Energy
// and social are scoring signals only and never narrow the pool.
func BuildCandidateQuery(req domain.RecommendationRequest, limit int) domain.CandidateQuery {
	q := domain.CandidateQuery{
		Duration:   req.Duration,
		Costs:      CostTiers(req.Cost),
		ExcludeIDs: ExcludeSet(req.ExcludeIDs).Slice(),
		Limit:      limit,
	}

	if req.Location != domain.LocationAny {
		q.Locations = []string{req.Location, domain.LocationAny}
	}

	return q
}

// Exclusions is the set of activity ids a retry must not return.
type Exclusions struct {
	ids   map[string]struct{}
	order []string
}

// ExcludeSet normalizes client-supplied ids: trimmed, deduplicated, blanks
// dropped, first-seen order kept.
func ExcludeSet(ids []string) Exclusions {
	ex := Exclusions{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := ex.ids[id]; dup {
			continue
		}
		ex.ids[id] = struct{}{}
		ex.order = append(ex.order, id)
	}
	return ex
}

func (e Exclusions) Contains(id string) bool {
	_, ok := e.ids[id]
	return ok
}

func (e Exclusions) Len() int {
	return len(e.order)
}

func (e Exclusions) Slice() []string {
	if len(e.order) == 0 {
		return nil
	}
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Matches applies the query predicate in memory. The store is expected to
// have applied it already; this guards results served from a cache or a
// store that ignores part of the query.
func Matches(a domain.Activity, q domain.CandidateQuery) bool {
	if a.DurationMin > q.Duration || a.DurationMax < q.Duration {
		return false
	}
	if q.Locations != nil && !slices.Contains(q.Locations, a.Location) {
		return false
	}
	if !slices.Contains(q.Costs, a.Cost) {
		return false
	}
	return !slices.Contains(q.ExcludeIDs, a.ID)
}

// filterCandidates keeps catalog order and enforces the limit.
func filterCandidates(rows []domain.Activity, q domain.CandidateQuery) []domain.Activity {
	out := make([]domain.Activity, 0, len(rows))
	for _, a := range rows {
		if !Matches(a, q) {
			continue
		}
		out = append(out, a)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}
