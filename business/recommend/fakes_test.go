package recommend

import (
	"context"
	"errors"

	"beaconia/domain"
)

type fakeCatalog struct {
	rows    []domain.Activity
	err     error
	queries []domain.CandidateQuery
	// raw returns every row untouched, like a stale cache would
	raw bool
}

func (f *fakeCatalog) FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Activity, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if f.raw {
		return f.rows, nil
	}
	var out []domain.Activity
	for _, a := range f.rows {
		if Matches(a, q) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeDecisionStore struct {
	created []domain.Decision
	err     error
}

func (f *fakeDecisionStore) Create(ctx context.Context, d *domain.Decision) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *d)
	return nil
}

type fakePersonalizer struct {
	result    *domain.Personalization
	calls     int
	shortlist []domain.Activity
}

func (f *fakePersonalizer) Personalize(ctx context.Context, req domain.RecommendationRequest, shortlist []domain.Activity) *domain.Personalization {
	f.calls++
	f.shortlist = shortlist
	return f.result
}

var errStoreDown = errors.New("connection refused")

func activity(id string, mutate ...func(*domain.Activity)) domain.Activity {
	a := domain.Activity{
		ID:          id,
		Title:       "Activity " + id,
		Category:    "wellness",
		DurationMin: 20,
		DurationMax: 40,
		EnergyLevel: domain.EnergyLow,
		Location:    domain.LocationHome,
		Cost:        domain.CostFree,
		Social:      domain.SocialSolo,
	}
	for _, m := range mutate {
		m(&a)
	}
	return a
}

func baseRequest() domain.RecommendationRequest {
	return domain.RecommendationRequest{
		Duration: 30,
		Energy:   domain.EnergyLow,
		Location: domain.LocationHome,
		Cost:     domain.CostFree,
		Social:   domain.SocialSolo,
	}
}

func strPtr(s string) *string { return &s }
