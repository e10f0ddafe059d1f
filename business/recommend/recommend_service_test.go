//go:build !integration

package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"beaconia/domain"
)

func newTestService(catalog *fakeCatalog, store *fakeDecisionStore, p Personalizer) *RecommendService {
	return NewRecommendService(catalog, store, p, FixedRandom(0.5), DefaultConfig())
}

func twoHomeActivities() []domain.Activity {
	near := activity("near") // midpoint 30
	far := activity("far", func(a *domain.Activity) { a.DurationMin, a.DurationMax = 30, 60 })
	// catalog order puts the weaker candidate first
	return []domain.Activity{far, near}
}

func TestRecommendEndToEndSelectsHigherScoreAndPlanB(t *testing.T) {
	store := &fakeDecisionStore{}
	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, store, nil)

	res, err := svc.Recommend(context.Background(), baseRequest(), "user-1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if res.Selected.ID != "near" {
		t.Errorf("selected = %s, want near", res.Selected.ID)
	}
	if res.PlanB == nil || res.PlanB.ID != "far" {
		t.Errorf("planB = %v, want far", res.PlanB)
	}
	if res.Reason != "Bu aktivite düşük enerji seviyenize uygun ve evde yapılabilir." {
		t.Errorf("reason = %q", res.Reason)
	}
	if res.FirstStep != "Rahat bir pozisyon bul ve başla." {
		t.Errorf("firstStep = %q", res.FirstStep)
	}

	if res.DecisionID == nil {
		t.Fatal("decisionId is nil for authenticated caller")
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d decisions, want 1", len(store.created))
	}
	d := store.created[0]
	if d.ID != *res.DecisionID || d.UserID != "user-1" || d.SelectedActivityID != "near" {
		t.Errorf("unexpected decision %+v", d)
	}
	if d.PlanBActivityID == nil || *d.PlanBActivityID != "far" {
		t.Errorf("planB id = %v, want far", d.PlanBActivityID)
	}
	if d.Source != domain.SourceDeterministic {
		t.Errorf("source = %s, want deterministic", d.Source)
	}

	var input domain.RecommendationRequest
	if err := json.Unmarshal(d.InputJSON, &input); err != nil {
		t.Fatalf("input json: %v", err)
	}
	if input.Duration != 30 || input.Energy != domain.EnergyLow {
		t.Errorf("input json = %+v", input)
	}
}

func TestRecommendAnonymousIsNotRecorded(t *testing.T) {
	store := &fakeDecisionStore{err: errStoreDown}
	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, store, nil)

	res, err := svc.Recommend(context.Background(), baseRequest(), "")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if res.DecisionID != nil {
		t.Errorf("decisionId = %v, want nil", *res.DecisionID)
	}
	if len(store.created) != 0 {
		t.Errorf("created %d decisions, want 0", len(store.created))
	}
}

func TestRecommendPersistenceFailure(t *testing.T) {
	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, &fakeDecisionStore{err: errStoreDown}, nil)

	_, err := svc.Recommend(context.Background(), baseRequest(), "user-1")
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
}

func TestRecommendNoCandidates(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeDecisionStore{}, nil)

	_, err := svc.Recommend(context.Background(), baseRequest(), "user-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRecommendCatalogError(t *testing.T) {
	svc := newTestService(&fakeCatalog{err: errStoreDown}, &fakeDecisionStore{}, nil)

	_, err := svc.Recommend(context.Background(), baseRequest(), "")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want a catalog failure", err)
	}
}

func TestRecommendValidation(t *testing.T) {
	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, &fakeDecisionStore{}, nil)

	bad := []func(*domain.RecommendationRequest){
		func(r *domain.RecommendationRequest) { r.Duration = 4 },
		func(r *domain.RecommendationRequest) { r.Duration = 481 },
		func(r *domain.RecommendationRequest) { r.Energy = "extreme" },
		func(r *domain.RecommendationRequest) { r.Location = "office" },
		func(r *domain.RecommendationRequest) { r.Cost = "high" },
		func(r *domain.RecommendationRequest) { r.Social = "crowd" },
	}
	for i, mutate := range bad {
		req := baseRequest()
		mutate(&req)
		if _, err := svc.Recommend(context.Background(), req, ""); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestRecommendRetryExclusion(t *testing.T) {
	// raw catalog ignores the exclusion, the engine must still honour it
	catalog := &fakeCatalog{rows: twoHomeActivities(), raw: true}
	svc := NewRecommendService(catalog, &fakeDecisionStore{}, nil, NewRandomSource(), DefaultConfig())

	first, err := svc.Recommend(context.Background(), baseRequest(), "")
	if err != nil {
		t.Fatal(err)
	}

	retry := baseRequest()
	retry.ExcludeIDs = []string{first.Selected.ID}
	for i := 0; i < 50; i++ {
		res, err := svc.Recommend(context.Background(), retry, "")
		if err != nil {
			t.Fatal(err)
		}
		if res.Selected.ID == first.Selected.ID {
			t.Fatalf("retry returned excluded activity %s", first.Selected.ID)
		}
		if res.PlanB != nil {
			t.Errorf("planB = %s, want nil with a single candidate left", res.PlanB.ID)
		}
	}

	last := catalog.queries[len(catalog.queries)-1]
	if len(last.ExcludeIDs) != 1 || last.ExcludeIDs[0] != first.Selected.ID {
		t.Errorf("query exclude ids = %v", last.ExcludeIDs)
	}

	retry.ExcludeIDs = []string{"near", "far"}
	if _, err := svc.Recommend(context.Background(), retry, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound once everything is excluded", err)
	}
}

func TestRecommendUsesPersonalization(t *testing.T) {
	p := &fakePersonalizer{result: &domain.Personalization{
		SelectedID: "far",
		PlanBID:    strPtr("near"),
		Reason:     "Biraz daha uzun ama tam sana göre.",
		FirstStep:  "Bir bardak su al.",
	}}
	store := &fakeDecisionStore{}
	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, store, p)

	res, err := svc.Recommend(context.Background(), baseRequest(), "user-1")
	if err != nil {
		t.Fatal(err)
	}

	if p.calls != 1 || len(p.shortlist) != 2 || p.shortlist[0].ID != "near" {
		t.Errorf("personalizer got %d calls, shortlist %v", p.calls, ids(p.shortlist))
	}
	if res.Selected.ID != "far" || res.PlanB == nil || res.PlanB.ID != "near" {
		t.Errorf("selected/planB = %s/%v", res.Selected.ID, res.PlanB)
	}
	if res.Reason != "Biraz daha uzun ama tam sana göre." || res.FirstStep != "Bir bardak su al." {
		t.Errorf("reason/firstStep not taken from personalization: %q / %q", res.Reason, res.FirstStep)
	}
	if store.created[0].Source != domain.SourceAI {
		t.Errorf("source = %s, want ai", store.created[0].Source)
	}
}

func TestRecommendFallsBackWhenPersonalizationFails(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.Personalization
	}{
		{"nil result", nil},
		{"selection outside shortlist", &domain.Personalization{SelectedID: "ghost", Reason: "x", FirstStep: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePersonalizer{result: tt.result}
			svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, &fakeDecisionStore{}, p)

			res, err := svc.Recommend(context.Background(), baseRequest(), "")
			if err != nil {
				t.Fatal(err)
			}
			if res.Selected.ID != "near" || res.PlanB == nil || res.PlanB.ID != "far" {
				t.Errorf("fallback selected/planB = %s/%v", res.Selected.ID, res.PlanB)
			}
			if res.Reason != GenerateReason(res.Selected, baseRequest()) {
				t.Errorf("reason = %q, want deterministic reason", res.Reason)
			}
		})
	}
}

func TestRecommendShortlistIsCapped(t *testing.T) {
	rows := make([]domain.Activity, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, activity(string(rune('a'+i))))
	}
	p := &fakePersonalizer{}
	svc := newTestService(&fakeCatalog{rows: rows}, &fakeDecisionStore{}, p)

	if _, err := svc.Recommend(context.Background(), baseRequest(), ""); err != nil {
		t.Fatal(err)
	}
	if len(p.shortlist) != 5 {
		t.Errorf("shortlist len = %d, want 5", len(p.shortlist))
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(&fakeCatalog{rows: twoHomeActivities()}, &fakeDecisionStore{}, nil)
	if _, err := svc.Recommend(ctx, baseRequest(), "user-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPlanBEqualToSelectionIsDropped(t *testing.T) {
	shortlist := []domain.ScoredCandidate{{Activity: activity("a")}, {Activity: activity("b")}}
	out, err := outcomeFromPersonalization(domain.Personalization{SelectedID: "a", PlanBID: strPtr("a")}, shortlist)
	if err != nil {
		t.Fatal(err)
	}
	if out.PlanB != nil {
		t.Errorf("planB = %s, want nil", out.PlanB.ID)
	}
}
