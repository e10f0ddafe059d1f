package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"beaconia/domain"
	"beaconia/pkg/logger"
	"beaconia/pkg/trace"
)

// ---- Collaborator interfaces ----

type CatalogRepository interface {
	FindCandidates(ctx context.Context, query domain.CandidateQuery) ([]domain.Activity, error)
}

// Personalizer returns nil whenever it cannot produce a validated selection.
type Personalizer interface {
	Personalize(ctx context.Context, req domain.RecommendationRequest, shortlist []domain.Activity) *domain.Personalization
}

// ---- Service ----

type RecommendService struct {
	catalog      CatalogRepository
	scorer       *Scorer
	personalizer Personalizer
	recorder     *DecisionRecorder
	cfg          Config
}

// NewRecommendService wires the engine. personalizer may be nil, in which
// case every request takes the deterministic path.
func NewRecommendService(
	catalog CatalogRepository,
	decisions DecisionStore,
	personalizer Personalizer,
	rng RandomSource,
	cfg Config,
) *RecommendService {
	return &RecommendService{
		catalog:      catalog,
		scorer:       NewScorer(cfg, rng),
		personalizer: personalizer,
		recorder:     NewDecisionRecorder(decisions),
		cfg:          cfg,
	}
}

// Recommend filters, scores, personalizes and records. userID is empty for
// anonymous callers.
func (s *RecommendService) Recommend(
	ctx context.Context,
	req domain.RecommendationRequest,
	userID string,
) (domain.RecommendResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.RecommendResult{}, fmt.Errorf("context error: %w", err)
	}
	if err := ValidateRequest(req); err != nil {
		return domain.RecommendResult{}, err
	}

	tid := trace.ID(ctx)

	// 1) coarse candidate pool
	query := BuildCandidateQuery(req, s.cfg.CandidateLimit)
	rows, err := s.catalog.FindCandidates(ctx, query)
	if err != nil {
		return domain.RecommendResult{}, fmt.Errorf("load candidates: %w", err)
	}
	candidates := filterCandidates(rows, query)
	CandidatePoolSize.Observe(float64(len(candidates)))

	if len(candidates) == 0 {
		NoCandidatesTotal.Inc()
		logger.Info("recommend_no_candidates",
			"trace_id", tid,
			"duration", req.Duration,
			"location", req.Location,
			"cost", req.Cost,
			"excluded", len(query.ExcludeIDs),
		)
		return domain.RecommendResult{}, domain.ErrNoCandidates
	}

	// 2) deterministic ranking
	ranked := s.scorer.Rank(candidates, req)
	shortlist := Shortlist(ranked, s.cfg.ShortlistSize)

	// 3) optional personalization, deterministic fallback
	out := s.personalizeOrFallback(ctx, req, shortlist)

	logger.Debug("recommend_selected",
		"trace_id", tid,
		"candidate_count", len(candidates),
		"shortlist_count", len(shortlist),
		"selected_id", out.Selected.ID,
		"source", out.Source,
		"authenticated", userID != "",
	)

	// 4) record for authenticated callers
	decisionID, err := s.recorder.Record(ctx, userID, req, out)
	if err != nil {
		logger.Error("failed to record decision", "trace_id", tid, "user_id", userID, "error", err)
		return domain.RecommendResult{}, err
	}

	RecommendationsTotal.
		WithLabelValues(out.Source, strconv.FormatBool(decisionID != nil)).
		Inc()

	return domain.RecommendResult{
		DecisionID: decisionID,
		Selected:   out.Selected,
		Reason:     out.Reason,
		FirstStep:  out.FirstStep,
		PlanB:      out.PlanB,
	}, nil
}

func (s *RecommendService) personalizeOrFallback(
	ctx context.Context,
	req domain.RecommendationRequest,
	shortlist []domain.ScoredCandidate,
) Outcome {
	if s.personalizer != nil {
		if p := s.personalizer.Personalize(ctx, req, activitiesOf(shortlist)); p != nil {
			out, err := outcomeFromPersonalization(*p, shortlist)
			if err == nil {
				return out
			}
			logger.Warn("discarding personalization", "trace_id", trace.ID(ctx), "error", err)
		}
	}

	return deterministicOutcome(req, shortlist)
}

func deterministicOutcome(req domain.RecommendationRequest, shortlist []domain.ScoredCandidate) Outcome {
	selected := shortlist[0].Activity
	out := Outcome{
		Selected:  selected,
		Reason:    GenerateReason(selected, req),
		FirstStep: GenerateFirstStep(selected),
		Source:    domain.SourceDeterministic,
	}
	if len(shortlist) > 1 {
		planB := shortlist[1].Activity
		out.PlanB = &planB
	}
	return out
}

var errNotInShortlist = errors.New("personalized selection is not in the shortlist")

// outcomeFromPersonalization resolves ids back to shortlist activities. The
// personalizer already validated membership; this re-check keeps the engine
// correct for any Personalizer implementation.
func outcomeFromPersonalization(p domain.Personalization, shortlist []domain.ScoredCandidate) (Outcome, error) {
	selected, ok := findActivity(shortlist, p.SelectedID)
	if !ok {
		return Outcome{}, errNotInShortlist
	}

	out := Outcome{
		Selected:  selected,
		Reason:    p.Reason,
		FirstStep: p.FirstStep,
		Source:    domain.SourceAI,
	}
	if p.PlanBID != nil && *p.PlanBID != selected.ID {
		if planB, ok := findActivity(shortlist, *p.PlanBID); ok {
			out.PlanB = &planB
		}
	}
	return out, nil
}

func findActivity(shortlist []domain.ScoredCandidate, id string) (domain.Activity, bool) {
	for _, sc := range shortlist {
		if sc.Activity.ID == id {
			return sc.Activity, true
		}
	}
	return domain.Activity{}, false
}
