package recommend

import (
	"math"
	"sort"

	"beaconia/domain"
)

// Scorer ranks candidates against a request. It is safe for concurrent use
// when its RandomSource is.
type Scorer struct {
	cfg Config
	rng RandomSource
}

func NewScorer(cfg Config, rng RandomSource) *Scorer {
	if rng == nil {
		rng = NewRandomSource()
	}
	return &Scorer{cfg: cfg, rng: rng}
}

// BaseScore is the deterministic part of the score, without jitter.
func (s *Scorer) BaseScore(a domain.Activity, req domain.RecommendationRequest) float64 {
	score := s.cfg.BaseScore

	score -= s.cfg.DurationPenalty * math.Abs(a.DurationMid()-float64(req.Duration))

	if a.EnergyLevel == req.Energy {
		score += s.cfg.EnergyMatch
	}

	switch {
	case a.Location == req.Location:
		score += s.cfg.LocationMatch
	case a.Location == domain.LocationAny:
		score += s.cfg.LocationFlexible
	}

	// inclusion is already guaranteed by the filter, only exact tiers score
	if a.Cost == req.Cost {
		score += s.cfg.CostMatch
	}

	switch {
	case a.Social == req.Social:
		score += s.cfg.SocialMatch
	case a.Social == domain.SocialBoth:
		score += s.cfg.SocialFlexible
	}

	if req.Mood != "" && a.HasMood(req.Mood) {
		score += s.cfg.MoodMatch
	}

	return score
}

// Score is BaseScore plus uniform jitter in [-JitterAmplitude, +JitterAmplitude).
func (s *Scorer) Score(a domain.Activity, req domain.RecommendationRequest) float64 {
	jitter := (s.rng.Float64() - 0.5) * 2 * s.cfg.JitterAmplitude
	return s.BaseScore(a, req) + jitter
}

// Rank scores every candidate and sorts by score descending. The sort is
// stable, so equal scores keep catalog order.
func (s *Scorer) Rank(candidates []domain.Activity, req domain.RecommendationRequest) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, a := range candidates {
		scored = append(scored, domain.ScoredCandidate{
			Activity: a,
			Score:    s.Score(a, req),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// Shortlist returns the first n ranked candidates.
func Shortlist(ranked []domain.ScoredCandidate, n int) []domain.ScoredCandidate {
	if n < 0 || n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func activitiesOf(scored []domain.ScoredCandidate) []domain.Activity {
	out := make([]domain.Activity, 0, len(scored))
	for _, sc := range scored {
		out = append(out, sc.Activity)
	}
	return out
}
