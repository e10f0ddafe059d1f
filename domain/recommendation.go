package domain

// RecommendationRequest is the transient situational context of one request.
// It is never persisted on its own; a copy is stored in Decision.InputJSON.
type RecommendationRequest struct {
	Duration   int      `json:"duration"`
	Energy     string   `json:"energy"`
	Location   string   `json:"location"`
	Cost       string   `json:"cost"`
	Social     string   `json:"social"`
	Mood       string   `json:"mood,omitempty"`
	ExcludeIDs []string `json:"excludeIds,omitempty"`
}

type ScoredCandidate struct {
	Activity Activity
	Score    float64
}

type RecommendResult struct {
	DecisionID *string   `json:"decisionId"`
	Selected   Activity  `json:"selected"`
	Reason     string    `json:"reason"`
	FirstStep  string    `json:"firstStep"`
	PlanB      *Activity `json:"planB"`
}

// Personalization is a validated AI selection: SelectedID is guaranteed to be
// a shortlist member and PlanBID is either nil or another shortlist member.
type Personalization struct {
	SelectedID string
	PlanBID    *string
	Reason     string
	FirstStep  string
}
