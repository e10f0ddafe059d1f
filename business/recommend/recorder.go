package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"beaconia/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DecisionStore interface {
	Create(ctx context.Context, decision *domain.Decision) error
}

// Outcome is what the engine decided for one request.
type Outcome struct {
	Selected  domain.Activity
	PlanB     *domain.Activity
	Reason    string
	FirstStep string
	Source    string
}

// DecisionRecorder persists one Decision per completed recommendation of an
// authenticated caller. Anonymous callers are never recorded.
type DecisionRecorder struct {
	store DecisionStore
	newID func() string
}

func NewDecisionRecorder(store DecisionStore) *DecisionRecorder {
	return &DecisionRecorder{store: store, newID: uuid.NewString}
}

// Record returns the new decision id, or nil when userID is empty.
func (r *DecisionRecorder) Record(ctx context.Context, userID string, req domain.RecommendationRequest, out Outcome) (*string, error) {
	if userID == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	input, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	decision := &domain.Decision{
		ID:                 r.newID(),
		UserID:             userID,
		InputJSON:          datatypes.JSON(input),
		SelectedActivityID: out.Selected.ID,
		Reason:             out.Reason,
		FirstStep:          out.FirstStep,
		Source:             out.Source,
	}
	if out.PlanB != nil {
		planBID := out.PlanB.ID
		decision.PlanBActivityID = &planBID
	}

	if err := r.store.Create(ctx, decision); err != nil {
		return nil, fmt.Errorf("%w: failed to save decision: %v", domain.ErrPersistence, err)
	}

	return &decision.ID, nil
}
