package feedback

import (
	"context"
	"fmt"
	"strings"

	"beaconia/domain"
	"beaconia/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// DecisionRepository contract interface
type DecisionRepository interface {
	FindByID(ctx context.Context, id string) (domain.Decision, error)
	UpdateFeedback(ctx context.Context, id string, feedback string, reason *string) error
}

var SubmissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Accepted feedback submissions by verdict.",
	},
	[]string{"feedback"},
)

func init() {
	prometheus.MustRegister(SubmissionsTotal)
}

var validFeedback = map[string]bool{
	domain.FeedbackUp:    true,
	domain.FeedbackDown:  true,
	domain.FeedbackRetry: true,
}

type feedbackService struct {
	decisionRepo DecisionRepository
}

func NewFeedbackService(decisionRepo DecisionRepository) *feedbackService {
	return &feedbackService{
		decisionRepo: decisionRepo,
	}
}

// Submit attaches a verdict to a decision owned by userID. Any owner may
// overwrite a previous verdict; the last write wins.
func (s *feedbackService) Submit(ctx context.Context, userID string, input domain.FeedbackInput) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submitting feedback")
		return fmt.Errorf("context error: %w", err)
	}

	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if input.DecisionID == "" {
		return fmt.Errorf("%w: decision id is required", domain.ErrValidation)
	}
	if !validFeedback[input.Feedback] {
		return fmt.Errorf("%w: feedback must be one of up, down, retry", domain.ErrValidation)
	}

	decision, err := s.decisionRepo.FindByID(ctx, input.DecisionID)
	if err != nil {
		logger.Error("failed to find decision", "decision_id", input.DecisionID, "error", err)
		return err
	}

	if decision.UserID != userID {
		logger.Warn("feedback rejected, not the owner", "decision_id", decision.ID, "user_id", userID)
		return domain.ErrNotOwner
	}

	reason := normalizeReason(input.Reason)
	if err := s.decisionRepo.UpdateFeedback(ctx, decision.ID, input.Feedback, reason); err != nil {
		logger.Error("failed to update feedback", "decision_id", decision.ID, "error", err)
		return fmt.Errorf("%w: failed to update feedback: %v", domain.ErrPersistence, err)
	}

	SubmissionsTotal.WithLabelValues(input.Feedback).Inc()
	logger.Info("feedback recorded", "decision_id", decision.ID, "feedback", input.Feedback)

	return nil
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
