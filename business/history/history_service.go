package history

import (
	"context"
	"fmt"

	"beaconia/domain"
	"beaconia/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type DecisionRepository interface {
	FindByUser(ctx context.Context, userID string, offset, limit int) ([]domain.Decision, int64, error)
}

type historyService struct {
	decisionRepo DecisionRepository
}

func NewHistoryService(decisionRepo DecisionRepository) *historyService {
	return &historyService{decisionRepo: decisionRepo}
}

// List returns the owner's decisions newest first, with the selected and
// Plan B activities attached.
func (s *historyService) List(ctx context.Context, userID string, page, limit int) (domain.DecisionPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.DecisionPage{}, fmt.Errorf("context error: %w", err)
	}
	if userID == "" {
		return domain.DecisionPage{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	page, limit = clampPage(page, limit)

	decisions, total, err := s.decisionRepo.FindByUser(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		logger.Error("failed to list decision history", "user_id", userID, "error", err)
		return domain.DecisionPage{}, err
	}
	if decisions == nil {
		decisions = []domain.Decision{}
	}

	return domain.DecisionPage{
		Decisions:  decisions,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
