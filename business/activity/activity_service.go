package activity

import (
	"context"
	"fmt"
	"strings"

	"beaconia/domain"
	"beaconia/pkg/logger"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ActivityRepository contract interface
type ActivityRepository interface {
	FindByID(ctx context.Context, id string) (domain.Activity, error)
	FindAll(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error)
}

type activityService struct {
	activityRepo ActivityRepository
}

func NewActivityService(activityRepo ActivityRepository) *activityService {
	return &activityService{
		activityRepo: activityRepo,
	}
}

func (s *activityService) GetAllActivities(ctx context.Context, filter domain.ActivityFilter) (domain.ActivityPage, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all activities")
		return domain.ActivityPage{}, fmt.Errorf("context error: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	filter.Mood = strings.TrimSpace(filter.Mood)

	activities, total, err := s.activityRepo.FindAll(ctx, filter)
	if err != nil {
		logger.Error("Failed to find all activities", "error", err)
		return domain.ActivityPage{}, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	return domain.ActivityPage{
		Activities: activities,
		Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *activityService) GetActivityByID(ctx context.Context, id string) (domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Activity{}, fmt.Errorf("context error: %w", err)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Activity{}, fmt.Errorf("%w: invalid activity id", domain.ErrValidation)
	}

	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find activity by id", "activity_id", id, "error", err)
		return domain.Activity{}, err
	}

	return activity, nil
}
