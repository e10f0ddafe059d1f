package postgres

import (
	"context"
	"errors"
	"fmt"

	"beaconia/business/feedback"
	"beaconia/business/history"
	"beaconia/business/recommend"
	"beaconia/domain"

	"gorm.io/gorm"
)

type DecisionRepository struct {
	DB *gorm.DB
}

var (
	_ recommend.DecisionStore     = (*DecisionRepository)(nil)
	_ feedback.DecisionRepository = (*DecisionRepository)(nil)
	_ history.DecisionRepository  = (*DecisionRepository)(nil)
)

func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{DB: db}
}

func (r *DecisionRepository) Create(ctx context.Context, decision *domain.Decision) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Omit("SelectedActivity", "PlanBActivity").Create(decision).Error; err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}

	return nil
}

func (r *DecisionRepository) FindByID(ctx context.Context, id string) (domain.Decision, error) {
	if err := ctx.Err(); err != nil {
		return domain.Decision{}, fmt.Errorf("context error: %w", err)
	}

	var decision domain.Decision
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&decision).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Decision{}, domain.ErrDecisionNotFound
		}
		return domain.Decision{}, fmt.Errorf("failed to find decision: %w", err)
	}

	return decision, nil
}

// UpdateFeedback overwrites any earlier verdict on the decision.
func (r *DecisionRepository) UpdateFeedback(ctx context.Context, id, verdict string, reason *string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Model(&domain.Decision{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"feedback":        verdict,
			"feedback_reason": reason,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update decision feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDecisionNotFound
	}

	return nil
}

func (r *DecisionRepository) FindByUser(ctx context.Context, userID string, offset, limit int) ([]domain.Decision, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	var total int64
	if err := r.DB.WithContext(ctx).Model(&domain.Decision{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count decisions: %w", err)
	}

	var decisions []domain.Decision
	err := r.DB.WithContext(ctx).
		Preload("SelectedActivity").
		Preload("PlanBActivity").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&decisions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find decisions: %w", err)
	}

	return decisions, total, nil
}
