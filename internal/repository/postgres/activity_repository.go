package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"beaconia/business/activity"
	"beaconia/business/recommend"
	"beaconia/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

var (
	_ recommend.CatalogRepository = (*ActivityRepository)(nil)
	_ activity.ActivityRepository = (*ActivityRepository)(nil)
)

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		DB: db,
	}
}

// FindCandidates runs the coarse candidate query. Rows come back in stable
// catalog order so equal scores break ties the same way on every call.
func (r *ActivityRepository) FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	tx := r.DB.WithContext(ctx).
		Where("duration_min <= ? AND duration_max >= ?", q.Duration, q.Duration).
		Where("cost IN ?", q.Costs)
	if q.Locations != nil {
		tx = tx.Where("location IN ?", q.Locations)
	}
	if len(q.ExcludeIDs) > 0 {
		tx = tx.Where("id NOT IN ?", q.ExcludeIDs)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var activities []domain.Activity
	if err := tx.Order("created_at ASC").Order("id ASC").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to find candidate activities: %w", err)
	}

	return activities, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Activity{}, fmt.Errorf("context error: %w", err)
	}

	var a domain.Activity
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Activity{}, domain.ErrActivityNotFound
		}
		return domain.Activity{}, fmt.Errorf("failed to find activity: %w", err)
	}

	return a, nil
}

// FindAll pages through the catalog newest first. Location and social
// filters also match the flexible values "any" and "both".
func (r *ActivityRepository) FindAll(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	tx, err := r.browseScope(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.Model(&domain.Activity{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	var activities []domain.Activity
	err = tx.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&activities).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find activities: %w", err)
	}

	return activities, total, nil
}

func (r *ActivityRepository) browseScope(ctx context.Context, f domain.ActivityFilter) (*gorm.DB, error) {
	tx := r.DB.WithContext(ctx)

	if f.Duration > 0 {
		tx = tx.Where("duration_min <= ? AND duration_max >= ?", f.Duration, f.Duration)
	}
	if f.Energy != "" {
		tx = tx.Where("energy_level = ?", f.Energy)
	}
	if f.Location != "" && f.Location != domain.LocationAny {
		tx = tx.Where("location IN ?", []string{f.Location, domain.LocationAny})
	}
	if f.Cost != "" {
		tx = tx.Where("cost = ?", f.Cost)
	}
	if f.Social != "" && f.Social != domain.SocialBoth {
		tx = tx.Where("social IN ?", []string{f.Social, domain.SocialBoth})
	}
	if f.Mood != "" {
		tag, err := json.Marshal([]string{f.Mood})
		if err != nil {
			return nil, fmt.Errorf("failed to encode mood filter: %w", err)
		}
		tx = tx.Where("mood_tags @> ?::jsonb", string(tag))
	}

	// count and find each need their own statement
	return tx.Session(&gorm.Session{}), nil
}
