package activity

import (
	"context"
	"errors"
	"testing"

	"beaconia/domain"
)

type fakeRepo struct {
	byID   map[string]domain.Activity
	filter domain.ActivityFilter
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (domain.Activity, error) {
	a, ok := f.byID[id]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return a, nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	f.filter = filter
	return nil, 0, nil
}

func TestGetAllActivitiesClampsPaging(t *testing.T) {
	repo := &fakeRepo{}
	page, err := NewActivityService(repo).GetAllActivities(context.Background(), domain.ActivityFilter{Limit: 1000, Mood: " happy "})
	if err != nil {
		t.Fatal(err)
	}
	if repo.filter.Page != 1 || repo.filter.Limit != 100 || repo.filter.Mood != "happy" {
		t.Errorf("filter = %+v", repo.filter)
	}
	if page.Activities == nil {
		t.Error("activities should be an empty slice, not nil")
	}
}

func TestGetActivityByID(t *testing.T) {
	repo := &fakeRepo{byID: map[string]domain.Activity{"a1": {ID: "a1", Title: "Yoga"}}}
	svc := NewActivityService(repo)

	a, err := svc.GetActivityByID(context.Background(), "a1")
	if err != nil || a.Title != "Yoga" {
		t.Fatalf("got %+v, %v", a, err)
	}

	if _, err := svc.GetActivityByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetActivityByID(context.Background(), " "); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
