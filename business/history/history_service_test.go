package history

import (
	"context"
	"errors"
	"testing"

	"beaconia/domain"
)

type fakeRepo struct {
	rows        []domain.Decision
	offset, lim int
	err         error
}

func (f *fakeRepo) FindByUser(ctx context.Context, userID string, offset, limit int) ([]domain.Decision, int64, error) {
	f.offset, f.lim = offset, limit
	if f.err != nil {
		return nil, 0, f.err
	}
	var mine []domain.Decision
	for _, d := range f.rows {
		if d.UserID == userID {
			mine = append(mine, d)
		}
	}
	total := int64(len(mine))
	if offset >= len(mine) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], total, nil
}

func TestListPaginates(t *testing.T) {
	repo := &fakeRepo{}
	for i := 0; i < 45; i++ {
		repo.rows = append(repo.rows, domain.Decision{ID: string(rune('a' + i)), UserID: "u1"})
	}
	repo.rows = append(repo.rows, domain.Decision{ID: "other", UserID: "u2"})

	page, err := NewHistoryService(repo).List(context.Background(), "u1", 3, 20)
	if err != nil {
		t.Fatal(err)
	}
	if repo.offset != 40 || repo.lim != 20 {
		t.Errorf("offset/limit = %d/%d, want 40/20", repo.offset, repo.lim)
	}
	if len(page.Decisions) != 5 {
		t.Errorf("len = %d, want 5", len(page.Decisions))
	}
	want := domain.Pagination{Page: 3, Limit: 20, Total: 45, TotalPages: 3}
	if page.Pagination != want {
		t.Errorf("pagination = %+v, want %+v", page.Pagination, want)
	}
}

func TestListDefaultsAndEmpty(t *testing.T) {
	repo := &fakeRepo{}
	page, err := NewHistoryService(repo).List(context.Background(), "u1", 0, 500)
	if err != nil {
		t.Fatal(err)
	}
	if repo.lim != 100 || page.Pagination.Page != 1 {
		t.Errorf("limit/page = %d/%d, want 100/1", repo.lim, page.Pagination.Page)
	}
	if page.Decisions == nil || len(page.Decisions) != 0 {
		t.Errorf("decisions = %v, want empty slice", page.Decisions)
	}
}

func TestListErrors(t *testing.T) {
	if _, err := NewHistoryService(&fakeRepo{}).List(context.Background(), "", 1, 20); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	boom := errors.New("db down")
	if _, err := NewHistoryService(&fakeRepo{err: boom}).List(context.Background(), "u1", 1, 20); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
