package feedback

import (
	"context"
	"errors"
	"testing"

	"beaconia/domain"
)

type fakeDecisionRepo struct {
	decisions map[string]domain.Decision
	updates   int
	updateErr error
}

func (f *fakeDecisionRepo) FindByID(ctx context.Context, id string) (domain.Decision, error) {
	d, ok := f.decisions[id]
	if !ok {
		return domain.Decision{}, domain.ErrDecisionNotFound
	}
	return d, nil
}

func (f *fakeDecisionRepo) UpdateFeedback(ctx context.Context, id, feedback string, reason *string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	d := f.decisions[id]
	d.Feedback = &feedback
	d.FeedbackReason = reason
	f.decisions[id] = d
	return nil
}

func newRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{decisions: map[string]domain.Decision{
		"d1": {ID: "d1", UserID: "owner"},
	}}
}

func strPtr(s string) *string { return &s }

func TestSubmitOwner(t *testing.T) {
	repo := newRepo()
	svc := NewFeedbackService(repo)

	err := svc.Submit(context.Background(), "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: domain.FeedbackUp, Reason: strPtr(" harikaydı ")})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	d := repo.decisions["d1"]
	if d.Feedback == nil || *d.Feedback != domain.FeedbackUp {
		t.Errorf("feedback = %v, want up", d.Feedback)
	}
	if d.FeedbackReason == nil || *d.FeedbackReason != "harikaydı" {
		t.Errorf("reason = %v, want harikaydı", d.FeedbackReason)
	}
}

func TestSubmitOverwriteAndIdempotent(t *testing.T) {
	repo := newRepo()
	svc := NewFeedbackService(repo)
	ctx := context.Background()

	_ = svc.Submit(ctx, "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: domain.FeedbackUp, Reason: strPtr("iyi")})
	if err := svc.Submit(ctx, "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: domain.FeedbackDown}); err != nil {
		t.Fatal(err)
	}
	first := repo.decisions["d1"]
	if *first.Feedback != domain.FeedbackDown || first.FeedbackReason != nil {
		t.Fatalf("overwrite failed: %v / %v", *first.Feedback, first.FeedbackReason)
	}

	if err := svc.Submit(ctx, "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: domain.FeedbackDown}); err != nil {
		t.Fatal(err)
	}
	second := repo.decisions["d1"]
	if *second.Feedback != *first.Feedback || second.FeedbackReason != nil {
		t.Errorf("resubmission changed state: %v", second)
	}
}

func TestSubmitNotOwnerLeavesDecisionUnchanged(t *testing.T) {
	repo := newRepo()
	svc := NewFeedbackService(repo)

	err := svc.Submit(context.Background(), "intruder", domain.FeedbackInput{DecisionID: "d1", Feedback: domain.FeedbackDown})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if repo.updates != 0 || repo.decisions["d1"].Feedback != nil {
		t.Error("decision feedback was modified by a non-owner")
	}
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		user   string
		input  domain.FeedbackInput
		repo   *fakeDecisionRepo
		target error
	}{
		{"unknown decision", "owner", domain.FeedbackInput{DecisionID: "nope", Feedback: "up"}, newRepo(), domain.ErrNotFound},
		{"bad verdict", "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: "meh"}, newRepo(), domain.ErrValidation},
		{"no user", "", domain.FeedbackInput{DecisionID: "d1", Feedback: "up"}, newRepo(), domain.ErrValidation},
		{"store down", "owner", domain.FeedbackInput{DecisionID: "d1", Feedback: "up"}, &fakeDecisionRepo{decisions: newRepo().decisions, updateErr: errors.New("timeout")}, domain.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFeedbackService(tt.repo).Submit(context.Background(), tt.user, tt.input)
			if !errors.Is(err, tt.target) {
				t.Fatalf("err = %v, want %v", err, tt.target)
			}
		})
	}
}
