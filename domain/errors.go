package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrPersistence = errors.New("persistence failure")

	ErrNoCandidates     = fmt.Errorf("no matching activities found for your criteria: %w", ErrNotFound)
	ErrDecisionNotFound = fmt.Errorf("decision not found: %w", ErrNotFound)
	ErrActivityNotFound = fmt.Errorf("activity not found: %w", ErrNotFound)
	ErrNotOwner         = fmt.Errorf("you can only provide feedback for your own decisions: %w", ErrForbidden)
)
