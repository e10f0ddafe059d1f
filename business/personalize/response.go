package personalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"beaconia/domain"

	"github.com/go-playground/validator/v10"
)

// aiResponse is the only shape accepted from the model. Unknown fields are
// ignored and never read.
type aiResponse struct {
	SelectedID string          `json:"selectedId" validate:"required"`
	PlanBID    json.RawMessage `json:"planBId"`
	Reason     string          `json:"reason" validate:"required"`
	FirstStep  string          `json:"firstStep" validate:"required"`
}

var (
	errNoJSON           = errors.New("no json object in response")
	errTrailingData     = errors.New("unexpected data after json object")
	errInvalidSelection = errors.New("selectedId is not a shortlist member")
)

// parseResponse is the single place the untrusted model output is turned into
// a Personalization. It returns planBDropped when a present planBId had to be
// normalized to nil.
func parseResponse(v *validator.Validate, raw string, shortlist []domain.Activity) (p *domain.Personalization, planBDropped bool, err error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, false, errNoJSON
	}

	span := raw[start : end+1]
	dec := json.NewDecoder(strings.NewReader(span))
	var resp aiResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}
	if rest := strings.TrimSpace(span[dec.InputOffset():]); rest != "" {
		return nil, false, errTrailingData
	}

	resp.SelectedID = strings.TrimSpace(resp.SelectedID)
	resp.Reason = strings.TrimSpace(resp.Reason)
	resp.FirstStep = strings.TrimSpace(resp.FirstStep)
	if err := v.Struct(&resp); err != nil {
		return nil, false, fmt.Errorf("invalid response shape: %w", err)
	}

	ids := make(map[string]struct{}, len(shortlist))
	for _, a := range shortlist {
		ids[a.ID] = struct{}{}
	}

	if _, ok := ids[resp.SelectedID]; !ok {
		return nil, false, errInvalidSelection
	}

	out := &domain.Personalization{
		SelectedID: resp.SelectedID,
		Reason:     resp.Reason,
		FirstStep:  resp.FirstStep,
	}

	planB, present, ok := decodePlanB(resp.PlanBID)
	if present {
		_, member := ids[planB]
		if ok && member && planB != resp.SelectedID {
			out.PlanBID = &planB
		} else if !ok || planB != "" {
			planBDropped = true
		}
	}

	return out, planBDropped, nil
}

// decodePlanB reads planBId without letting a bad value sink the selection.
// present is false for a missing or null field; ok is false when the value is
// not a JSON string.
func decodePlanB(raw json.RawMessage) (id string, present, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", false, false
	}
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", true, false
	}
	return strings.TrimSpace(id), true, true
}
