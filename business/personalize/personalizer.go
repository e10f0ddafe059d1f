package personalize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beaconia/domain"
	"beaconia/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// TextGenerator is the external generative text service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const defaultTimeout = 8 * time.Second

// Personalizer asks the model to choose among the shortlist. It never returns
// an error: nil is the only failure signal and callers fall back to the
// deterministic ranking.
type Personalizer struct {
	client   TextGenerator
	validate *validator.Validate
	timeout  time.Duration
}

// NewPersonalizer returns a personalizer bound to client. A nil client yields
// a personalizer that is always disabled.
func NewPersonalizer(client TextGenerator, timeout time.Duration) *Personalizer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Personalizer{
		client:   client,
		validate: validator.New(),
		timeout:  timeout,
	}
}

func (p *Personalizer) Personalize(
	ctx context.Context,
	req domain.RecommendationRequest,
	shortlist []domain.Activity,
) (result *domain.Personalization) {

	if p == nil || p.client == nil || len(shortlist) == 0 {
		OutcomesTotal.WithLabelValues(outcomeDisabled).Inc()
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("personalization panicked", "panic", fmt.Sprint(r))
			OutcomesTotal.WithLabelValues(outcomeTransportError).Inc()
			result = nil
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	raw, err := p.client.GenerateText(callCtx, BuildPrompt(req, shortlist))
	CallLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		outcome := outcomeTransportError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = outcomeTimeout
		}
		logger.Warn("personalization call failed", "outcome", outcome, "error", err)
		OutcomesTotal.WithLabelValues(outcome).Inc()
		return nil
	}

	parsed, planBDropped, err := parseResponse(p.validate, raw, shortlist)
	if err != nil {
		outcome := outcomeParseError
		if errors.Is(err, errInvalidSelection) {
			outcome = outcomeInvalidSelection
		}
		logger.Warn("personalization response rejected", "outcome", outcome, "error", err)
		OutcomesTotal.WithLabelValues(outcome).Inc()
		return nil
	}

	if planBDropped {
		OutcomesTotal.WithLabelValues(outcomePlanBDropped).Inc()
	}
	OutcomesTotal.WithLabelValues(outcomeSuccess).Inc()

	return parsed
}
