package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"beaconia/business/personalize"
	"beaconia/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"

	failureThreshold = 5
	openTimeout      = 30 * time.Second
	maxResponseBytes = 1 << 20
)

var ErrEmptyResponse = errors.New("gemini returned no text")

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiRepository struct {
	cfg     GeminiConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

var _ personalize.TextGenerator = (*GeminiRepository)(nil)

// NewGeminiRepository returns a client whose calls go through a circuit
// breaker. httpClient may be nil.
func NewGeminiRepository(cfg GeminiConfig, httpClient *http.Client) *GeminiRepository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	settings := gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
		// The caller giving up is not a provider failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &GeminiRepository{
		cfg:     cfg,
		client:  httpClient,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends prompt and returns the first candidate's text.
func (r *GeminiRepository) GenerateText(ctx context.Context, prompt string) (string, error) {
	return r.breaker.Execute(func() (string, error) {
		return r.generate(ctx, prompt)
	})
}

func (r *GeminiRepository) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(r.cfg.BaseURL, "/"), r.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", r.cfg.APIKey)

	res, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", res.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
