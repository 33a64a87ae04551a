package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/internal/splitter"
)

// Defaults mirror the values the prompt was tuned with.
const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = float32(0.7)
)

// Options configures a Service.
type Options struct {
	Provider     string
	Model        string
	MaxTokens    int
	Temperature  float32
	ServerAPIKey string
}

// Service turns a Request into a split resume and cover letter.
type Service struct {
	llm      llm.Client
	opts     Options
	validate *validator.Validate
}

// NewService constructs a Service backed by client.
func NewService(client llm.Client, opts Options) *Service {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Service{
		llm:      client,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Provider names the upstream provider.
func (s *Service) Provider() string {
	return s.opts.Provider
}

// Model names the configured model.
func (s *Service) Model() string {
	return s.opts.Model
}

// HasServerKey reports whether a server-side credential is configured, in
// which case callers need not supply one.
func (s *Service) HasServerKey() bool {
	return s.opts.ServerAPIKey != ""
}

// Validate checks that the three text fields are present.
func (s *Service) Validate(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrMissingField, verrs[0].Field())
		}
		return err
	}
	return nil
}

// Generate validates req, calls the provider and splits the returned text.
func (s *Service) Generate(ctx context.Context, req Request) (splitter.Result, error) {
	req = req.Normalize()

	apiKey, keySource := s.opts.ServerAPIKey, "server"
	if apiKey == "" {
		apiKey, keySource = req.APIKey, "request"
	}
	if apiKey == "" {
		return splitter.Result{}, ErrMissingCredential
	}
	if err := s.Validate(req); err != nil {
		return splitter.Result{}, err
	}

	metrics.IncGenerationStarted()
	start := time.Now()
	text, err := s.llm.Complete(ctx, llm.Completion{
		APIKey:      apiKey,
		Model:       s.opts.Model,
		Messages:    BuildMessages(req),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Warn("generation.failed", map[string]any{
			"provider":   s.opts.Provider,
			"model":      s.opts.Model,
			"key_source": keySource,
			"key_fp":     util.KeyFingerprint(apiKey),
			"error":      util.RedactSecrets(err.Error(), apiKey),
		})
		return splitter.Result{}, fmt.Errorf("generate content: %w", err)
	}

	result := splitter.Split(text)
	if result.Tier == splitter.TierEmpty {
		metrics.IncGenerationFailed()
		return splitter.Result{}, fmt.Errorf("generate content: %w", llm.ErrEmptyContent)
	}
	metrics.IncGenerationCompleted()
	metrics.IncSplitTier(string(result.Tier))

	telemetry.Info("generation.complete", map[string]any{
		"provider":     s.opts.Provider,
		"model":        s.opts.Model,
		"key_source":   keySource,
		"key_fp":       util.KeyFingerprint(apiKey),
		"split_tier":   string(result.Tier),
		"resume_chars": len(result.Resume),
		"cover_chars":  len(result.CoverLetter),
		"duration_ms":  float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return result, nil
}
