package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"insightapi/application/ports"
	"insightapi/domain/analysis"
	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/observability"
)

// GenerationService runs the analysis pipeline: prompt construction,
// the language backend call, and response parsing. One generation per
// user may be in flight at a time; a duplicate submission is rejected
// rather than queued. Failures are surfaced once and never retried
// here; the user re-invokes the action manually.
type GenerationService struct {
	model   ports.LanguageModel
	limiter *rate.Limiter
	metrics *observability.Metrics
	tracer  *observability.Tracer
	logger  *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// GenerationResult bundles the outputs of one successful generation
type GenerationResult struct {
	Record analysis.Record      `json:"record"`
	Series analysis.ChartSeries `json:"series"`
}

// NewGenerationService creates a new generation service
func NewGenerationService(
	model ports.LanguageModel,
	limiter *rate.Limiter,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *GenerationService {
	return &GenerationService{
		model:    model,
		limiter:  limiter,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Generate produces a structured analysis for one request. On any
// failure the in-flight generation is abandoned; no partial record is
// kept.
func (s *GenerationService) Generate(ctx context.Context, userID string, req analysis.Request) (*GenerationResult, error) {
	if userID == "" {
		return nil, pkgerrors.NewUnauthorizedError("generation requires an authenticated user")
	}

	if !s.acquire(userID) {
		return nil, pkgerrors.NewConflictError("a generation is already in progress for this user")
	}
	defer s.release(userID)

	prompt := analysis.BuildPrompt(req)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, pkgerrors.NewUpstreamError("language backend", err)
		}
	}

	start := time.Now()
	var (
		raw string
		err error
	)
	if s.tracer != nil {
		err = s.tracer.TraceFunction(ctx, "LanguageModel.Complete", func(ctx context.Context) error {
			var completeErr error
			raw, completeErr = s.model.Complete(ctx, prompt)
			return completeErr
		})
	} else {
		raw, err = s.model.Complete(ctx, prompt)
	}
	s.metrics.Duration(ctx, "GenerationLatency", time.Since(start))
	if err != nil {
		s.metrics.Count(ctx, "Generation", "upstream_error")
		s.logger.Error("Language backend call failed",
			zap.String("userID", userID),
			zap.String("kind", string(req.Kind())),
			zap.Error(err),
		)
		if pkgerrors.GetAppError(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.NewUpstreamError("language backend", err)
	}

	record, err := analysis.ParseResponse(raw)
	if err != nil {
		s.metrics.Count(ctx, "Generation", "malformed_response")
		s.logger.Warn("Model response could not be parsed",
			zap.String("userID", userID),
			zap.Int("responseLength", len(raw)),
		)
		return nil, err
	}

	s.metrics.Count(ctx, "Generation", "success")
	s.logger.Info("Analysis generated",
		zap.String("userID", userID),
		zap.String("kind", string(req.Kind())),
		zap.Int("items", record.ItemCount()),
		zap.Duration("latency", time.Since(start)),
	)

	return &GenerationResult{
		Record: record,
		Series: analysis.DeriveChartSeries(record),
	}, nil
}

func (s *GenerationService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *GenerationService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}
