package fetchlog

import (
	"context"

	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, e Entry) (uint, error)
	FindRecent(ctx context.Context, limit int) ([]Entry, error)
}

// Service writes every backend exchange to the logger and, when a
// repository is configured, to the database.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService accepts a nil repo; entries then only reach the logger.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Enabled() bool {
	return s != nil && s.repo != nil
}

func (s *Service) Record(ctx context.Context, e Entry) {
	if s == nil {
		return
	}

	e.RequestBody = Truncate(e.RequestBody)
	e.ResponseBody = Truncate(e.ResponseBody)
	e.URL = truncate(e.URL, maxColumnLen)
	e.Error = truncate(e.Error, maxColumnLen)

	s.logger.Debug("backend exchange",
		zap.String("traceId", e.TraceID),
		zap.String("method", e.Method),
		zap.String("url", e.URL),
		zap.Int("status", e.Status),
		zap.Int64("durationMs", e.DurationMs),
		zap.String("requestBody", e.RequestBody),
		zap.String("responseBody", e.ResponseBody),
		zap.String("error", e.Error),
	)

	if s.repo == nil {
		return
	}

	// persistence errors never reach the caller
	if _, err := s.repo.Insert(context.WithoutCancel(ctx), e); err != nil {
		s.logger.Warn("failed to persist fetch log entry", zap.String("traceId", e.TraceID), zap.Error(err))
	}
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if !s.Enabled() {
		return nil, nil
	}
	return s.repo.FindRecent(ctx, limit)
}
