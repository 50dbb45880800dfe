// Package service contains search insight workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hirehub/internal/platform/logger"
	listsvc "hirehub/internal/services/listings/service"

	"hirehub/internal/services/insights/domain"
	"hirehub/internal/services/insights/repo"
)

// Service defines the service contract for insights
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements the Service interface
type Svc struct {
	Repo repo.Storage
}

// New creates a new insights service
func New(st repo.Storage) *Svc {
	if st == nil {
		panic("insights.Service requires a non nil Storage")
	}
	return &Svc{Repo: st}
}

// Write records one event
func (s *Svc) Write(ctx context.Context, ev domain.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	return s.Repo.Insert(ctx, ev)
}

// TopKeywords serves the popular-keyword aggregation
func (s *Svc) TopKeywords(ctx context.Context, in domain.TopKeywordsInput) ([]domain.TopKeywordRow, error) {
	if in.Days <= 0 {
		in.Days = 7
	}
	if in.Limit <= 0 {
		in.Limit = 20
	}
	return s.Repo.TopKeywords(ctx, in)
}

// Recorder adapts the service to the listings telemetry seam
// Failures are logged and swallowed: telemetry never fails a query
type Recorder struct{ Svc Service }

// Record implements listsvc.Recorder
func (r Recorder) Record(ctx context.Context, in listsvc.RecordInput) {
	ev := domain.Event{
		Surface:    in.Surface,
		ResultType: string(in.Filter.ResultType),
		Category:   in.Filter.Category,
		Province:   in.Filter.Province,
		Keyword:    in.Filter.SearchTerm,
		Results:    in.Results,
	}
	if err := r.Svc.Write(ctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("insights record failed")
	}
}
