// Package service contains the unified listing query workflows
package service

import (
	"context"
	"sync"

	perr "hirehub/internal/platform/errors"

	"hirehub/internal/modkit/repokit"
	"hirehub/internal/services/listings/domain"
	"hirehub/internal/services/listings/repo"
)

// Service defines the service contract for listings
type Service interface{ domain.QueryPort }

// Config bounds one deployment of the query service
// The trusted first-paint deployment runs with a relaxed ceiling, the public
// one with a tight ceiling; everything else is shared so both produce
// identical cursors and ordering for identical inputs
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Recorder receives query telemetry, best effort
// A nil Recorder disables recording
type Recorder interface {
	Record(ctx context.Context, in RecordInput)
}

// RecordInput is one observed query
type RecordInput struct {
	Surface string // "query" or "search"
	Filter  domain.FilterSpec
	Results int
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	cfg    Config
	rec    Recorder
}

// New creates a new listings service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config, rec Recorder) *Svc {
	if db == nil {
		panic("listings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("listings.Service requires a non nil Storage binder")
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 24
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 50
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg, rec: rec}
}

// Query returns one page for the given filter
//
// Single-collection requests are one keyset fetch; "all" merges both
// collections (see merged). The keyword predicate runs after the page is
// already truncated to PageSize, so a short page with an active search term
// does NOT mean the stream is exhausted; callers must keep fetching while
// the cursor is non-nil
func (s *Svc) Query(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	in, err := s.normalize(in)
	if err != nil {
		return domain.Page{}, err
	}

	var page domain.Page
	if in.ResultType == domain.ResultAll {
		page, err = s.merged(ctx, in, false)
	} else {
		page, err = s.single(ctx, in)
	}
	if err != nil {
		return domain.Page{}, err
	}
	s.record(ctx, "query", in, len(page.Items))
	return page, nil
}

// Search is the universal search entry point
// Always spans both collections and applies the keyword predicate to the
// full merged candidate set before truncation, trading page-size precision
// for recall
func (s *Svc) Search(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	in.ResultType = domain.ResultAll
	in, err := s.normalize(in)
	if err != nil {
		return domain.Page{}, err
	}
	page, err := s.merged(ctx, in, true)
	if err != nil {
		return domain.Page{}, err
	}
	s.record(ctx, "search", in, len(page.Items))
	return page, nil
}

// normalize validates the filter spec and applies deployment bounds
func (s *Svc) normalize(in domain.FilterSpec) (domain.FilterSpec, error) {
	if !in.ResultType.Valid() {
		return in, perr.InvalidArgf("result type must be one of job, helper, all")
	}
	if in.PageSize == 0 {
		in.PageSize = s.cfg.DefaultPageSize
	}
	if in.PageSize < 0 {
		return in, perr.InvalidArgf("page size must be positive")
	}
	if in.PageSize > s.cfg.MaxPageSize {
		return in, perr.InvalidArgf("page size must be at most %d", s.cfg.MaxPageSize)
	}
	if in.Cursor != nil && in.Cursor.UpdatedAt.IsZero() {
		return in, perr.InvalidArgf("cursor carries a zero resume key")
	}
	return in, nil
}

// single serves a one-collection query
func (s *Svc) single(ctx context.Context, in domain.FilterSpec) (domain.Page, error) {
	kind := domain.KindJob
	if in.ResultType == domain.ResultHelpers {
		kind = domain.KindHelper
	}
	rows, err := s.fetch(ctx, kind, in)
	if err != nil {
		return domain.Page{}, err
	}

	// A full page means the stream may continue; the continuation key is
	// taken before the keyword predicate so resuming never skips rows
	var cursor *domain.Cursor
	if len(rows) == in.PageSize {
		cursor = domain.EncodeCursor(rows)
	}

	items := domain.FilterKeyword(rows, domain.KeywordPredicate(in.SearchTerm))
	return domain.Page{Items: items, Cursor: cursor}, nil
}

// merged serves an "all" query across both collections
//
// Both collections are fetched concurrently with the SAME cursor and page
// size (their sort-key domains are comparable by construction), concatenated,
// sorted by the global order and truncated to PageSize. The continuation
// cursor is derived from the last item of the truncated merged sequence, so
// every resumed page re-queries both collections
func (s *Svc) merged(ctx context.Context, in domain.FilterSpec, filterBeforeTruncate bool) (domain.Page, error) {
	var (
		wg      sync.WaitGroup
		jobs    []domain.Listing
		helpers []domain.Listing
		jobErr  error
		helpErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		jobs, jobErr = s.fetch(ctx, domain.KindJob, in)
	}()
	go func() {
		defer wg.Done()
		helpers, helpErr = s.fetch(ctx, domain.KindHelper, in)
	}()
	wg.Wait()
	if jobErr != nil {
		return domain.Page{}, jobErr
	}
	if helpErr != nil {
		return domain.Page{}, helpErr
	}

	candidates := make([]domain.Listing, 0, len(jobs)+len(helpers))
	candidates = append(candidates, jobs...)
	candidates = append(candidates, helpers...)
	domain.SortListings(candidates)

	truncated := candidates
	if len(truncated) > in.PageSize {
		truncated = truncated[:in.PageSize]
	}
	var cursor *domain.Cursor
	if len(truncated) == in.PageSize {
		cursor = domain.EncodeCursor(truncated)
	}

	pred := domain.KeywordPredicate(in.SearchTerm)
	items := truncated
	if filterBeforeTruncate {
		// universal search filters the untruncated candidate set
		items = domain.FilterKeyword(candidates, pred)
	} else {
		items = domain.FilterKeyword(truncated, pred)
	}
	return domain.Page{Items: items, Cursor: cursor}, nil
}

// fetch runs the store adapter for one collection
func (s *Svc) fetch(ctx context.Context, kind domain.Kind, in domain.FilterSpec) ([]domain.Listing, error) {
	rows, err := s.Repo.List(ctx, repo.PageQuery{
		Kind:        kind,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Province:    in.Province,
		After:       in.Cursor,
		Limit:       in.PageSize,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "listings fetch")
	}
	return rows, nil
}

func (s *Svc) record(ctx context.Context, surface string, in domain.FilterSpec, results int) {
	if s.rec == nil {
		return
	}
	s.rec.Record(ctx, RecordInput{Surface: surface, Filter: in, Results: results})
}
