// Package service contains the webboard index workflows
package service

import (
	"context"
	"strings"

	"hirehub/internal/core/fold"
	"hirehub/internal/modkit/repokit"
	perr "hirehub/internal/platform/errors"
	listdom "hirehub/internal/services/listings/domain"
	"hirehub/internal/services/webboard/domain"
	"hirehub/internal/services/webboard/repo"
)

// Service defines the service contract for the webboard index
type Service interface{ domain.QueryPort }

// Config bounds the index page sizes
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	cfg    Config
}

// New creates a new webboard index service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Svc {
	if db == nil {
		panic("webboard.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("webboard.Service requires a non nil Storage binder")
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 50
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg}
}

// List returns one page of the topic index
// Pagination follows the listing engine's cursor rules: the continuation key
// is the pre-filter last row of a full page, keyword filtering runs after
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.TopicPage, error) {
	if in.PageSize == 0 {
		in.PageSize = s.cfg.DefaultPageSize
	}
	if in.PageSize < 0 {
		return domain.TopicPage{}, perr.InvalidArgf("page size must be positive")
	}
	if in.PageSize > s.cfg.MaxPageSize {
		return domain.TopicPage{}, perr.InvalidArgf("page size must be at most %d", s.cfg.MaxPageSize)
	}

	rows, err := s.Repo.List(ctx, in.Category, in.Cursor, in.PageSize)
	if err != nil {
		return domain.TopicPage{}, perr.Wrap(err, perr.ErrorCodeDB, "webboard list")
	}

	var cursor *listdom.Cursor
	if len(rows) == in.PageSize {
		last := rows[len(rows)-1]
		cursor = &listdom.Cursor{UpdatedAt: last.UpdatedAt, IsPinned: last.IsPinned}
	}

	return domain.TopicPage{Items: filterTopics(rows, in.SearchTerm), Cursor: cursor}, nil
}

// filterTopics applies the OR-of-substrings keyword policy to topic titles
func filterTopics(rows []domain.Topic, term string) []domain.Topic {
	keywords := strings.Fields(fold.Fold(term))
	if len(keywords) == 0 {
		return rows
	}
	out := make([]domain.Topic, 0, len(rows))
	for _, t := range rows {
		title := fold.Fold(t.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
