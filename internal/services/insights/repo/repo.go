// Package repo provides clickhouse access for search insights
package repo

import (
	"context"
	"errors"

	"hirehub/internal/platform/store"
	"hirehub/internal/services/insights/domain"
)

// Storage is the insights event store
type Storage interface {
	Insert(ctx context.Context, ev domain.Event) error
	TopKeywords(ctx context.Context, in domain.TopKeywordsInput) ([]domain.TopKeywordRow, error)
}

// NewCH constructs the ClickHouse-backed storage
func NewCH(ch store.Clickhouse) Storage { return &chStore{ch: ch} }

type chStore struct{ ch store.Clickhouse }

// Insert writes one event row
func (s *chStore) Insert(ctx context.Context, ev domain.Event) error {
	if s.ch == nil {
		return errors.New("insights repo: clickhouse disabled")
	}
	rows := [][]any{{
		ev.ID,
		ev.Surface,
		ev.ResultType,
		ev.Category,
		ev.Province,
		ev.Keyword,
		int32(ev.Results),
		ev.CreatedAt,
	}}
	return s.ch.Insert(ctx, "search_events", rows)
}

// TopKeywords aggregates the most frequent non-empty keywords in a window
func (s *chStore) TopKeywords(ctx context.Context, in domain.TopKeywordsInput) ([]domain.TopKeywordRow, error) {
	if s.ch == nil {
		return nil, errors.New("insights repo: clickhouse disabled")
	}
	const sql = `
SELECT keyword, count() AS searches
FROM search_events
WHERE keyword != ''
	AND created_at >= now() - INTERVAL ? DAY
GROUP BY keyword
ORDER BY searches DESC, keyword ASC
LIMIT ?
`
	rows, err := s.ch.Query(ctx, sql, in.Days, in.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TopKeywordRow
	for rows.Next() {
		var r domain.TopKeywordRow
		if err := rows.Scan(&r.Keyword, &r.Searches); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
