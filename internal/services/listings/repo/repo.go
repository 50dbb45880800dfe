// Package repo provides postgres access for listings
package repo

import (
	"context"
	"fmt"
	"strings"

	"hirehub/internal/modkit/repokit"
	"hirehub/internal/services/listings/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// PageQuery is one keyset page request against a single collection
// Structured filters are pushed down as indexed equality predicates, the
// search term never reaches the store
type PageQuery struct {
	Kind        domain.Kind
	Category    string // "" or FilterAll means any
	SubCategory string
	Province    string
	After       *domain.Cursor // nil means start from the beginning
	Limit       int
}

// Storage is the listing store adapter
// List never returns more than Limit rows and does not decide whether more
// pages exist; callers infer that from len(rows) == Limit
type Storage interface {
	List(ctx context.Context, q PageQuery) ([]domain.Listing, error)
}

type pg struct{ q repokit.Queryer }

// tables maps a listing kind to its collection, also acting as a whitelist
var tables = map[domain.Kind]string{
	domain.KindJob:    "job_listings",
	domain.KindHelper: "helper_listings",
}

// List implements Storage with a single ordered, bounded keyset query
func (s *pg) List(ctx context.Context, in PageQuery) ([]domain.Listing, error) {
	table, ok := tables[in.Kind]
	if !ok {
		return nil, fmt.Errorf("listings repo: unknown kind %q", in.Kind)
	}
	if in.Limit <= 0 {
		return nil, fmt.Errorf("listings repo: non-positive limit %d", in.Limit)
	}

	// Dynamic WHERE with numbered args
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			l.id,
			l.title,
			l.description,
			l.category,
			l.sub_category,
			l.province,
			l.location,
			l.is_pinned,
			l.updated_at
		FROM ` + table + ` l
		WHERE NOT l.is_expired
			AND NOT l.is_flagged
	`)

	if want(in.Category) {
		sb.WriteString("  AND l.category = " + arg(in.Category) + "\n")
	}
	if want(in.SubCategory) {
		sb.WriteString("  AND l.sub_category = " + arg(in.SubCategory) + "\n")
	}
	if want(in.Province) {
		sb.WriteString("  AND l.province = " + arg(in.Province) + "\n")
	}

	// Keyset resume: strictly after the cursor key in the compound
	// (is_pinned desc, updated_at desc) order. Row comparison is
	// lexicographic, so "after" is a strict tuple less-than
	if in.After != nil {
		sb.WriteString("  AND (l.is_pinned, l.updated_at) < (" +
			arg(in.After.IsPinned) + ", " + arg(in.After.UpdatedAt) + ")\n")
	}

	sb.WriteString("ORDER BY l.is_pinned DESC, l.updated_at DESC, l.id DESC\nLIMIT " + arg(in.Limit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Listing, 0, in.Limit)
	for rows.Next() {
		l := domain.Listing{Kind: in.Kind}
		if err := rows.Scan(
			&l.ID,
			&l.Title,
			&l.Description,
			&l.Category,
			&l.SubCategory,
			&l.Province,
			&l.Location,
			&l.IsPinned,
			&l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// want reports whether a structured filter is a concrete value
func want(v string) bool { return v != "" && v != domain.FilterAll }
