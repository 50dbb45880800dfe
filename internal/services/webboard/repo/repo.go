// Package repo provides postgres access for the webboard index
package repo

import (
	"context"
	"fmt"
	"strings"

	"hirehub/internal/modkit/repokit"
	"hirehub/internal/platform/store"
	listdom "hirehub/internal/services/listings/domain"
	"hirehub/internal/services/webboard/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the webboard topic store adapter
// List never returns more than limit rows
type Storage interface {
	List(ctx context.Context, category string, after *listdom.Cursor, limit int) ([]domain.Topic, error)
}

type pg struct{ q repokit.Queryer }

// List fetches one keyset page of visible topics
func (s *pg) List(ctx context.Context, category string, after *listdom.Cursor, limit int) ([]domain.Topic, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("webboard repo: non-positive limit %d", limit)
	}

	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			t.id,
			t.title,
			t.category,
			t.author_name,
			t.reply_count,
			t.is_pinned,
			t.updated_at
		FROM webboard_topics t
		WHERE NOT t.is_moderated
	`)

	if category != "" && category != listdom.FilterAll {
		sb.WriteString("  AND t.category = " + arg(category) + "\n")
	}
	if after != nil {
		sb.WriteString("  AND (t.is_pinned, t.updated_at) < (" +
			arg(after.IsPinned) + ", " + arg(after.UpdatedAt) + ")\n")
	}

	sb.WriteString("ORDER BY t.is_pinned DESC, t.updated_at DESC, t.id DESC\nLIMIT " + arg(limit))

	return store.Many(ctx, s.q, scanTopic, sb.String(), args...)
}

func scanTopic(r store.Row) (domain.Topic, error) {
	var t domain.Topic
	err := r.Scan(
		&t.ID,
		&t.Title,
		&t.Category,
		&t.AuthorName,
		&t.ReplyCount,
		&t.IsPinned,
		&t.UpdatedAt,
	)
	return t, err
}
