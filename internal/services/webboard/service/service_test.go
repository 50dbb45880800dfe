package service

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "hirehub/internal/platform/errors"
	"hirehub/internal/platform/store"

	"hirehub/internal/modkit/repokit"
	listdom "hirehub/internal/services/listings/domain"
	"hirehub/internal/services/webboard/domain"
	"hirehub/internal/services/webboard/repo"
)

type nopTx struct{}

func (nopTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return nil, nil
}
func (nopTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return nil, nil
}
func (nopTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row { return nil }
func (t nopTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(t)
}

// fakeTopics serves a canned slice head-first and records inputs
type fakeTopics struct {
	rows     []domain.Topic
	err      error
	category string
	after    *listdom.Cursor
	limit    int
}

func (f *fakeTopics) List(ctx context.Context, category string, after *listdom.Cursor, limit int) ([]domain.Topic, error) {
	f.category, f.after, f.limit = category, after, limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

func newSvc(f *fakeTopics, cfg Config) *Svc {
	bind := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return f })
	return New(nopTx{}, bind, cfg)
}

func topic(id, title string, d int, pinned bool) domain.Topic {
	return domain.Topic{ID: id, Title: title, IsPinned: pinned, UpdatedAt: time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)}
}

func TestListCursorFromPreFilterLastRow(t *testing.T) {
	f := &fakeTopics{rows: []domain.Topic{
		topic("1", "visa runs", 5, true),
		topic("2", "hiring a nanny", 4, false),
		topic("3", "condo parking", 3, false),
	}}
	svc := newSvc(f, Config{})

	p, err := svc.List(context.Background(), domain.ListInput{PageSize: 3, SearchTerm: "nanny"})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Items) != 1 || p.Items[0].ID != "2" {
		t.Fatalf("items = %+v, want just topic 2", p.Items)
	}
	// the continuation key is the last fetched row, not the last match
	if p.Cursor == nil || !p.Cursor.UpdatedAt.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("cursor = %+v, want key of topic 3", p.Cursor)
	}
	if f.limit != 3 {
		t.Fatalf("repo limit = %d, want 3", f.limit)
	}
}

func TestListShortPageEndsStream(t *testing.T) {
	f := &fakeTopics{rows: []domain.Topic{topic("1", "anything", 5, false)}}
	svc := newSvc(f, Config{})

	p, err := svc.List(context.Background(), domain.ListInput{PageSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if p.Cursor != nil {
		t.Fatalf("cursor = %+v, want nil for a short page", p.Cursor)
	}
}

func TestListDefaultsAndBounds(t *testing.T) {
	f := &fakeTopics{}
	svc := newSvc(f, Config{DefaultPageSize: 20, MaxPageSize: 50})
	ctx := context.Background()

	if _, err := svc.List(ctx, domain.ListInput{}); err != nil {
		t.Fatal(err)
	}
	if f.limit != 20 {
		t.Fatalf("default limit = %d, want 20", f.limit)
	}

	for _, size := range []int{-1, 51} {
		_, err := svc.List(ctx, domain.ListInput{PageSize: size})
		if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
			t.Fatalf("PageSize %d: CodeOf(err) = %v, want invalid argument", size, perr.CodeOf(err))
		}
	}
}

func TestListKeywordFoldsTitles(t *testing.T) {
	f := &fakeTopics{rows: []domain.Topic{
		topic("1", "NANNY recommendations", 5, false),
		topic("2", "weekend markets", 4, false),
	}}
	svc := newSvc(f, Config{})

	p, err := svc.List(context.Background(), domain.ListInput{PageSize: 10, SearchTerm: "nanny markets"})
	if err != nil {
		t.Fatal(err)
	}
	// OR across keywords, case folded
	if len(p.Items) != 2 {
		t.Fatalf("items = %+v, want both topics", p.Items)
	}
}

func TestListRepoErrorWrappedAsDB(t *testing.T) {
	f := &fakeTopics{err: errors.New("boom")}
	svc := newSvc(f, Config{})

	_, err := svc.List(context.Background(), domain.ListInput{})
	if perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("CodeOf(err) = %v, want db", perr.CodeOf(err))
	}
}
