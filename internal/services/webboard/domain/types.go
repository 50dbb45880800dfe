// Package domain defines core types and interfaces for the webboard index
package domain

import (
	"context"
	"time"

	listdom "hirehub/internal/services/listings/domain"
)

// Topic is one discussion-board thread as seen by the index
// The comment tree and topic CRUD live elsewhere; the index is read only
// Ordering key is (IsPinned desc, UpdatedAt desc) with ID as the tie-break,
// the same keyset family the listing engine uses
type Topic struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	AuthorName string    `json:"author_name"`
	ReplyCount int       `json:"reply_count"`
	IsPinned   bool      `json:"is_pinned"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListInput describes one index query
type ListInput struct {
	Category   string // listdom.FilterAll or a concrete category
	SearchTerm string
	PageSize   int
	Cursor     *listdom.Cursor
}

// TopicPage is one slice of the ordered topic stream
type TopicPage struct {
	Items  []Topic         `json:"items"`
	Cursor *listdom.Cursor `json:"cursor"`
}

// QueryPort is the webboard index surface
type QueryPort interface {
	List(ctx context.Context, in ListInput) (TopicPage, error)
}

// ListWire is the wire shape of ListInput
type ListWire struct {
	Category string `json:"category"`
	Q        string `json:"q"`
	PageSize int    `json:"page_size" validate:"omitempty,min=1"`
	Cursor   string `json:"cursor"`
}

// PageWire is the wire shape of TopicPage with an opaque cursor token
type PageWire struct {
	Items  []Topic `json:"items"`
	Cursor string  `json:"cursor,omitempty"`
}

// Wire renders a TopicPage for the wire
func (p TopicPage) Wire() PageWire {
	out := PageWire{Items: p.Items}
	if out.Items == nil {
		out.Items = []Topic{}
	}
	if p.Cursor != nil {
		out.Cursor = p.Cursor.Token()
	}
	return out
}
