package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Cursor is the resume token for keyset pagination
// It carries the sort key of the last item returned by the previous page and
// resumes strictly after that key in (IsPinned desc, UpdatedAt desc) order
type Cursor struct {
	UpdatedAt time.Time `json:"u"`
	IsPinned  bool      `json:"p"`
}

// Equal reports whether two cursors carry the same resume key
func (c Cursor) Equal(o Cursor) bool {
	return c.IsPinned == o.IsPinned && c.UpdatedAt.Equal(o.UpdatedAt)
}

// Token renders the cursor as an opaque wire token
// Clients must echo it back unmodified, never construct or inspect it
func (c Cursor) Token() string {
	b, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(b)
}

// ParseCursor decodes a wire token back into a Cursor
// The empty token means "start from the beginning" and yields nil, nil
func ParseCursor(tok string) (*Cursor, error) {
	if tok == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("cursor token: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("cursor token: %w", err)
	}
	if c.UpdatedAt.IsZero() {
		return nil, fmt.Errorf("cursor token: zero resume key")
	}
	return &c, nil
}

// EncodeCursor builds the continuation cursor from the last item of a page
// Returns nil for an empty page
func EncodeCursor(items []Listing) *Cursor {
	if len(items) == 0 {
		return nil
	}
	last := items[len(items)-1]
	return &Cursor{UpdatedAt: last.UpdatedAt, IsPinned: last.IsPinned}
}

// Less is the global listing order: pinned first, then most recently updated,
// with ID descending as the stable tie-break
func Less(a, b Listing) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}

// SortListings orders items by the global listing order in place
func SortListings(items []Listing) {
	sort.SliceStable(items, func(i, j int) bool { return Less(items[i], items[j]) })
}
