package domain

import (
	"strings"

	"hirehub/internal/core/fold"
)

// KeywordPredicate builds the post-fetch free-text match for a search term
// The term is split on whitespace, a listing matches when ANY keyword is a
// folded substring of ANY of its text fields. OR across keywords is a
// deliberate recall-over-precision choice, not an oversight
// Returns nil when the term has no usable keywords
func KeywordPredicate(term string) func(Listing) bool {
	keywords := strings.Fields(fold.Fold(term))
	if len(keywords) == 0 {
		return nil
	}
	return func(l Listing) bool {
		fields := [...]string{
			fold.Fold(l.Title),
			fold.Fold(l.Description),
			fold.Fold(l.Category),
			fold.Fold(l.SubCategory),
			fold.Fold(l.Location),
			fold.Fold(l.Province),
		}
		for _, kw := range keywords {
			for _, f := range fields {
				if strings.Contains(f, kw) {
					return true
				}
			}
		}
		return false
	}
}

// FilterKeyword applies pred to items, preserving order
// A nil pred returns items untouched
func FilterKeyword(items []Listing, pred func(Listing) bool) []Listing {
	if pred == nil {
		return items
	}
	out := make([]Listing, 0, len(items))
	for _, l := range items {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}
