// Package domain defines core types and interfaces for marketplace listings
package domain

import "time"

// Kind discriminates the two listing collections
type Kind string

// Listing kinds
const (
	KindJob    Kind = "job"
	KindHelper Kind = "helper"
)

// ResultType selects which collections a query reads
type ResultType string

// Result types accepted by FilterSpec
const (
	ResultJobs    ResultType = "job"
	ResultHelpers ResultType = "helper"
	ResultAll     ResultType = "all"
)

// Valid reports whether rt is one of the three accepted values
func (rt ResultType) Valid() bool {
	switch rt {
	case ResultJobs, ResultHelpers, ResultAll:
		return true
	}
	return false
}

// FilterAll is the wildcard value for structured filters
const FilterAll = "all"

// Listing is the shared shape of both collection variants
// Ordering key is (IsPinned desc, UpdatedAt desc) with ID as the stable tie-break
type Listing struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	Province    string    `json:"province"`
	Location    string    `json:"location"`
	IsPinned    bool      `json:"is_pinned"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FilterSpec describes one listing query
// Structured filters are pushed down to the store, SearchTerm is applied post-fetch
type FilterSpec struct {
	ResultType  ResultType
	Category    string // FilterAll or a concrete category
	SubCategory string
	Province    string
	SearchTerm  string
	PageSize    int
	Cursor      *Cursor // nil means start from the beginning
}

// WantsKind reports whether the filter spec covers the given collection
func (f FilterSpec) WantsKind(k Kind) bool {
	switch f.ResultType {
	case ResultAll:
		return true
	case ResultJobs:
		return k == KindJob
	case ResultHelpers:
		return k == KindHelper
	}
	return false
}

// Page is one slice of an ordered result stream
// A nil Cursor signals that no further pages exist
type Page struct {
	Items  []Listing `json:"items"`
	Cursor *Cursor   `json:"cursor"`
}
