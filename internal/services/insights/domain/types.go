// Package domain defines core types and interfaces for search insights
package domain

import (
	"context"
	"time"
)

// Event is one observed listing query, stored columnar for aggregation
type Event struct {
	ID         string
	Surface    string // "query" or "search"
	ResultType string
	Category   string
	Province   string
	Keyword    string
	Results    int
	CreatedAt  time.Time
}

// TopKeywordsInput bounds the popular-keyword aggregation
type TopKeywordsInput struct {
	Days  int `json:"days" validate:"omitempty,min=1,max=90"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// TopKeywordRow is one aggregated keyword
type TopKeywordRow struct {
	Keyword  string `json:"keyword"`
	Searches uint64 `json:"searches"`
}

// WriterPort records events, best effort
type WriterPort interface {
	Write(ctx context.Context, ev Event) error
}

// QueryPort serves aggregations over recorded events
type QueryPort interface {
	TopKeywords(ctx context.Context, in TopKeywordsInput) ([]TopKeywordRow, error)
}
