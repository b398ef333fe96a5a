package store

import (
	"context"
	"time"
)

// Store persists document analyses and their extracted clauses.
//
// GetAnalysis and ListAnalyses both return fully populated analyses:
// every returned Analysis carries its clause rows in source order.
type Store interface {
	Close() error

	SaveAnalysis(ctx context.Context, a Analysis) error
	GetAnalysis(ctx context.Context, id string) (Analysis, bool, error)
	ListAnalyses(ctx context.Context, limit int) ([]Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

// Analysis is one stored document analysis.
type Analysis struct {
	ID        string // ULID, assigned by the caller
	Filename  string
	Method    string // extraction method, "local" or "llm"
	TextLen   int
	Pages     int
	CreatedAt time.Time
	Clauses   []Clause
}

// Clause is a stored clause row. Seq preserves source order within the
// document. Empty Type, SectionNumber or PageReference mean "not
// detected".
type Clause struct {
	Seq           int
	Name          string
	Content       string
	Type          string
	SectionNumber string
	PageReference string
}
