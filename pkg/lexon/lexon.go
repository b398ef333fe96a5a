// Package lexon analyzes legal documents: it extracts text from uploaded
// files, splits the text into clauses with a deterministic pattern engine
// (or an optional LLM path), and persists the results.
package lexon

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognilaw/lexon/pkg/lexon/clause"
	"github.com/cognilaw/lexon/pkg/lexon/extract"
	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
	"github.com/cognilaw/lexon/pkg/lexon/store"
)

// Method names accepted by AnalyzeRequest.
const (
	MethodLocal = "local"
	MethodLLM   = "llm"
)

// RawClause is a (name, content) pair produced by an external extraction
// path before deterministic enrichment.
type RawClause struct {
	Name    string
	Content string
}

// LLMExtractor is the optional model-backed clause extraction path.
type LLMExtractor interface {
	ExtractClauses(ctx context.Context, text string) ([]RawClause, error)
}

// Uploader pushes original document bytes to remote storage.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

// Lexon is the document analysis facade.
type Lexon struct {
	store    store.Store
	text     extract.TextExtractor
	engine   *clause.Extractor
	llm      LLMExtractor
	uploader Uploader
}

// Options configures a Lexon instance. Store, LLM and Uploader are
// optional; Text defaults to an extraction service with a 50 MB cap.
type Options struct {
	Store    store.Store
	Text     extract.TextExtractor
	LLM      LLMExtractor
	Uploader Uploader
}

// New creates a Lexon instance with the given dependencies.
func New(opts Options) (*Lexon, error) {
	engine, err := clause.NewExtractor()
	if err != nil {
		return nil, fmt.Errorf("build clause extractor: %w", err)
	}
	text := opts.Text
	if text == nil {
		text = extract.New(50)
	}
	return &Lexon{
		store:    opts.Store,
		text:     text,
		engine:   engine,
		llm:      opts.LLM,
		uploader: opts.Uploader,
	}, nil
}

// Close cleanly shuts down the instance.
func (l *Lexon) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

// HasLLM reports whether the model-backed extraction path is configured.
func (l *Lexon) HasLLM() bool { return l.llm != nil }

// AnalyzeRequest describes one document analysis call.
type AnalyzeRequest struct {
	Filename string
	Data     []byte

	// Method selects the extraction path, MethodLocal (default) or
	// MethodLLM.
	Method string

	// Types filters the simple by-type view; empty means every taxonomy
	// type plus any unclassified clauses.
	Types []string

	// Upload pushes the original bytes to remote storage when an
	// uploader is configured.
	Upload bool
}

// Analysis is the result of one document analysis.
type Analysis struct {
	ID        string
	Filename  string
	Method    string
	TextLen   int
	Pages     int
	CreatedAt time.Time

	// Clauses is the detailed view in source order.
	Clauses []clause.Clause

	// ByType is the simple view: clause contents keyed by type name.
	ByType map[string][]string

	// RemoteKey is the storage key of the uploaded original, when
	// requested.
	RemoteKey string
}

// Analyze runs extraction, clause analysis and persistence for one
// document. The call is all-or-nothing: any internal failure surfaces as
// an error with no partial result.
func (l *Lexon) Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, error) {
	if len(req.Data) == 0 {
		return Analysis{}, fmt.Errorf("%w: empty document", internalerr.ErrInvalidInput)
	}

	doc, err := l.text.Extract(ctx, req.Filename, req.Data)
	if err != nil {
		return Analysis{}, err
	}

	method := req.Method
	if method == "" {
		method = MethodLocal
	}

	var clauses []clause.Clause
	switch method {
	case MethodLocal:
		clauses, err = l.engine.Clauses(doc.Text)
		if err != nil {
			return Analysis{}, err
		}
	case MethodLLM:
		if l.llm == nil {
			return Analysis{}, internalerr.ErrLLMUnavailable
		}
		raw, err := l.llm.ExtractClauses(ctx, doc.Text)
		if err != nil {
			return Analysis{}, fmt.Errorf("llm extraction: %w", err)
		}
		clauses = make([]clause.Clause, 0, len(raw))
		for _, r := range raw {
			clauses = append(clauses, l.engine.Enrich(clause.Clause{Name: r.Name, Content: r.Content}))
		}
	default:
		return Analysis{}, fmt.Errorf("%w: unknown method %q", internalerr.ErrInvalidInput, method)
	}

	result := Analysis{
		ID:        ulid.Make().String(),
		Filename:  req.Filename,
		Method:    method,
		TextLen:   len(doc.Text),
		Pages:     doc.Pages,
		CreatedAt: time.Now().UTC(),
		Clauses:   clauses,
		ByType:    l.projectByType(clauses, req.Types),
	}

	if req.Upload && l.uploader != nil {
		key, err := l.uploader.Upload(ctx, req.Filename, req.Data)
		if err != nil {
			return Analysis{}, fmt.Errorf("upload original: %w", err)
		}
		result.RemoteKey = key
	}

	if l.store != nil {
		if err := l.store.SaveAnalysis(ctx, toStored(result)); err != nil {
			return Analysis{}, fmt.Errorf("persist analysis: %w", err)
		}
	}

	return result, nil
}

// Get returns a stored analysis by ID.
func (l *Lexon) Get(ctx context.Context, id string) (Analysis, bool, error) {
	if l.store == nil {
		return Analysis{}, false, internalerr.ErrStoreUnavailable
	}
	stored, found, err := l.store.GetAnalysis(ctx, id)
	if err != nil || !found {
		return Analysis{}, found, err
	}
	return l.fromStored(stored), true, nil
}

// List returns stored analyses, newest first.
func (l *Lexon) List(ctx context.Context, limit int) ([]Analysis, error) {
	if l.store == nil {
		return nil, internalerr.ErrStoreUnavailable
	}
	stored, err := l.store.ListAnalyses(ctx, limit)
	if err != nil {
		return nil, err
	}
	results := make([]Analysis, 0, len(stored))
	for _, s := range stored {
		results = append(results, l.fromStored(s))
	}
	return results, nil
}

// projectByType mirrors the extractor's by-type projection for clauses
// that are already extracted, so the simple view and the detailed view
// always come from the same pass.
func (l *Lexon) projectByType(clauses []clause.Clause, types []string) map[string][]string {
	grouped := l.engine.GroupByType(clauses)

	target := types
	all := len(target) == 0
	if all {
		target = clause.TypeNames()
	}

	result := make(map[string][]string, len(target)+1)
	for _, name := range target {
		contents := []string{}
		for _, c := range grouped[name] {
			contents = append(contents, c.Content)
		}
		result[name] = contents
	}
	if all {
		if unclassified := grouped[clause.Unclassified]; len(unclassified) > 0 {
			contents := make([]string, 0, len(unclassified))
			for _, c := range unclassified {
				contents = append(contents, c.Content)
			}
			result[clause.Unclassified] = contents
		}
	}
	return result
}

func toStored(a Analysis) store.Analysis {
	stored := store.Analysis{
		ID:        a.ID,
		Filename:  a.Filename,
		Method:    a.Method,
		TextLen:   a.TextLen,
		Pages:     a.Pages,
		CreatedAt: a.CreatedAt,
		Clauses:   make([]store.Clause, 0, len(a.Clauses)),
	}
	for i, c := range a.Clauses {
		stored.Clauses = append(stored.Clauses, store.Clause{
			Seq:           i,
			Name:          c.Name,
			Content:       c.Content,
			Type:          c.Type,
			SectionNumber: c.SectionNumber,
			PageReference: c.PageReference,
		})
	}
	return stored
}

func (l *Lexon) fromStored(s store.Analysis) Analysis {
	a := Analysis{
		ID:        s.ID,
		Filename:  s.Filename,
		Method:    s.Method,
		TextLen:   s.TextLen,
		Pages:     s.Pages,
		CreatedAt: s.CreatedAt,
		Clauses:   make([]clause.Clause, 0, len(s.Clauses)),
	}
	for _, c := range s.Clauses {
		a.Clauses = append(a.Clauses, clause.Clause{
			Name:          c.Name,
			Content:       c.Content,
			Type:          c.Type,
			SectionNumber: c.SectionNumber,
			PageReference: c.PageReference,
		})
	}
	a.ByType = l.projectByType(a.Clauses, nil)
	return a
}
