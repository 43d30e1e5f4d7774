package docstore

import "context"

// Collection names. One JSONB table per collection.
const (
	Users           = "users"
	Workspaces      = "workspaces"
	Pages           = "pages"
	DatabaseRecords = "database_records"
)

// MaxLimit caps every FindMany. There is no pagination cursor; callers
// beyond the cap lose rows.
const MaxLimit = 100

// Doc is a schema-flexible document. Values are restricted to JSON types
// (string, float64, bool, []any, map[string]any, nil) — callers should build
// docs through JSON encoding so both store implementations see identical shapes.
type Doc map[string]any

// Filter matches documents by field equality. A value wrapped with Contains
// instead matches membership in a list field.
type Filter map[string]any

func (f Filter) clauses() []Filter { return []Filter{f} }

// Query is a Filter or a disjunction of Filters (AnyOf).
type Query interface {
	clauses() []Filter
}

type anyOf []Filter

func (a anyOf) clauses() []Filter { return a }

// AnyOf matches documents satisfying at least one of the given filters.
func AnyOf(filters ...Filter) Query { return anyOf(filters) }

type containsValue struct {
	value any
}

// Contains matches documents whose list field contains the given value.
func Contains(v any) any { return containsValue{value: v} }

// Patch describes a single-document update. Set merges top-level fields into
// the document; Push appends a value to a list field (creating it if absent).
type Patch struct {
	Set  Doc
	Push Doc
}

type Collection interface {
	// InsertOne stores the document. The doc must carry a string "id".
	InsertOne(ctx context.Context, doc Doc) error
	// FindOne returns the first matching document, or nil if none match.
	FindOne(ctx context.Context, q Query) (Doc, error)
	// FindMany returns matching documents, at most min(limit, MaxLimit);
	// a non-positive limit means MaxLimit.
	FindMany(ctx context.Context, q Query, limit int) ([]Doc, error)
	// UpdateOne patches the first matching document and reports how many
	// matched (0 or 1).
	UpdateOne(ctx context.Context, q Query, patch Patch) (int64, error)
	// DeleteOne removes the first matching document and reports how many
	// were deleted (0 or 1).
	DeleteOne(ctx context.Context, q Query) (int64, error)
}

type Store interface {
	Collection(name string) Collection
}
