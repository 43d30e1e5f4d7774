package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection in a (id text, doc jsonb) table and
// matches filters with jsonb containment, which mirrors the equality and
// list-membership semantics of a document database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Collection(name string) Collection {
	return &pgCollection{pool: s.pool, table: name}
}

type pgCollection struct {
	pool  *pgxpool.Pool
	table string
}

func (c *pgCollection) InsertOne(ctx context.Context, doc Doc) error {
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return errors.New("docstore: document has no id")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: encode document: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, c.table)
	_, err = c.pool.Exec(ctx, query, id, string(data))
	return err
}

func (c *pgCollection) FindOne(ctx context.Context, q Query) (Doc, error) {
	var args []any
	where, err := whereSQL(q, &args)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY doc->>'created_at', id LIMIT 1`, c.table, where)

	var raw []byte
	err = c.pool.QueryRow(ctx, query, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeDoc(raw)
}

func (c *pgCollection) FindMany(ctx context.Context, q Query, limit int) ([]Doc, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	var args []any
	where, err := whereSQL(q, &args)
	if err != nil {
		return nil, err
	}
	args = append(args, limit)

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s ORDER BY doc->>'created_at', id LIMIT $%d`,
		c.table, where, len(args))

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Doc
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		doc, err := decodeDoc(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (c *pgCollection) UpdateOne(ctx context.Context, q Query, patch Patch) (int64, error) {
	var args []any
	where, err := whereSQL(q, &args)
	if err != nil {
		return 0, err
	}

	expr := "doc"
	for field, value := range patch.Push {
		data, err := json.Marshal(value)
		if err != nil {
			return 0, fmt.Errorf("docstore: encode push value: %w", err)
		}
		args = append(args, []string{field})
		pathIdx := len(args)
		args = append(args, field)
		fieldIdx := len(args)
		args = append(args, string(data))
		valueIdx := len(args)
		// Non-array or missing fields start over as an empty list, the
		// same as the memory implementation.
		expr = fmt.Sprintf("jsonb_set(%s, $%d, coalesce(CASE WHEN jsonb_typeof(doc->$%d) = 'array' THEN doc->$%d END, '[]'::jsonb) || $%d::jsonb)",
			expr, pathIdx, fieldIdx, fieldIdx, valueIdx)
	}
	if len(patch.Set) > 0 {
		data, err := json.Marshal(patch.Set)
		if err != nil {
			return 0, fmt.Errorf("docstore: encode patch: %w", err)
		}
		args = append(args, string(data))
		expr = fmt.Sprintf("(%s) || $%d::jsonb", expr, len(args))
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = %s WHERE id = (SELECT id FROM %s WHERE %s LIMIT 1)`,
		c.table, expr, c.table, where)

	tag, err := c.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (c *pgCollection) DeleteOne(ctx context.Context, q Query) (int64, error) {
	var args []any
	where, err := whereSQL(q, &args)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = (SELECT id FROM %s WHERE %s LIMIT 1)`,
		c.table, c.table, where)

	tag, err := c.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func whereSQL(q Query, args *[]any) (string, error) {
	clauses := q.clauses()
	parts := make([]string, 0, len(clauses))
	for _, f := range clauses {
		data, err := json.Marshal(containment(f))
		if err != nil {
			return "", fmt.Errorf("docstore: encode filter: %w", err)
		}
		*args = append(*args, string(data))
		parts = append(parts, fmt.Sprintf("doc @> $%d::jsonb", len(*args)))
	}
	return "(" + strings.Join(parts, " OR ") + ")", nil
}

// containment rewrites a Filter into the jsonb document whose containment in
// a stored doc is equivalent to the filter matching. Contains values become
// single-element arrays: {"members": ["u1"]} is contained by any doc whose
// members list includes "u1".
func containment(f Filter) map[string]any {
	m := make(map[string]any, len(f))
	for k, v := range f {
		if c, ok := v.(containsValue); ok {
			m[k] = []any{c.value}
		} else {
			m[k] = v
		}
	}
	return m
}

func decodeDoc(raw []byte) (Doc, error) {
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("docstore: decode document: %w", err)
	}
	return doc, nil
}
