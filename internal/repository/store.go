package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Fields is a column-keyed write payload.  Keys that are not in the
// owning store's fillable whitelist are silently dropped before any SQL
// is generated; the whitelist is the only per-entity security boundary
// between client payloads and table columns.
type Fields map[string]any

// Meta describes one page of a paginated listing.  LastPage is
// ceil(total/per_page), so an empty table yields last_page 0.
type Meta struct {
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// Store is the table-agnostic CRUD engine.  One instance is configured
// per entity with the table name and the fillable column set; the row
// type T carries the db tags used to scan results.  It shares the
// injected pool and never closes it.
type Store[T any] struct {
	db       *sqlx.DB
	reader   *sqlx.DB
	table    string
	fillable map[string]struct{}
}

// NewStore builds a store for one table.  The reader handle is marked
// unsafe so SELECT * stays valid when the schema gains columns the row
// type does not map yet.
func NewStore[T any](db *sqlx.DB, table string, fillable []string) *Store[T] {
	allowed := make(map[string]struct{}, len(fillable))
	for _, col := range fillable {
		allowed[col] = struct{}{}
	}
	return &Store[T]{db: db, reader: db.Unsafe(), table: table, fillable: allowed}
}

// Table exposes the configured table name for callers that need to run
// entity-specific queries next to the generic ones.
func (s *Store[T]) Table() string { return s.table }

// FindByID fetches a single row by primary key.  Absence is reported as
// (nil, nil), never as an error.
func (s *Store[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = ? LIMIT 1", s.table)
	if err := s.reader.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindAllBy fetches every row matching one column, unwindowed.  Meant
// for small child collections (an ad's images); listings that can grow
// go through Paginate instead.  The column name is always a code-side
// constant, never client input.
func (s *Store[T]) FindAllBy(ctx context.Context, column string, value any) ([]T, error) {
	rows := []T{}
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", s.table, column)
	if err := s.reader.SelectContext(ctx, &rows, query, value); err != nil {
		return nil, err
	}
	return rows, nil
}

// Paginate returns one bounded window of rows plus paging metadata.
// page and perPage below 1 are clamped to 1, never rejected.
func (s *Store[T]) Paginate(ctx context.Context, page, perPage int) ([]T, Meta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	offset := (page - 1) * perPage

	var total int64
	if err := s.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)); err != nil {
		return nil, Meta{}, err
	}

	rows := []T{}
	query := fmt.Sprintf("SELECT * FROM %s LIMIT ? OFFSET ?", s.table)
	if err := s.reader.SelectContext(ctx, &rows, query, perPage, offset); err != nil {
		return nil, Meta{}, err
	}

	meta := Meta{
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: int(math.Ceil(float64(total) / float64(perPage))),
	}
	return rows, meta, nil
}

// Create inserts the whitelisted subset of fields and returns the new
// row id.  An empty subset is a hard failure and performs no write.
// Columns are emitted in sorted order so generated SQL is stable.
func (s *Store[T]) Create(ctx context.Context, fields Fields) (int64, error) {
	data := s.filterFillable(fields)
	if len(data) == 0 {
		return 0, ErrNoFillableFields
	}

	cols := sortedKeys(data)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = "?"
		args[i] = data[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update sets the whitelisted subset of fields on one row.  An empty
// subset is a valid no-op returning false without touching storage.
// The returned bool reports whether the write affected rows.
func (s *Store[T]) Update(ctx context.Context, id int64, fields Fields) (bool, error) {
	data := s.filterFillable(fields)
	if len(data) == 0 {
		return false, nil
	}

	cols := sortedKeys(data)
	setParts := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		setParts[i] = col + " = ?"
		args = append(args, data[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.table, strings.Join(setParts, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes one row by primary key.  Deleting an absent row is not
// an error; the bool reports whether anything was removed.
func (s *Store[T]) Delete(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store[T]) filterFillable(fields Fields) Fields {
	out := Fields{}
	for col, val := range fields {
		if _, ok := s.fillable[col]; ok {
			out[col] = val
		}
	}
	return out
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
