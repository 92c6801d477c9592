// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the stores use. pgxmock satisfies it,
// which keeps the stores testable without a live database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// likePattern wraps a free-text search term for a case-insensitive
// substring match.
func likePattern(search string) string {
	return "%" + search + "%"
}

// nullableID carries an optional row exclusion into a uuid parameter.
// Create paths pass no exclusion; an empty string cannot be encoded as
// uuid, so the absent case travels as NULL.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
