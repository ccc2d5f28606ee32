package database

import "context"

// DB is the read-only access surface the matching engine's repositories use.
// The engine holds no persistent state and performs no writes; upstream CRUD
// owns the schema.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
