package database

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of *pgxpool.Pool the stores and health check use. Every
// store function issues exactly one statement through it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

var _ DB = (*pgxpool.Pool)(nil)

// Statement is one call observed by FakeDB.
type Statement struct {
	Method string
	SQL    string
	Args   []any
}

// FakeDB dispatches to the matching *Fn and records every statement. A call
// without a configured Fn panics with the offending SQL.
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()

	mu         sync.Mutex
	statements []Statement
}

func (f *FakeDB) record(method, sql string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statements = append(f.statements, Statement{Method: method, SQL: sql, Args: args})
}

// Statements returns a copy of what has been issued so far.
func (f *FakeDB) Statements() []Statement {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Statement, len(f.statements))
	copy(out, f.statements)
	return out
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record("Exec", sql, args)
	if f.ExecFn == nil {
		panic("FakeDB: unexpected Exec: " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record("Query", sql, args)
	if f.QueryFn == nil {
		panic("FakeDB: unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.record("QueryRow", sql, args)
	if f.QueryRowFn == nil {
		panic("FakeDB: unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
