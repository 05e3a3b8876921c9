package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// EngineDuckdb runs experiments on an in-memory duckdb database and loads
// parquet files with the native read_parquet scan.
type EngineDuckdb struct {
	db *sql.DB
}

func NewEngineDuckdb() (*EngineDuckdb, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, err
	}
	return &EngineDuckdb{db: db}, nil
}

func (e *EngineDuckdb) Name() string { return "duckdb" }

func (e *EngineDuckdb) Load(ctx context.Context, path string, table string) (int64, error) {
	escaped := strings.ReplaceAll(path, "'", "''")
	_, err := e.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE %q AS SELECT * FROM read_parquet('%v')`, table, escaped))
	if err != nil {
		return 0, fmt.Errorf("%w: duckdb rejected %v: %v", ErrLoad, path, err)
	}
	var rows int64
	err = e.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table)).Scan(&rows)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return rows, nil
}

func (e *EngineDuckdb) Query(ctx context.Context, query string) (*QueryResult, error) {
	return materialize(e.db.QueryContext(ctx, query))
}

func (e *EngineDuckdb) Close() error { return e.db.Close() }
