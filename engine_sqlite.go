package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// EngineSqlite runs experiments on an in-memory sqlite database. sqlite has no
// parquet reader, so files are decoded with the arrow parquet reader and
// inserted in a single transaction.
type EngineSqlite struct {
	db *sql.DB
}

func NewEngineSqlite() (*EngineSqlite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	// the in-memory database is visible only on the connection that created
	// it, the pool must not grow past one
	db.SetMaxOpenConns(1)
	return &EngineSqlite{db: db}, nil
}

func (e *EngineSqlite) Name() string { return "sqlite" }

func (e *EngineSqlite) Load(ctx context.Context, path string, table string) (int64, error) {
	parquet, err := ReadParquet(ctx, path)
	if err != nil {
		return 0, err
	}
	definitions := make([]string, 0, len(parquet.Columns))
	placeholders := make([]string, 0, len(parquet.Columns))
	for _, column := range parquet.Columns {
		definitions = append(definitions, fmt.Sprintf("%q %v", column.Name, column.Affinity))
		placeholders = append(placeholders, "?")
	}
	_, err = e.db.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %q (%v)", table, strings.Join(definitions, ", ")))
	if err != nil {
		return 0, fmt.Errorf("%w: sqlite rejected schema of %v: %v", ErrLoad, path, err)
	}
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %q VALUES (%v)", table, strings.Join(placeholders, ", ")))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer stmt.Close()
	for _, row := range parquet.Rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("%w: failed to insert row of %v: %v", ErrLoad, path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return int64(len(parquet.Rows)), nil
}

func (e *EngineSqlite) Query(ctx context.Context, query string) (*QueryResult, error) {
	return materialize(e.db.QueryContext(ctx, query))
}

func (e *EngineSqlite) Close() error { return e.db.Close() }
