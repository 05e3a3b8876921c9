package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"strconv"
	"time"

	duckdb "github.com/marcboeker/go-duckdb/v2"
)

type Phase string

const (
	PhaseLoad  Phase = "load"
	PhaseQuery Phase = "query"
)

// Measurement is one timed observation of a load or query operation.
// Load measurements carry the table name, query measurements the experiment name.
type Measurement struct {
	Engine   string
	Name     string
	Phase    Phase
	Seconds  float64
	Rows     int64
	Attempts int
	Failed   bool
	Error    string
}

// QueryResult is a fully materialized result set with every cell rendered as
// text, so that results from different engines can be compared directly.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

type Engine interface {
	Name() string
	Load(ctx context.Context, path string, table string) (int64, error)
	Query(ctx context.Context, query string) (*QueryResult, error)
	Close() error
}

func materialize(rows *sql.Rows, err error) (*QueryResult, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = formatValue(value)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	return result, nil
}

// formatValue normalizes driver-specific scan types: duckdb returns dates as
// time.Time and decimals as duckdb.Decimal, sqlite returns the text and floats
// it was loaded with. Both must render identically.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *big.Int:
		return v.String()
	case duckdb.Decimal:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}
