package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchmarkRunCountsAttempts(t *testing.T) {
	benchmark := Benchmark{Warmup: 2, Attempts: 3}
	calls := 0
	seconds, result, completed, err := benchmark.Run("test", func() (*QueryResult, error) {
		calls++
		return &QueryResult{Rows: [][]string{{"1"}}}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, calls)
	require.Equal(t, 3, completed)
	require.GreaterOrEqual(t, seconds, 0.0)
	require.Equal(t, [][]string{{"1"}}, result.Rows)
}

func TestBenchmarkRunRejectsZeroAttempts(t *testing.T) {
	benchmark := Benchmark{Attempts: 0}
	calls := 0
	_, result, completed, err := benchmark.Run("test", func() (*QueryResult, error) {
		calls++
		return &QueryResult{}, nil
	})
	require.Error(t, err)
	require.Nil(t, result)
	require.Equal(t, 0, completed)
	require.Equal(t, 0, calls)
}

func TestBenchmarkRunPropagatesError(t *testing.T) {
	benchmark := Benchmark{Attempts: 1}
	boom := errors.New("boom")
	_, _, completed, err := benchmark.Run("test", func() (*QueryResult, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, completed)
}

func TestBenchmarkRunReportsCompletedAttempts(t *testing.T) {
	benchmark := Benchmark{Attempts: 3}
	calls := 0
	_, _, completed, err := benchmark.Run("test", func() (*QueryResult, error) {
		calls++
		if calls == 3 {
			return nil, errors.New("boom")
		}
		return &QueryResult{}, nil
	})
	require.Error(t, err)
	require.Equal(t, 2, completed)
}

func TestBenchmarkWarmupFailureStops(t *testing.T) {
	benchmark := Benchmark{Warmup: 1, Attempts: 3}
	calls := 0
	_, _, completed, err := benchmark.Run("test", func() (*QueryResult, error) {
		calls++
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 0, completed)
}
