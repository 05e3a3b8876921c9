package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var validConfig = `
data_path: data/tpch
tables:
  - orders
  - lineitem
attempts: 3
warmup: 1
experiments:
  - name: Filter and Aggregate
    description: orders placed in 1995
    table: orders
    query: SELECT COUNT(*) FROM orders
  - name: Join
    table: orders, lineitem
    match_only_count: true
    query: SELECT COUNT(*) FROM orders o JOIN lineitem l ON o.o_orderkey = l.l_orderkey
`

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(validConfig))
	require.NoError(t, err)
	require.Equal(t, "data/tpch", config.DataPath)
	require.Equal(t, []string{"orders", "lineitem"}, config.Tables)
	require.Equal(t, 3, config.Attempts)
	require.Equal(t, 1, config.Warmup)
	require.Len(t, config.Experiments, 2)
	require.Equal(t, []string{"orders"}, config.Experiments[0].Tables())
	require.Equal(t, []string{"orders", "lineitem"}, config.Experiments[1].Tables())
	require.True(t, config.Experiments[1].MatchOnlyCount)
}

func TestParseConfigDefaultAttempts(t *testing.T) {
	config, err := ParseConfig([]byte("data_path: data\ntables: [orders]\n"))
	require.NoError(t, err)
	require.Equal(t, 1, config.Attempts)
	require.Equal(t, 0, config.Warmup)
}

func TestParseConfigMissingDataPath(t *testing.T) {
	_, err := ParseConfig([]byte("tables: [orders]\n"))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestParseConfigMissingTables(t *testing.T) {
	_, err := ParseConfig([]byte("data_path: data\n"))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestParseConfigUnknownTable(t *testing.T) {
	_, err := ParseConfig([]byte(`
data_path: data
tables: [orders]
experiments:
  - name: bad
    table: lineitem
    query: SELECT COUNT(*) FROM lineitem
`))
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorContains(t, err, "unknown table lineitem")
}

func TestParseConfigDuplicateExperiment(t *testing.T) {
	_, err := ParseConfig([]byte(`
data_path: data
tables: [orders]
experiments:
  - name: same
    table: orders
    query: SELECT 1
  - name: same
    table: orders
    query: SELECT 2
`))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestParseConfigExperimentWithoutQuery(t *testing.T) {
	_, err := ParseConfig([]byte(`
data_path: data
tables: [orders]
experiments:
  - name: empty
    table: orders
`))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestParseConfigMalformedYaml(t *testing.T) {
	_, err := ParseConfig([]byte("data_path: [unclosed"))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")
	require.ErrorIs(t, err, ErrConfiguration)
}
