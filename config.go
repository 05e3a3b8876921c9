package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func IntEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

type ExperimentConfig struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Table          string `yaml:"table"`
	Query          string `yaml:"query"`
	MatchOnlyCount bool   `yaml:"match_only_count"`
}

// Tables splits the comma separated table declaration ("orders, lineitem").
func (e *ExperimentConfig) Tables() []string {
	tables := make([]string, 0)
	for _, table := range strings.Split(e.Table, ",") {
		if trimmed := strings.TrimSpace(table); trimmed != "" {
			tables = append(tables, trimmed)
		}
	}
	return tables
}

type Config struct {
	DataPath    string             `yaml:"data_path"`
	Tables      []string           `yaml:"tables"`
	Experiments []ExperimentConfig `yaml:"experiments"`
	Warmup      int                `yaml:"warmup"`
	Attempts    int                `yaml:"attempts"`
	ClearCaches bool               `yaml:"clear_caches"`
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if config.Attempts == 0 {
		config.Attempts = 1
	}
	if config.DataPath == "" {
		return nil, fmt.Errorf("%w: data_path is required", ErrConfiguration)
	}
	if len(config.Tables) == 0 {
		return nil, fmt.Errorf("%w: tables are required", ErrConfiguration)
	}
	if config.Attempts < 1 {
		return nil, fmt.Errorf("%w: attempts must be positive", ErrConfiguration)
	}
	if config.Warmup < 0 {
		return nil, fmt.Errorf("%w: warmup must be non-negative", ErrConfiguration)
	}
	declared := make(map[string]bool, len(config.Tables))
	for _, table := range config.Tables {
		declared[table] = true
	}
	names := make(map[string]bool, len(config.Experiments))
	for i := range config.Experiments {
		experiment := &config.Experiments[i]
		if experiment.Name == "" {
			return nil, fmt.Errorf("%w: experiment #%v has no name", ErrConfiguration, i)
		}
		if names[experiment.Name] {
			return nil, fmt.Errorf("%w: duplicate experiment name %v", ErrConfiguration, experiment.Name)
		}
		names[experiment.Name] = true
		if experiment.Query == "" {
			return nil, fmt.Errorf("%w: experiment %v has no query", ErrConfiguration, experiment.Name)
		}
		if len(experiment.Tables()) == 0 {
			return nil, fmt.Errorf("%w: experiment %v declares no tables", ErrConfiguration, experiment.Name)
		}
		for _, table := range experiment.Tables() {
			if !declared[table] {
				return nil, fmt.Errorf("%w: experiment %v references unknown table %v", ErrConfiguration, experiment.Name, table)
			}
		}
	}
	return &config, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return ParseConfig(data)
}
