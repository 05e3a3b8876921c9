package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configPath := StringEnv("BENCHMARK_CONFIG", "config.yaml")
	config, err := LoadConfig(configPath)
	if err != nil {
		Logger.Fatalf("failed to load config %v: %v", configPath, err)
	}
	config.Warmup = IntEnv("BENCHMARK_WARMUP", config.Warmup)
	config.Attempts = IntEnv("BENCHMARK_ATTEMPTS", config.Attempts)
	if config.Attempts < 1 {
		Logger.Fatalf("attempts must be positive, got %v", config.Attempts)
	}
	if config.Warmup < 0 {
		Logger.Fatalf("warmup must be non-negative, got %v", config.Warmup)
	}

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	duckdb, err := NewEngineDuckdb()
	if err != nil {
		Logger.Fatalf("failed to initialize duckdb engine: %v", err)
	}
	defer duckdb.Close()
	sqlite, err := NewEngineSqlite()
	if err != nil {
		Logger.Fatalf("failed to initialize sqlite engine: %v", err)
	}
	defer sqlite.Close()

	system := NewSystem(config, []Engine{duckdb, sqlite})
	if err := system.Run(context.Background()); err != nil {
		Logger.Fatalf("benchmark failed: %v", err)
	}

	if err := RenderReport(os.Stdout, info, system.Measurements(), system.Mismatches()); err != nil {
		Logger.Fatalf("failed to render report: %v", err)
	}

	if csvPath := StringEnv("BENCHMARK_CSV", ""); csvPath != "" {
		if err := WriteCsv(csvPath, system.Measurements()); err != nil {
			Logger.Fatalf("failed to write csv report %v: %v", csvPath, err)
		}
		Logger.Infof("wrote csv report to %v", csvPath)
	}

	if resultsPath := StringEnv("BENCHMARK_RESULTS_DB", ""); resultsPath != "" {
		storage := Storage{Path: resultsPath}
		db, err := storage.Connect()
		if err != nil {
			Logger.Fatalf("failed to open results database %v: %v", resultsPath, err)
		}
		defer db.Close()
		err = storage.InitResultsDb(db, map[string]any{
			"config":   configPath,
			"arch":     info.Arch,
			"hostname": info.Hostname,
			"platform": info.Platform,
			"ram":      info.RAM,
			"cpu":      info.CPUCount,
			"freq":     info.CPUFreq,
		})
		if err != nil {
			Logger.Fatalf("failed to initialize results database %v: %v", resultsPath, err)
		}
		if err := storage.UpdateBenchmarkDb(db, system.Measurements()); err != nil {
			Logger.Fatalf("failed to store measurements in %v: %v", resultsPath, err)
		}
		Logger.Infof("stored %v measurements in %v", len(system.Measurements()), resultsPath)
	}
}
