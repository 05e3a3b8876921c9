package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

type Benchmark struct {
	Warmup      int
	Attempts    int
	ClearCaches bool
}

func clearCaches() error {
	switch runtime.GOOS {
	case "linux":
		if err := exec.Command("sync").Run(); err != nil {
			return err
		}
		if err := exec.Command("sh", "-c", "echo 3 | sudo tee /proc/sys/vm/drop_caches").Run(); err != nil {
			return err
		}
		return nil
	case "darwin":
		if err := exec.Command("sync").Run(); err != nil {
			return err
		}
		if err := exec.Command("purge").Run(); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("unable to clear caches for platform '%v'", runtime.GOOS)
}

func (b *Benchmark) clearCachesIfNeeded() error {
	if !b.ClearCaches {
		return nil
	}
	Logger.Info("clear caches")
	return clearCaches()
}

// Run measures the workload over Attempts runs after Warmup unmeasured runs.
// It returns the total measured time, the output of the last attempt and the
// number of attempts that actually completed.
func (b *Benchmark) Run(name string, workload func() (*QueryResult, error)) (float64, *QueryResult, int, error) {
	if b.Attempts < 1 {
		return 0, nil, 0, fmt.Errorf("benchmark for %v requires at least one attempt, got %v", name, b.Attempts)
	}
	for i := 0; i < b.Warmup; i++ {
		Logger.Infof("running warmup #%v/%v for %v", i+1, b.Warmup, name)
		if _, err := workload(); err != nil {
			return 0, nil, 0, fmt.Errorf("warmup #%v failed: %w", i, err)
		}
	}
	total, completed := 0.0, 0
	var result *QueryResult
	for i := 0; i < b.Attempts; i++ {
		if err := b.clearCachesIfNeeded(); err != nil {
			return 0, nil, completed, err
		}
		Logger.Infof("running workload #%v/%v for %v", i+1, b.Attempts, name)

		start := time.Now()
		current, err := workload()
		elapsed := time.Since(start)

		if err != nil {
			return 0, nil, completed, fmt.Errorf("run #%v failed: %w", i, err)
		}
		total += elapsed.Seconds()
		completed++
		result = current
	}
	return total, result, completed, nil
}
