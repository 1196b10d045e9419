// Package main provides a performance benchmarking tool for the esgscore CLI.
// It generates profile files of increasing size, runs the batch and check commands
// against each of them several times, treating the first successful run as cold and
// averaging the rest as warm, and writes a CSV summary for performance analysis.
//
// Prerequisites:
// - esgscore binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where generated profiles and exports are written (default: a temp dir)
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/esgscore/schema"
	"gopkg.in/yaml.v3"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Profiles int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   []int
}

// sectors are cycled through when generating profiles.
var sectors = []string{
	"Technology & IT", "Manufacturing", "Textiles & Apparel", "Pharmaceuticals",
	"Renewable Energy", "Food Processing", "Automotive", "Logistics",
}

var certifications = []string{"ISO 14001", "SA8000", "ZDHC", "B Corp", "LEED", "GOTS", "Carbon Trust", "Fair Trade"}

func main() {
	workDir := ""
	switch len(os.Args) {
	case 1:
		dir, err := os.MkdirTemp("", "esgscore-benchmark-*")
		if err != nil {
			fmt.Printf("Cannot create work dir: %v\n", err)
			os.Exit(1)
		}
		workDir = dir
	case 2:
		workDir = os.Args[1]
	default:
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes:   []int{10, 1000, 10000, 50000},
	}

	if _, err := exec.LookPath("esgscore"); err != nil {
		fmt.Printf("Prerequisites check failed: esgscore binary not found in PATH\n")
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// generateProfiles writes a profiles file with n pseudo-random investors.
// The seed is fixed so repeated benchmarks score the same inputs.
func generateProfiles(path string, n int) error {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	doc := struct {
		Profiles []schema.InvestorProfile `yaml:"profiles"`
	}{Profiles: make([]schema.InvestorProfile, n)}

	for i := range n {
		certs := make([]string, 0, 3)
		for range rng.IntN(4) {
			certs = append(certs, certifications[rng.IntN(len(certifications))])
		}
		doc.Profiles[i] = schema.InvestorProfile{
			Name:                   fmt.Sprintf("Investor %05d", i),
			Sector:                 sectors[i%len(sectors)],
			Certifications:         certs,
			HasETP:                 rng.IntN(2) == 0,
			HasSolarPower:          rng.IntN(2) == 0,
			GreenCoverPercent:      float64(rng.IntN(60)),
			FemaleWorkforcePercent: float64(rng.IntN(70)),
			SafetyIncidents:        rng.IntN(10),
			EmployeeCount:          rng.IntN(5000),
			AnnualEnergyKWh:        float64(rng.IntN(5_000_000)),
			HasRenewableEnergy:     rng.IntN(3) == 0,
			InvestmentSize:         float64(rng.IntN(500)),
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// runBenchmarks executes all benchmark suites across the configured sizes
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %v timeout, %d runs each\n", len(config.Sizes), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		profilesPath := filepath.Join(config.WorkDir, fmt.Sprintf("profiles_%d.yaml", size))
		if err := generateProfiles(profilesPath, size); err != nil {
			return nil, fmt.Errorf("cannot generate %d profiles: %w", size, err)
		}
		fmt.Printf("Benchmarking %d profiles\n", size)

		suites := []struct {
			command string
			args    []string
			marker  string
		}{
			{command: "batch", args: []string{"batch", "--profiles", profilesPath, "--limit", "25"}, marker: "Evaluation completed in"},
			{command: "batch-json", args: []string{"batch", "--profiles", profilesPath, "--limit", "1000", "--output", "json", "--output-file", filepath.Join(config.WorkDir, "batch.json")}, marker: "Wrote JSON"},
			{command: "batch-parquet", args: []string{"batch", "--profiles", profilesPath, "--limit", "1000", "--output", "parquet", "--output-file", filepath.Join(config.WorkDir, "batch.parquet")}, marker: "Wrote Parquet"},
			{command: "check", args: []string{"check", "--profiles", profilesPath, "--min-rating", "C", "--min-overall", "0"}, marker: "All profiles passed"},
		}
		for _, s := range suites {
			results = append(results, runBenchmarkSuite(config, size, s.command, s.args, s.marker))
		}
	}
	return results, nil
}

// runBenchmarkSuite runs one command several times and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, size int, command string, args []string, marker string) BenchmarkResult {
	fmt.Printf("  %s (%d runs)\n", command, config.Runs)
	coldTime, warmTimes := runBenchmark(config, args, marker)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)
	return BenchmarkResult{Profiles: size, Command: command, ColdTime: coldTimeStr, WarmTime: warmAvg}
}

// runBenchmark executes an esgscore command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string, marker string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()
		cmd := exec.Command("esgscore", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && strings.Contains(string(output), marker) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/esgscore_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"profiles", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{fmt.Sprint(result.Profiles), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"batch", "batch-json", "batch-parquet", "check"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %6d profiles: Cold: %s, Warm: %s\n", result.Profiles, result.ColdTime, result.WarmTime)
			}
		}
	}
}
