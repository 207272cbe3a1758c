// Command outline batch-classifies documents: every PDF or line-record
// JSON file in the input directory produces a <name>.json outline in the
// output directory.
//
// Usage:
//
//	outline -in ./input -out ./output
//	outline -config outline.yaml
//
// One failing document never stops the batch; its output file carries the
// standardized error shape instead.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/model"
)

type config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

func defaultBatchConfig() config {
	return config{
		Input:    "./input",
		Output:   "./output",
		Workers:  4,
		LogLevel: "info",
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "outline:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := defaultBatchConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	in := flag.String("in", "", "input directory or single document")
	out := flag.String("out", "", "output directory")
	workers := flag.Int("workers", 0, "number of documents classified concurrently")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
	}
	if *in != "" {
		cfg.Input = *in
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	logger := newLogger(cfg.LogLevel)

	files, err := inputFiles(cfg.Input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no documents found in %s", cfg.Input)
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("starting batch", "documents", len(files), "workers", cfg.Workers)

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				processDocument(path, cfg.Output, logger)
			}
		}()
	}
	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	logger.Info("batch complete", "documents", len(files))
	return nil
}

func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// inputFiles lists the documents to classify: the file itself for a
// single-file input, otherwise every .pdf and .json directly inside the
// input directory, sorted by name.
func inputFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".json":
			files = append(files, filepath.Join(input, entry.Name()))
		}
	}
	return files, nil
}

// processDocument classifies one document and writes its outline. Failures
// are contained: the output file gets the standardized error shape and the
// batch moves on.
func processDocument(path, outputDir string, logger *slog.Logger) {
	result := classifyDocument(path, logger)

	data, err := result.MarshalIndent()
	if err != nil {
		logger.Error("encoding result", "document", path, "error", err)
		return
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outputDir, base+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		logger.Error("writing result", "document", path, "error", err)
		return
	}

	if result.Error != "" {
		logger.Warn("classified with error", "document", path, "error", result.Error)
		return
	}
	logger.Info("classified", "document", path, "title", result.Title, "headings", len(result.Outline))
}

func classifyDocument(path string, logger *slog.Logger) model.Result {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("reading document", "document", path, "error", err)
			return model.ErrorResult("invalid input data")
		}
		result, _ := outline.FromRecordsJSON(data).WithLogger(logger).Classify()
		return result
	}

	result, err := outline.Open(path).WithLogger(logger).Classify()
	if err != nil {
		logger.Error("extracting document", "document", path, "error", err)
	}
	return result
}
