// Package outline derives a document title and hierarchical outline
// (levels H1-H6) from PDF files or pre-extracted line records.
//
// Basic usage:
//
//	result, err := outline.Open("document.pdf").Classify()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// From records produced by an external extractor:
//
//	result, err := outline.FromRecordsJSON(data).Classify()
//
// With options:
//
//	result, err := outline.Open("report.pdf").
//	    WithLogger(logger).
//	    WithConfig(cfg).
//	    Classify()
//
// Classification is best-effort and heuristic: documents without
// consistent typographic signaling may yield an empty or partial outline.
// Content-level failures are reported inside the result's Error field
// rather than as a Go error; Classify returns an error only for I/O
// problems. For lower-level access the classify and extract packages are
// also available.
package outline

import (
	"log/slog"

	"github.com/tsawler/outline/classify"
	"github.com/tsawler/outline/extract"
	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// Analyzer is a fluent builder for one classification run. Configure it
// with the With* methods, then call a terminal operation like Classify or
// JSON. An Analyzer is single-use: build a fresh one per document.
type Analyzer struct {
	filename string
	records  []model.Record
	jsonData []byte

	config     classify.Config
	extractCfg extract.Config
}

// Open prepares an Analyzer that reads line records from the PDF at
// filename.
//
// Example:
//
//	result, err := outline.Open("document.pdf").Classify()
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename:   filename,
		config:     classify.DefaultConfig(),
		extractCfg: extract.DefaultConfig(),
	}
}

// FromRecords prepares an Analyzer over already-extracted line records.
func FromRecords(records []model.Record) *Analyzer {
	return &Analyzer{
		records:    records,
		config:     classify.DefaultConfig(),
		extractCfg: extract.DefaultConfig(),
	}
}

// FromRecordsJSON prepares an Analyzer over a JSON array of line records,
// the wire format produced by external extractors.
func FromRecordsJSON(data []byte) *Analyzer {
	return &Analyzer{
		jsonData:   data,
		config:     classify.DefaultConfig(),
		extractCfg: extract.DefaultConfig(),
	}
}

// WithConfig replaces the classification parameters.
func (a *Analyzer) WithConfig(config classify.Config) *Analyzer {
	a.config = config
	return a
}

// WithLexicon sets the word-recognition capability used by the
// text-quality filter.
func (a *Analyzer) WithLexicon(lx lexicon.Lexicon) *Analyzer {
	a.config.Lexicon = lx
	return a
}

// WithLogger routes per-stage diagnostics to the given logger.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	a.config.Logger = logger
	return a
}

// WithExtraction replaces the PDF extraction parameters. Only meaningful
// for Analyzers created with Open.
func (a *Analyzer) WithExtraction(config extract.Config) *Analyzer {
	a.extractCfg = config
	return a
}

// Classify runs the pipeline and returns the document title and outline.
// The returned error covers I/O failures only; content-level failures
// (empty input, nothing heading-like) appear in the result's Error field
// with an empty title and outline, mirroring the wire format.
func (a *Analyzer) Classify() (model.Result, error) {
	records := a.records

	if records == nil && a.jsonData != nil {
		parsed, err := model.ParseRecords(a.jsonData)
		if err != nil {
			return model.ErrorResult(err.Error()), nil
		}
		records = parsed
	}

	if records == nil && a.filename != "" {
		extracted, err := extract.NewWithConfig(a.extractCfg).File(a.filename)
		if err != nil {
			return model.ErrorResult("invalid input data"), err
		}
		records = extracted
	}

	return classify.NewWithConfig(a.config).Classify(records), nil
}

// JSON runs Classify and encodes the result as indented JSON.
func (a *Analyzer) JSON() ([]byte, error) {
	result, err := a.Classify()
	if err != nil {
		return nil, err
	}
	return result.MarshalIndent()
}

// Must wraps a call returning (T, error) and panics on error. Intended for
// scripts and tests where error handling would be cumbersome.
//
// Example:
//
//	result := outline.Must(outline.Open("document.pdf").Classify())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
