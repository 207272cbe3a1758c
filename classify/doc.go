// Package classify turns a flat, ordered list of line elements into a
// document title and a hierarchical outline (levels H1-H6).
//
// It is a best-effort heuristic classifier, not a structural parser:
// documents without consistent typographic signaling may yield an empty or
// partial outline. The pipeline is deterministic and total: it always
// produces a [model.Result] and never panics outward.
//
// # Pipeline
//
// One classification run executes these stages in order, each consuming the
// previous stage's element set:
//
//  1. element normalization (model.NewElement over the raw records)
//  2. header/footer detection and removal ([HeaderFooterDetector])
//  3. text-quality and dominant-font-size filtering
//  4. grouping by formatting signature and spatial proximity
//  5. fragment combination inside groups
//  6. priority scoring
//  7. title selection
//  8. repeated-heading removal
//  9. score-bracket hierarchy assignment
//  10. title/heading order correction
//
// A [Classifier] instance runs exactly one document; create a fresh one per
// document. Stage outcomes are recorded as [StageReport] values: a stage
// that cannot complete degrades to a documented fallback (for example,
// skipping header/footer removal) instead of aborting the run.
//
// # Usage
//
//	c := classify.New()
//	result := c.Classify(records)
//
// The word-recognition heuristics accept any [lexicon.Lexicon]; the default
// configuration uses the embedded word list.
package classify
