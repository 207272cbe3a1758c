package classify

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// Standardized error messages for the unrecoverable input conditions.
const (
	errInvalidInput    = "invalid input data"
	errNoValidElements = "no valid text elements found"
	errNoContent       = "no content elements after header/footer removal"
	errNoHeadingText   = "no heading-level text after filtering"
)

// Config holds the tunable parameters for outline classification. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// BracketWindow is the score span of a hierarchy bracket. Scores
	// within this many points of a bracket's top score share its level.
	BracketWindow float64

	// MaxBracketElements excludes any bracket holding more elements than
	// this from the outline.
	MaxBracketElements int

	// MaxRepeatedHeadings is the occurrence ceiling for a normalized
	// heading text. Text appearing more often than this is removed.
	MaxRepeatedHeadings int

	// InclusionTextLength is the maximum element text length used when
	// deciding whether a lower-ranked bracket still reads as headings.
	InclusionTextLength int

	// MaxTitlePage is the last page a title candidate may start on.
	MaxTitlePage int

	// MaxTitleLength is the longest reconstructed text accepted as a
	// title.
	MaxTitleLength int

	// HeaderFooter configures the header/footer detection pass.
	HeaderFooter HeaderFooterConfig

	// Lexicon answers whether a token reads as a known word during
	// text-quality filtering. Defaults to the built-in word list.
	Lexicon lexicon.Lexicon

	// Logger receives per-stage diagnostics. Defaults to a no-op logger.
	Logger *slog.Logger
}

// DefaultConfig returns the standard classification parameters.
func DefaultConfig() Config {
	return Config{
		BracketWindow:       15,
		MaxBracketElements:  40,
		MaxRepeatedHeadings: 5,
		InclusionTextLength: 50,
		MaxTitlePage:        3,
		MaxTitleLength:      150,
		HeaderFooter:        DefaultHeaderFooterConfig(),
	}
}

// StageStatus describes how a pipeline stage concluded.
type StageStatus string

const (
	// StageOK means the stage ran to completion.
	StageOK StageStatus = "ok"
	// StageDegraded means the stage failed and the pipeline continued
	// with a documented fallback.
	StageDegraded StageStatus = "degraded"
	// StageFailed means the stage failure ended classification.
	StageFailed StageStatus = "failed"
)

// StageReport records the outcome of one pipeline stage.
type StageReport struct {
	Stage  string
	Status StageStatus
	Detail string
}

// Classifier turns an ordered sequence of line records into a document
// title and heading outline. A Classifier carries per-run state; use a
// fresh instance for each document.
type Classifier struct {
	config  Config
	lx      lexicon.Lexicon
	logger  *slog.Logger
	reports []StageReport
}

// New returns a Classifier with the default configuration.
func New() *Classifier {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Classifier with custom parameters. Zero or
// negative limits are replaced by their defaults.
func NewWithConfig(config Config) *Classifier {
	def := DefaultConfig()
	if config.BracketWindow <= 0 {
		config.BracketWindow = def.BracketWindow
	}
	if config.MaxBracketElements <= 0 {
		config.MaxBracketElements = def.MaxBracketElements
	}
	if config.MaxRepeatedHeadings <= 0 {
		config.MaxRepeatedHeadings = def.MaxRepeatedHeadings
	}
	if config.InclusionTextLength <= 0 {
		config.InclusionTextLength = def.InclusionTextLength
	}
	if config.MaxTitlePage <= 0 {
		config.MaxTitlePage = def.MaxTitlePage
	}
	if config.MaxTitleLength <= 0 {
		config.MaxTitleLength = def.MaxTitleLength
	}

	lx := config.Lexicon
	if lx == nil {
		lx = lexicon.NewBasic()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Classifier{config: config, lx: lx, logger: logger}
}

// Report returns the per-stage outcomes of the last Classify call.
func (c *Classifier) Report() []StageReport {
	return c.reports
}

// Classify runs the full pipeline over records and returns the document
// title and outline. It never panics: unrecoverable input conditions
// produce an error-shaped Result, and internal stage failures fall back to
// a degraded state recorded in Report.
func (c *Classifier) Classify(records []model.Record) model.Result {
	c.reports = nil

	if len(records) == 0 {
		return model.ErrorResult(errInvalidInput)
	}

	elements := c.normalize(records)
	if len(elements) == 0 {
		return model.ErrorResult(errNoValidElements)
	}

	elements = c.removeHeadersFooters(elements)
	if len(elements) == 0 {
		return model.ErrorResult(errNoContent)
	}

	elements = c.filterQuality(elements)
	if len(elements) == 0 {
		return model.ErrorResult(errNoHeadingText)
	}

	groups := c.group(elements)
	c.combine(groups)
	groups = rankGroups(groups)

	title, titleGroup := c.pickTitle(groups)

	headingGroups := withoutGroup(groups, titleGroup)
	c.runStage("dedupe", func() {
		headingGroups = removeRepeatedHeadings(headingGroups, c.config.MaxRepeatedHeadings)
	})
	c.runStage("hierarchy", func() {
		assignLevels(headingGroups, c.config.BracketWindow, c.config.MaxBracketElements, c.config.InclusionTextLength)
	})

	titleIndices := make(map[int]bool)
	titlePage := 0
	minTitleIndex := -1
	if titleGroup != nil {
		titlePage = titleGroup.EarliestPage()
		for _, e := range titleGroup.Elements {
			titleIndices[e.Index] = true
			if minTitleIndex < 0 || e.Index < minTitleIndex {
				minTitleIndex = e.Index
			}
		}
	}

	var entries []outlineEntry
	c.runStage("order", func() {
		entries = buildEntries(headingGroups, titleIndices)
		title, entries = correctOrder(title, titlePage, minTitleIndex, entries)
	})

	result := model.NewResult()
	result.Title = title
	result.Outline = resultEntries(entries)
	return result
}

// normalize converts records to elements, coercing malformed fields and
// dropping records with no usable text.
func (c *Classifier) normalize(records []model.Record) []model.Element {
	elements := make([]model.Element, 0, len(records))
	for i, r := range records {
		e, ok := model.NewElement(r, i)
		if !ok {
			continue
		}
		elements = append(elements, e)
	}
	c.report("normalize", StageOK, fmt.Sprintf("%d of %d records usable", len(elements), len(records)))
	return elements
}

// removeHeadersFooters runs header/footer detection. On stage failure the
// elements pass through unfiltered.
func (c *Classifier) removeHeadersFooters(elements []model.Element) []model.Element {
	filtered := elements
	ok := c.runStage("headers-footers", func() {
		d := NewHeaderFooterDetectorWithConfig(c.config.HeaderFooter)
		res := d.Detect(elements)
		filtered = res.Filter(elements)
		c.logger.Debug("header/footer removal",
			"removed", len(elements)-len(filtered),
			"patterns", len(res.Patterns))
	})
	if !ok {
		return elements
	}
	return filtered
}

// filterQuality drops implausible heading text and dominant body-text font
// sizes. On stage failure the elements pass through unfiltered.
func (c *Classifier) filterQuality(elements []model.Element) []model.Element {
	filtered := elements
	ok := c.runStage("quality-filter", func() {
		filtered = filterDominantSizes(filterHeadingText(elements, c.lx))
	})
	if !ok {
		return elements
	}
	return filtered
}

// group clusters elements by formatting signature, falling back to a
// single catch-all group on stage failure.
func (c *Classifier) group(elements []model.Element) []*Group {
	var groups []*Group
	ok := c.runStage("group", func() {
		groups = groupElements(elements)
	})
	if !ok {
		return catchAllGroup(elements)
	}
	return groups
}

// combine merges visually-contiguous fragments within each group. Failure
// leaves groups with their original elements.
func (c *Classifier) combine(groups []*Group) {
	c.runStage("combine", func() {
		combineGroups(groups)
	})
}

// pickTitle selects the document title. Failure means no title.
func (c *Classifier) pickTitle(groups []*Group) (string, *Group) {
	var (
		title string
		tg    *Group
	)
	c.runStage("title", func() {
		title, tg = selectTitle(groups, c.config.MaxTitlePage, c.config.MaxTitleLength)
	})
	return title, tg
}

// runStage executes fn, converting a panic into a degraded stage report so
// the pipeline can continue with a fallback. Returns false on panic.
func (c *Classifier) runStage(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.report(name, StageDegraded, fmt.Sprint(r))
			c.logger.Warn("stage degraded", "stage", name, "cause", r)
			ok = false
		}
	}()
	fn()
	c.report(name, StageOK, "")
	return true
}

func (c *Classifier) report(stage string, status StageStatus, detail string) {
	c.reports = append(c.reports, StageReport{Stage: stage, Status: status, Detail: detail})
}

// withoutGroup returns groups with one group removed, preserving order.
func withoutGroup(groups []*Group, skip *Group) []*Group {
	if skip == nil {
		return groups
	}
	out := make([]*Group, 0, len(groups))
	for _, g := range groups {
		if g == skip {
			continue
		}
		out = append(out, g)
	}
	return out
}
