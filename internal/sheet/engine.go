// Package sheet turns OCR text from a photographed sign-in sheet into
// validated attendance records.
//
// Parsing runs in fixed stages: header and section location, date
// extraction, line tokenizing and grouping, and duplicate/consistency
// checks. Structural problems fail the whole parse with a *domain.ParseError;
// problems with individual entries only drop that entry and add a warning.
//
// An Engine holds no mutable state and may be shared between goroutines.
package sheet

import (
	"strings"

	"signsheet/internal/domain"
)

// Options configures an Engine.
type Options struct {
	DateFormat domain.DateFormat
	MinYear    int
	MaxYear    int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		DateFormat: domain.DateFormatUS,
		MinYear:    2000,
		MaxYear:    2100,
	}
}

// Engine parses sign-in sheet text.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine. Zero-valued fields in opts take their defaults.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.DateFormat == "" {
		opts.DateFormat = def.DateFormat
	}
	if opts.MinYear == 0 {
		opts.MinYear = def.MinYear
	}
	if opts.MaxYear == 0 {
		opts.MaxYear = def.MaxYear
	}
	return &Engine{opts: opts}
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options { return e.opts }

// Parse parses a single page of text, numbering records from page 1.
func (e *Engine) Parse(raw string) (*domain.ParseResult, error) {
	return e.ParsePage(raw, 1)
}

// ParsePage parses a single page of text. startPage is the page number given
// to records until a "Page N" marker says otherwise.
func (e *Engine) ParsePage(raw string, startPage int) (*domain.ParseResult, error) {
	return e.parse(raw, startPage, e.opts.DateFormat)
}

// ParseWithFormat is ParsePage with a per-call date format override.
func (e *Engine) ParseWithFormat(raw string, startPage int, format domain.DateFormat) (*domain.ParseResult, error) {
	if !domain.ValidDateFormats[format] {
		format = e.opts.DateFormat
	}
	return e.parse(raw, startPage, format)
}

func (e *Engine) parse(raw string, startPage int, format domain.DateFormat) (*domain.ParseResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewParseError(domain.ErrorKindEmptyInput)
	}
	if startPage < 1 {
		startPage = 1
	}
	text := cleanText(raw)

	if !HasHeader(text) {
		return nil, domain.NewParseError(domain.ErrorKindNoHeaderRecognized)
	}
	lines := splitLines(text)
	win, err := Locate(lines)
	if err != nil {
		return nil, err
	}

	date, err := DocumentDate(ExtractDates(text, e.opts.MinYear, e.opts.MaxYear), format.Layout())
	if err != nil {
		return nil, err
	}

	cands, warnings := Group(Tokenize(lines[win.Start:win.End]), startPage)
	records, dropped := NewChecker().Check(cands)
	warnings = append(warnings, dropped...)

	return Assemble(date, records, warnings)
}

// Assemble builds the final result, failing with ErrorKindNoRecordsFound
// when no record survived. The warnings are kept on the error.
func Assemble(date string, records []domain.AttendanceRecord, warnings []string) (*domain.ParseResult, error) {
	if warnings == nil {
		warnings = []string{}
	}
	if len(records) == 0 {
		pe := domain.NewParseError(domain.ErrorKindNoRecordsFound)
		pe.Date = date
		pe.Warnings = warnings
		return nil, pe
	}
	return &domain.ParseResult{
		Date:     date,
		Records:  records,
		Warnings: warnings,
	}, nil
}
