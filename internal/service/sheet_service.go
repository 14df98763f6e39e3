package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"signsheet/internal/domain"
	"signsheet/internal/port"
	"signsheet/internal/sheet"
	"signsheet/internal/timeutil"
)

// SheetServiceConfig holds settings for the sheet service.
type SheetServiceConfig struct {
	DateFormat  domain.DateFormat
	MaxPages    int
	Concurrency int
}

// ParseInput is the DTO for parsing one page of OCR text.
type ParseInput struct {
	Text       string            `json:"text"`
	DateFormat domain.DateFormat `json:"date_format"`
}

// ParsePagesInput is the DTO for parsing the pages of one sheet, in order.
type ParsePagesInput struct {
	Pages      []string          `json:"pages" binding:"required,min=1"`
	DateFormat domain.DateFormat `json:"date_format"`
}

// ReviewInput is the DTO for reviewing a parsed document before submission.
type ReviewInput struct {
	Date       string                    `json:"date"`
	Records    []domain.AttendanceRecord `json:"records"`
	Warnings   []string                  `json:"warnings"`
	SortByName bool                      `json:"sort_by_name"`
}

// ReviewOutput pairs the review verdict with the display projection.
type ReviewOutput struct {
	Review  *domain.Review          `json:"review"`
	Display *domain.DisplayDocument `json:"display"`
}

// AdjustTimesInput is the DTO for normalizing an edited time pair.
type AdjustTimesInput struct {
	TimeIn  string `json:"time_in" binding:"required"`
	TimeOut string `json:"time_out" binding:"required"`
}

// AdjustTimesOutput is the normalized time pair.
type AdjustTimesOutput struct {
	TimeIn        string `json:"time_in"`
	TimeOut       string `json:"time_out"`
	RolledForward bool   `json:"rolled_forward"`
}

// SheetService defines the sign-in sheet parsing contract.
type SheetService interface {
	Parse(ctx context.Context, input ParseInput) (*domain.ParseResult, error)
	ParsePages(ctx context.Context, input ParsePagesInput) (*domain.ParseResult, error)
	Review(input ReviewInput) *ReviewOutput
	AdjustTimes(input AdjustTimesInput) (*AdjustTimesOutput, error)
	CheckSelectedDate(scanned, selected string) error
}

type sheetService struct {
	parser port.SheetParser
	cfg    SheetServiceConfig
}

// NewSheetService creates a new SheetService implementation.
func NewSheetService(parser port.SheetParser, cfg SheetServiceConfig) SheetService {
	if cfg.DateFormat == "" {
		cfg.DateFormat = domain.DateFormatUS
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &sheetService{parser: parser, cfg: cfg}
}

func (s *sheetService) format(f domain.DateFormat) (domain.DateFormat, error) {
	if f == "" {
		return s.cfg.DateFormat, nil
	}
	if !domain.ValidDateFormats[f] {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, f)
	}
	return f, nil
}

func (s *sheetService) Parse(ctx context.Context, input ParseInput) (*domain.ParseResult, error) {
	format, err := s.format(input.DateFormat)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := s.parser.ParseWithFormat(input.Text, 1, format)
	if err != nil {
		log.Printf("sheetService.Parse: parse failed: %v", err)
		return nil, err
	}
	log.Printf("sheetService.Parse: parsed %d records for %s (%d warnings)",
		len(result.Records), result.Date, len(result.Warnings))
	return result, nil
}

func (s *sheetService) ParsePages(ctx context.Context, input ParsePagesInput) (*domain.ParseResult, error) {
	format, err := s.format(input.DateFormat)
	if err != nil {
		return nil, err
	}
	if len(input.Pages) == 0 {
		return nil, fmt.Errorf("%w: no pages given", domain.ErrInvalidRequest)
	}
	if s.cfg.MaxPages > 0 && len(input.Pages) > s.cfg.MaxPages {
		return nil, fmt.Errorf("%w: got %d, limit %d", domain.ErrTooManyPages, len(input.Pages), s.cfg.MaxPages)
	}

	results := make([]*domain.ParseResult, len(input.Pages))
	errs := make([]error, len(input.Pages))

	// Every page is parsed so the reported failure is always the first one in
	// page order, not whichever goroutine lost the race.
	var g errgroup.Group
	g.SetLimit(s.cfg.Concurrency)
	for i, text := range input.Pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = s.parser.ParseWithFormat(text, i+1, format)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("sheetService.ParsePages: aborted: %v", err)
		return nil, err
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			pe.Page = i + 1
		}
		log.Printf("sheetService.ParsePages: page %d of %d failed: %v", i+1, len(input.Pages), err)
		return nil, err
	}

	return s.merge(results)
}

// merge concatenates per-page results in page order. All pages must carry the
// same date, and duplicates across pages are dropped the same way as within one.
func (s *sheetService) merge(results []*domain.ParseResult) (*domain.ParseResult, error) {
	primary := results[0].Date
	var others []string
	seen := map[string]bool{primary: true}
	for _, r := range results[1:] {
		if !seen[r.Date] {
			seen[r.Date] = true
			others = append(others, r.Date)
		}
	}
	if len(others) > 0 {
		log.Printf("sheetService.ParsePages: pages disagree on date: %s vs %s", primary, strings.Join(others, ", "))
		return nil, domain.NewMismatchError(primary, others)
	}

	var records []domain.AttendanceRecord
	var warnings []string
	for _, r := range results {
		records = append(records, r.Records...)
		warnings = append(warnings, r.Warnings...)
	}
	records, dropped := sheet.CheckRecords(records)
	warnings = append(warnings, dropped...)

	log.Printf("sheetService.ParsePages: merged %d pages into %d records for %s (%d warnings)",
		len(results), len(records), primary, len(warnings))
	return sheet.Assemble(primary, records, warnings)
}

func (s *sheetService) Review(input ReviewInput) *ReviewOutput {
	result := &domain.ParseResult{
		Date:     input.Date,
		Records:  input.Records,
		Warnings: input.Warnings,
	}
	return &ReviewOutput{
		Review:  sheet.Review(result),
		Display: sheet.Display(result, input.SortByName),
	}
}

func (s *sheetService) AdjustTimes(input AdjustTimesInput) (*AdjustTimesOutput, error) {
	in, ok := timeutil.Normalize(timeutil.FilterInput(input.TimeIn))
	if !ok {
		return nil, fmt.Errorf("%w: time_in %q", domain.ErrInvalidTime, input.TimeIn)
	}
	out, ok := timeutil.Normalize(timeutil.FilterInput(input.TimeOut))
	if !ok {
		return nil, fmt.Errorf("%w: time_out %q", domain.ErrInvalidTime, input.TimeOut)
	}
	adjusted := timeutil.RollForwardIfNeeded(in, out)
	return &AdjustTimesOutput{
		TimeIn:        in,
		TimeOut:       adjusted,
		RolledForward: adjusted != out,
	}, nil
}

func (s *sheetService) CheckSelectedDate(scanned, selected string) error {
	want, err := time.Parse(domain.DateFormatISO.Layout(), selected)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrSelectedDateFormat, selected)
	}
	got, err := parseDocumentDate(scanned)
	if err != nil {
		return fmt.Errorf("%w: scanned date %q", domain.ErrInvalidRequest, scanned)
	}
	if !got.Equal(want) {
		return fmt.Errorf("%w: scanned %s, selected %s", domain.ErrSelectedDateDiffer, scanned, selected)
	}
	return nil
}

// parseDocumentDate accepts a document date in either canonical layout.
func parseDocumentDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormatUS.Layout(), s)
	if err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormatISO.Layout(), s)
}
