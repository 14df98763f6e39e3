package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"signsheet/internal/config"
	"signsheet/internal/domain"
	"signsheet/internal/service"
	"signsheet/internal/sheet"
)

type options struct {
	dateFormat string
	pretty     bool
	review     bool
	verbose    bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "parsesheet [page ...]",
		Short: "Parse sign-in sheet OCR text into attendance records",
		Long: `Reads the OCR text of a sign-in sheet, one file per page, or stdin when no
files are given, and prints the parsed result as JSON. A sheet that cannot be
parsed still prints its result, with the error set, and exits with status 1.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := readPages(stdin, args)
			if err != nil {
				return err
			}
			return runParse(cmd.Context(), stdout, pages, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dateFormat, "date-format", "", "Document date format (us or iso); defaults to SIGNSHEET_PARSER_DATE_FORMAT")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")
	cmd.Flags().BoolVar(&opts.review, "review", false, "Print the review and display projection instead of the raw result")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log parsing progress to stderr")

	cmd.AddCommand(newAdjustCmd(stdout))
	return cmd
}

func newAdjustCmd(stdout io.Writer) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "adjust TIME_IN TIME_OUT",
		Short: "Normalize a clock-in/clock-out pair as the edit screen does",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewSheetService(sheet.NewEngine(sheet.Options{}), service.SheetServiceConfig{})
			out, err := svc.AdjustTimes(service.AdjustTimesInput{TimeIn: args[0], TimeOut: args[1]})
			if err != nil {
				return err
			}
			return writeJSON(stdout, out, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	return cmd
}

// errParseFailed marks a parse whose failed result was already printed.
var errParseFailed = errors.New("sheet could not be parsed")

func runParse(ctx context.Context, stdout io.Writer, pages []string, opts options) error {
	if !opts.verbose {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine := sheet.NewEngine(sheet.Options{
		DateFormat: cfg.Parser.DateFormat,
		MinYear:    cfg.Parser.MinYear,
		MaxYear:    cfg.Parser.MaxYear,
	})
	svc := service.NewSheetService(engine, service.SheetServiceConfig{
		DateFormat:  cfg.Parser.DateFormat,
		MaxPages:    cfg.Parser.MaxPages,
		Concurrency: cfg.Parser.Concurrency,
	})

	format := domain.DateFormat(opts.dateFormat)
	var result *domain.ParseResult
	if len(pages) == 1 {
		result, err = svc.Parse(ctx, service.ParseInput{Text: pages[0], DateFormat: format})
	} else {
		result, err = svc.ParsePages(ctx, service.ParsePagesInput{Pages: pages, DateFormat: format})
	}

	var pe *domain.ParseError
	switch {
	case errors.As(err, &pe):
		if werr := writeJSON(stdout, domain.FailedResult(pe), opts.pretty); werr != nil {
			return werr
		}
		return fmt.Errorf("%w: %s", errParseFailed, pe.Kind)
	case err != nil:
		return err
	}

	if opts.review {
		return writeJSON(stdout, svc.Review(service.ReviewInput{
			Date:       result.Date,
			Records:    result.Records,
			Warnings:   result.Warnings,
			SortByName: true,
		}), opts.pretty)
	}
	return writeJSON(stdout, result, opts.pretty)
}

func readPages(stdin io.Reader, paths []string) ([]string, error) {
	if len(paths) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []string{string(b)}, nil
	}

	pages := make([]string, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading page %s: %w", p, err)
		}
		pages = append(pages, string(b))
	}
	return pages, nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
