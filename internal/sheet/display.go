package sheet

import (
	"fmt"
	"sort"
	"strings"

	"signsheet/internal/domain"
)

// Display annotates each record with its completeness status. It does not
// modify result. With sortByName the workers are ordered case-insensitively
// by name, as on the review screen.
func Display(result *domain.ParseResult, sortByName bool) *domain.DisplayDocument {
	doc := &domain.DisplayDocument{
		Date:         result.Date,
		TotalWorkers: len(result.Records),
		Workers:      make([]domain.DisplayRecord, 0, len(result.Records)),
	}
	for i := range result.Records {
		rec := result.Records[i]
		if rec.HasTimeIn() || rec.HasTimeOut() {
			doc.WorkersWithTimeData++
		}
		doc.Workers = append(doc.Workers, domain.DisplayRecord{AttendanceRecord: rec, Status: rec.Status()})
	}
	if sortByName {
		sort.SliceStable(doc.Workers, func(i, j int) bool {
			return strings.ToLower(doc.Workers[i].Name) < strings.ToLower(doc.Workers[j].Name)
		})
	}
	return doc
}

// Review checks a parsed document before it is submitted. Every parse
// warning is reported as an error so the user resolves it first.
func Review(result *domain.ParseResult) *domain.Review {
	errs := []string{}
	if result.Date == "" {
		errs = append(errs, "Document date not found")
	}
	if len(result.Records) == 0 {
		errs = append(errs, "No worker records found")
	}

	missing := 0
	for i := range result.Records {
		if result.Records[i].Status() == domain.RecordStatusMissingTimeData {
			missing++
		}
	}
	if missing > 0 {
		errs = append(errs, fmt.Sprintf("Found %d workers with missing time data", missing))
	}
	errs = append(errs, result.Warnings...)

	return &domain.Review{IsValid: len(errs) == 0, Errors: errs}
}
