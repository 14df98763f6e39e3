package sheet

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"signsheet/internal/domain"
	"signsheet/internal/timeutil"
)

// Checker drops duplicate and inconsistent candidates. Only accepted records
// join the seen sets, so the first acceptable occurrence of an id or name is
// the one kept. A Checker is not safe for concurrent use.
type Checker struct {
	seenIDs   map[int]bool
	seenNames map[string]bool
	fold      cases.Caser
}

// NewChecker returns a Checker with empty seen sets.
func NewChecker() *Checker {
	return &Checker{
		seenIDs:   make(map[int]bool),
		seenNames: make(map[string]bool),
		fold:      cases.Fold(),
	}
}

// Check filters candidates in order, returning the accepted records and one
// warning per dropped candidate.
func (c *Checker) Check(cands []Candidate) ([]domain.AttendanceRecord, []string) {
	records := make([]domain.AttendanceRecord, 0, len(cands))
	var warnings []string
	for i := range cands {
		if w := c.accept(&cands[i]); w != "" {
			warnings = append(warnings, w)
			continue
		}
		records = append(records, toRecord(&cands[i]))
	}
	return records, warnings
}

// CheckRecords runs the same checks over records that were already accepted
// elsewhere, e.g. the concatenated pages of one sheet.
func CheckRecords(records []domain.AttendanceRecord) ([]domain.AttendanceRecord, []string) {
	cands := make([]Candidate, len(records))
	for i := range records {
		cands[i] = fromRecord(&records[i])
	}
	return NewChecker().Check(cands)
}

// accept validates one candidate and returns the warning when it is dropped.
func (c *Checker) accept(cand *Candidate) string {
	cand.Valid = false
	name := strings.TrimSpace(cand.Name)

	if cand.ID != nil && c.seenIDs[*cand.ID] {
		return fmt.Sprintf("Worker ID %d appears more than once. Please check for duplicate entries.", *cand.ID)
	}
	if name == "" {
		return missingNameWarning(cand.ID)
	}
	if !isName(name) {
		return invalidNameWarning(name)
	}
	key := c.nameKey(name)
	if c.seenNames[key] {
		return fmt.Sprintf("Worker name %q appears more than once. Please check for duplicate entries.", name)
	}
	if cand.TimeOut != "" && cand.TimeIn == "" {
		return fmt.Sprintf("Worker %q has a clock-out time but no clock-in time. Please add the clock-in time.", name)
	}
	if cand.TimeIn != "" && cand.TimeOut != "" {
		in, okIn := timeutil.Minutes(cand.TimeIn)
		out, okOut := timeutil.Minutes(cand.TimeOut)
		if okIn && okOut && out <= in {
			return fmt.Sprintf("Worker %q has clock-out time (%s) before clock-in time (%s). Please check the times.",
				name, cand.TimeOut, cand.TimeIn)
		}
	}

	if cand.ID != nil {
		c.seenIDs[*cand.ID] = true
	}
	c.seenNames[key] = true
	cand.Name = name
	cand.Valid = true
	return ""
}

// nameKey folds case, composes accents and collapses inner whitespace.
func (c *Checker) nameKey(name string) string {
	return c.fold.String(norm.NFC.String(strings.Join(strings.Fields(name), " ")))
}

func invalidNameWarning(name string) string {
	return fmt.Sprintf("Worker name %q contains invalid characters. Please use only letters, spaces, hyphens, apostrophes, and dots.", name)
}

func missingNameWarning(id *int) string {
	if id == nil {
		return "A worker entry has no name. Please add the worker's name."
	}
	return fmt.Sprintf("Worker ID %d has no name. Please add the worker's name.", *id)
}

func toRecord(c *Candidate) domain.AttendanceRecord {
	rec := domain.AttendanceRecord{Name: c.Name, Page: c.Page}
	if c.ID != nil {
		id := *c.ID
		rec.ID = &id
	}
	if c.TimeIn != "" {
		t := c.TimeIn
		rec.TimeIn = &t
	}
	if c.TimeOut != "" {
		t := c.TimeOut
		rec.TimeOut = &t
	}
	return rec
}

func fromRecord(r *domain.AttendanceRecord) Candidate {
	c := Candidate{ID: r.ID, Name: r.Name, Page: r.Page}
	if r.TimeIn != nil {
		c.TimeIn = *r.TimeIn
	}
	if r.TimeOut != nil {
		c.TimeOut = *r.TimeOut
	}
	return c
}
