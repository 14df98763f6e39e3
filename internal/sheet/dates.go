package sheet

import (
	"regexp"
	"strconv"
	"time"

	"signsheet/internal/domain"
)

var datePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)

// FoundDate is a calendar-valid date located in the text.
type FoundDate struct {
	Raw  string
	Date time.Time
}

// ExtractDates returns the unique calendar-valid dates in text in order of
// first appearance. Two spellings of the same day ("5/6/2024", "05/06/2024")
// count once.
func ExtractDates(text string, minYear, maxYear int) []FoundDate {
	var found []FoundDate
	seen := make(map[time.Time]bool)
	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		d, ok := calendarDate(m[1], m[2], m[3], minYear, maxYear)
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		found = append(found, FoundDate{Raw: m[0], Date: d})
	}
	return found
}

// DocumentDate enforces the one-sheet-one-day rule over the dates found and
// returns the document date formatted with layout.
func DocumentDate(dates []FoundDate, layout string) (string, error) {
	if len(dates) == 0 {
		return "", domain.NewParseError(domain.ErrorKindNoneFound)
	}
	primary := dates[0].Date.Format(layout)
	if len(dates) > 1 {
		others := make([]string, 0, len(dates)-1)
		for _, d := range dates[1:] {
			others = append(others, d.Date.Format(layout))
		}
		return "", domain.NewMismatchError(primary, others)
	}
	return primary, nil
}

// calendarDate validates month/day/year strings. Years outside
// [minYear, maxYear] are rejected, so two-digit years never pass the default range.
func calendarDate(ms, ds, ys string, minYear, maxYear int) (time.Time, bool) {
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)
	year, _ := strconv.Atoi(ys)

	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < minYear || year > maxYear {
		return time.Time{}, false
	}
	if day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// daysInMonth uses day zero of the following month, which time.Date
// normalizes to the last day of m.
func daysInMonth(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
