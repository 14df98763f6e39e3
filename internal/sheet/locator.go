package sheet

import (
	"regexp"

	"signsheet/internal/domain"
)

// Header phrasings that identify a supported sheet.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)SIGN\s*IN\s*SHEET`),
	regexp.MustCompile(`(?i)ATTENDANCE\s*SHEET`),
	regexp.MustCompile(`(?i)TIME\s*SHEET`),
	regexp.MustCompile(`(?i)DAILY\s*ATTENDANCE`),
}

// Section markers. The earliest line matching any of them opens the window.
var sectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bNAMES\b`),
	regexp.MustCompile(`(?i)\bNAME\b`),
	regexp.MustCompile(`(?i)\bEMPLOYEES?\b`),
	regexp.MustCompile(`(?i)\bWORKERS?\b`),
	regexp.MustCompile(`(?i)\bSTAFF\b`),
	regexp.MustCompile(`(?i)\bPERSONNEL\b`),
}

var timeInHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)TIME\s*IN`),
	regexp.MustCompile(`(?i)CLOCK\s*IN`),
	regexp.MustCompile(`(?i)CHECK\s*IN`),
	regexp.MustCompile(`(?i)IN\s*TIME`),
}

var timeOutHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)TIME\s*OUT`),
	regexp.MustCompile(`(?i)CLOCK\s*OUT`),
	regexp.MustCompile(`(?i)CHECK\s*OUT`),
	regexp.MustCompile(`(?i)OUT\s*TIME`),
}

// Window is the half-open range [Start, End) of lines that hold worker entries.
type Window struct {
	Start int
	End   int
}

// Len returns the number of lines in the window.
func (w Window) Len() int { return w.End - w.Start }

// HasHeader reports whether text contains a recognized sheet header.
func HasHeader(text string) bool {
	return matchAny(headerPatterns, text)
}

// Locate finds the worker-listing window in lines. It fails with
// ErrorKindNoNamesMarker when no section marker is present.
func Locate(lines []string) (Window, error) {
	marker := firstMatch(sectionMarkers, lines)
	if marker < 0 {
		return Window{}, domain.NewParseError(domain.ErrorKindNoNamesMarker)
	}

	start := marker + 1
	if start < len(lines) && matchAny(timeInHeaders, lines[start]) {
		start++
	}
	if start < len(lines) && matchAny(timeOutHeaders, lines[start]) {
		start++
	}
	return Window{Start: start, End: len(lines)}, nil
}

func firstMatch(patterns []*regexp.Regexp, lines []string) int {
	for i, l := range lines {
		if matchAny(patterns, l) {
			return i
		}
	}
	return -1
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
