// Package timeutil converts clock strings found on sign-in sheets into
// canonical 24-hour "HH:MM" form.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	digitsPattern = regexp.MustCompile(`^\d{3,4}$`)
	strictPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	inputFilter   = regexp.MustCompile(`[^0-9:]`)
)

// IsClock reports whether s has the H:MM or HH:MM shape, without range checks.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// IsDigitRun reports whether s is a bare HMM or HHMM digit run, without range checks.
func IsDigitRun(s string) bool {
	return digitsPattern.MatchString(s)
}

// Normalize converts H:MM, HH:MM, HMM or HHMM into "HH:MM".
// It returns false when the token has another shape, the hour is 24 or more,
// or the minute is 60 or more.
func Normalize(token string) (string, bool) {
	token = strings.TrimSpace(token)

	var hh, mm string
	switch {
	case clockPattern.MatchString(token):
		m := clockPattern.FindStringSubmatch(token)
		hh, mm = m[1], m[2]
	case digitsPattern.MatchString(token):
		padded := strings.Repeat("0", 4-len(token)) + token
		hh, mm = padded[:2], padded[2:]
	default:
		return "", false
	}

	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h >= 24 || m >= 60 {
		return "", false
	}
	return format(h, m), true
}

// Minutes returns the minutes since midnight of a time accepted by Normalize.
func Minutes(t string) (int, bool) {
	n, ok := Normalize(t)
	if !ok {
		return 0, false
	}
	h, _ := strconv.Atoi(n[:2])
	m, _ := strconv.Atoi(n[3:])
	return h*60 + m, true
}

// RollForwardIfNeeded corrects an end time that was probably written on a
// 12-hour clock. When end is earlier than start and end's hour is before noon,
// 12 hours are added to end. Any other input, including unparseable times, is
// returned unchanged.
//
// This is an advisory correction for edit screens; the parser never applies it.
func RollForwardIfNeeded(start, end string) string {
	if start == "" || end == "" {
		return end
	}
	s, ok := Minutes(start)
	if !ok {
		return end
	}
	e, ok := Minutes(end)
	if !ok {
		return end
	}
	if e < s && e/60 < 12 {
		return format(e/60+12, e%60)
	}
	return end
}

// IsValidHHMM reports whether s is a colon-form time between 0:00 and 23:59.
func IsValidHHMM(s string) bool {
	return strictPattern.MatchString(s)
}

// AutoFormat inserts the colon into a bare digit run: "645" becomes "6:45"
// and "1530" becomes "15:30". Other input is returned as is.
func AutoFormat(s string) string {
	if !digitsPattern.MatchString(s) {
		return s
	}
	return s[:len(s)-2] + ":" + s[len(s)-2:]
}

// FilterInput strips everything except digits and colons and caps the result
// at five characters.
func FilterInput(s string) string {
	s = inputFilter.ReplaceAllString(s, "")
	if len(s) > 5 {
		s = s[:5]
	}
	return s
}

func format(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}
