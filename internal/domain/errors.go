package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput         = errors.New("empty document: no text content found in the scanned document")
	ErrNoHeaderRecognized = errors.New("invalid document format: no sign-in sheet header recognized")
	ErrNoNamesMarker      = errors.New("invalid document format: missing employee names section")
	ErrNoDateFound        = errors.New("no valid dates found in the document")
	ErrDateMismatch       = errors.New("multiple dates found in document that do not match")
	ErrNoRecordsFound     = errors.New("no valid worker records found; ensure the document contains employee names and times")

	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidDateFormat  = errors.New("invalid date format; allowed: us, iso")
	ErrInvalidTime        = errors.New("invalid time, expected HH:MM or HHMM")
	ErrTooManyPages       = errors.New("too many pages in one request")
	ErrSelectedDateFormat = errors.New("invalid selected date format, expected YYYY-MM-DD")
	ErrSelectedDateDiffer = errors.New("scanned document date does not match selected date")
)

var kindSentinels = map[ErrorKind]error{
	ErrorKindEmptyInput:         ErrEmptyInput,
	ErrorKindNoHeaderRecognized: ErrNoHeaderRecognized,
	ErrorKindNoNamesMarker:      ErrNoNamesMarker,
	ErrorKindNoneFound:          ErrNoDateFound,
	ErrorKindMismatched:         ErrDateMismatch,
	ErrorKindNoRecordsFound:     ErrNoRecordsFound,
}

// ParseError is a hard failure of a sheet parse. It matches the sentinel for its
// Kind under errors.Is.
type ParseError struct {
	Kind ErrorKind
	// Date is the document date when it was already established.
	Date string
	// Primary and Others are set for ErrorKindMismatched.
	Primary string
	Others  []string
	// Page is the 1-based page that failed in a multi-page parse, 0 otherwise.
	Page     int
	Warnings []string
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind}
}

// NewMismatchError creates an ErrorKindMismatched ParseError.
func NewMismatchError(primary string, others []string) *ParseError {
	return &ParseError{Kind: ErrorKindMismatched, Primary: primary, Others: others}
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrorKindMismatched:
		msg = fmt.Sprintf("%s: primary date: %s; mismatched dates: %s; ensure all pages are from the same date",
			ErrDateMismatch, e.Primary, strings.Join(e.Others, ", "))
	default:
		if s, ok := kindSentinels[e.Kind]; ok {
			msg = s.Error()
		} else {
			msg = string(e.Kind)
		}
	}
	if e.Page > 0 {
		return fmt.Sprintf("page %d: %s", e.Page, msg)
	}
	return msg
}

// Is reports whether target is the sentinel error for e.Kind.
func (e *ParseError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}
