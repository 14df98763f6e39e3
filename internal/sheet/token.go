package sheet

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"signsheet/internal/timeutil"
)

// TokenKind is the shape of one trimmed line.
type TokenKind int

const (
	// TokenOther is a line with no recognized shape.
	TokenOther TokenKind = iota
	// TokenPageMarker is a "Page N" or "Page N of M" line.
	TokenPageMarker
	// TokenNumber is a bare run of 1 to 4 digits.
	TokenNumber
	// TokenClock is an H:MM or HH:MM time.
	TokenClock
	// TokenName is text made only of name characters.
	TokenName
)

func (k TokenKind) String() string {
	switch k {
	case TokenPageMarker:
		return "page_marker"
	case TokenNumber:
		return "number"
	case TokenClock:
		return "clock"
	case TokenName:
		return "name"
	default:
		return "other"
	}
}

var (
	// The whole line must be the marker, optionally framed by dashes.
	pagePattern   = regexp.MustCompile(`(?i)^[\s\-–—]*Page\s+(\d+)(?:\s+of\s+\d+)?[\s\-–—]*$`)
	numberPattern = regexp.MustCompile(`^\d{1,4}$`)
	// Letters (including accented Latin), combining marks, spaces, hyphens,
	// apostrophes and periods.
	namePattern = regexp.MustCompile(`^[\p{Latin}\p{M}\s'’.\-]+$`)
)

// Token is one classified line.
type Token struct {
	Kind TokenKind
	Text string
	// Page is set for TokenPageMarker.
	Page int
}

// Classify assigns a kind to a single trimmed line.
func Classify(line string) Token {
	line = strings.TrimSpace(line)
	tok := Token{Kind: TokenOther, Text: line}

	switch {
	case numberPattern.MatchString(line):
		tok.Kind = TokenNumber
	case timeutil.IsClock(line):
		tok.Kind = TokenClock
	case pagePattern.MatchString(line):
		m := pagePattern.FindStringSubmatch(line)
		if n, err := strconv.Atoi(m[1]); err == nil {
			tok.Kind = TokenPageMarker
			tok.Page = n
		}
	case isName(line):
		tok.Kind = TokenName
	}
	return tok
}

// Tokenize classifies every line in order.
func Tokenize(lines []string) []Token {
	tokens := make([]Token, len(lines))
	for i, l := range lines {
		tokens[i] = Classify(l)
	}
	return tokens
}

// Identifier returns the worker number when the token is a bare 1 to 3 digit run.
func (t Token) Identifier() (int, bool) {
	if t.Kind != TokenNumber || len(t.Text) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsTime reports whether the token has a time shape: H:MM, HH:MM or a 3 to 4 digit run.
// Range checks happen later in timeutil.Normalize.
func (t Token) IsTime() bool {
	return t.Kind == TokenClock || (t.Kind == TokenNumber && timeutil.IsDigitRun(t.Text))
}

// isName requires at least one letter so punctuation-only lines are rejected.
func isName(s string) bool {
	if !namePattern.MatchString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
