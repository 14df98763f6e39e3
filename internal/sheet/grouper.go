package sheet

import (
	"fmt"

	"signsheet/internal/timeutil"
)

// Candidate is a worker entry before duplicate and consistency checks.
// Empty TimeIn/TimeOut mean the time is absent.
type Candidate struct {
	ID      *int
	Name    string
	TimeIn  string
	TimeOut string
	Page    int
	Valid   bool
}

type groupState int

const (
	expectIdentifier groupState = iota
	expectName
	expectTimeIn
	expectTimeOut
)

func (s groupState) String() string {
	switch s {
	case expectIdentifier:
		return "expect_identifier"
	case expectName:
		return "expect_name"
	case expectTimeIn:
		return "expect_time_in"
	case expectTimeOut:
		return "expect_time_out"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// grouper walks tokens and assembles candidates. Each expect* method handles
// one state and reports whether it consumed the token; an unconsumed token is
// offered again to the next state.
type grouper struct {
	state      groupState
	page       int
	current    *Candidate
	candidates []Candidate
	warnings   []string
}

func newGrouper(startPage int) *grouper {
	return &grouper{state: expectIdentifier, page: startPage}
}

// Group assembles candidate records from tokens. startPage is the page number
// assumed until a page marker is seen.
func Group(tokens []Token, startPage int) ([]Candidate, []string) {
	g := newGrouper(startPage)
	for _, tok := range tokens {
		g.feed(tok)
	}
	g.flush()
	return g.candidates, g.warnings
}

func (g *grouper) feed(tok Token) {
	if tok.Kind == TokenPageMarker {
		g.page = tok.Page
		return
	}
	for !g.step(tok) {
	}
}

func (g *grouper) step(tok Token) bool {
	switch g.state {
	case expectName:
		return g.expectName(tok)
	case expectTimeIn:
		return g.expectTimeIn(tok)
	case expectTimeOut:
		return g.expectTimeOut(tok)
	default:
		return g.expectIdentifier(tok)
	}
}

// expectIdentifier opens a record on a bare worker number and skips anything else.
func (g *grouper) expectIdentifier(tok Token) bool {
	id, ok := tok.Identifier()
	if !ok {
		return true
	}
	g.current = &Candidate{ID: &id, Page: g.page}
	g.state = expectName
	return true
}

func (g *grouper) expectName(tok Token) bool {
	if _, ok := tok.Identifier(); ok || tok.IsTime() {
		// No name line; the record continues nameless and is rejected by the checker.
		g.state = expectTimeIn
		return false
	}
	if tok.Kind != TokenName {
		g.warnings = append(g.warnings, invalidNameWarning(tok.Text))
		g.current = nil
		g.state = expectIdentifier
		return true
	}
	g.current.Name = tok.Text
	g.state = expectTimeIn
	return true
}

func (g *grouper) expectTimeIn(tok Token) bool {
	g.state = expectTimeOut
	if !tok.IsTime() {
		return false
	}
	if t, ok := timeutil.Normalize(tok.Text); ok {
		g.current.TimeIn = t
	}
	return true
}

func (g *grouper) expectTimeOut(tok Token) bool {
	if !tok.IsTime() {
		g.finish()
		return false
	}
	if t, ok := timeutil.Normalize(tok.Text); ok {
		g.current.TimeOut = t
	}
	g.finish()
	return true
}

func (g *grouper) finish() {
	if g.current != nil {
		g.candidates = append(g.candidates, *g.current)
	}
	g.current = nil
	g.state = expectIdentifier
}

// flush finalizes a record still open at the end of input.
func (g *grouper) flush() {
	if g.current != nil {
		g.finish()
	}
}
