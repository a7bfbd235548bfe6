// Package source classifies raw input lines and joins multi-line record
// statements into single logical statements.
package source

import (
	"strings"

	"record2ddl/internal/macro"
)

// Kind of a logical statement.
type Kind int

const (
	KindDefine Kind = iota + 1
	KindField
	KindAnnotation
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindDefine:
		return "define"
	case KindField:
		return "field"
	case KindAnnotation:
		return "annotation"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// RecordKeyword starts a record statement (matched case-insensitively).
const RecordKeyword = "record"

// Statement is one classified logical statement.
type Statement struct {
	Kind Kind
	Text string
	Line int // line the statement started on
}

// Pending is a record statement still open at end of input.
type Pending struct {
	Line int
	Text string
}

// State of the accumulator.
type State int

const (
	Idle State = iota
	Accumulating
)

// headWidth is how many leading bytes are inspected for '#' and "%%" markers.
const headWidth = 4

// Scanner is the line classifier. Feed it lines in order; it returns a
// statement whenever one is complete.
type Scanner struct {
	state State
	buf   []string
	depth int
	start int
	line  int
}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) State() State {
	return s.state
}

// Feed consumes one raw line.
func (s *Scanner) Feed(raw string) (Statement, bool) {
	s.line++
	line := strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Statement{}, false
	}

	head := line
	if len(head) > headWidth {
		head = head[:headWidth]
	}
	if strings.Contains(head, "#") {
		return Statement{}, false
	}

	// "%%" lines are annotations even when the remark mentions a macro keyword
	lower := strings.ToLower(line)
	switch {
	case strings.Count(head, "%") >= 2:
		return Statement{Kind: KindAnnotation, Text: line, Line: s.line}, true
	case strings.Contains(lower, macro.DefineKeyword):
		return Statement{Kind: KindDefine, Text: line, Line: s.line}, true
	case strings.Contains(lower, macro.FieldKeyword):
		return Statement{Kind: KindField, Text: line, Line: s.line}, true
	}

	if s.state == Accumulating {
		return s.accumulate(line)
	}

	i := strings.Index(lower, RecordKeyword)
	if i < 0 {
		return Statement{}, false
	}
	// completeness is checked on the raw text, comments are stripped after
	text := strings.TrimSpace(line[i:])
	if strings.Contains(text, "(") == strings.Contains(text, ")") {
		return Statement{Kind: KindRecord, Text: strings.TrimSpace(stripComment(text)), Line: s.line}, true
	}

	frag := strings.TrimSpace(stripComment(text))
	s.state = Accumulating
	s.buf = []string{frag}
	s.depth = strings.Count(frag, "(") - strings.Count(frag, ")")
	s.start = s.line
	return Statement{}, false
}

func (s *Scanner) accumulate(line string) (Statement, bool) {
	frag := strings.TrimSpace(stripComment(line))
	s.buf = append(s.buf, frag)
	s.depth += strings.Count(frag, "(") - strings.Count(frag, ")")
	if s.depth > 0 {
		return Statement{}, false
	}

	st := Statement{Kind: KindRecord, Text: strings.Join(s.buf, ""), Line: s.start}
	s.reset()
	return st, true
}

// Close ends the input. A record still being accumulated is returned as
// pending and the scanner goes back to Idle.
func (s *Scanner) Close() (Pending, bool) {
	if s.state != Accumulating {
		return Pending{}, false
	}
	p := Pending{Line: s.start, Text: strings.Join(s.buf, "")}
	s.reset()
	return p, true
}

func (s *Scanner) reset() {
	s.state = Idle
	s.buf = nil
	s.depth = 0
	s.start = 0
}

// stripComment drops everything from the first '%' outside a quoted literal.
func stripComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '%':
			return line[:i]
		}
	}
	return line
}
