package questions

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ws is a Unicode-aware whitespace class; Go's \s alone is ASCII only.
const ws = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]`

// Openers and terminators for the question shapes. RE2 has no lookahead, so a
// span is found in two steps: the opener, then the leftmost terminator after it.
// Past the opener a span never crosses a line break; a blank-line terminator
// therefore has to start where the opener's line ends.
var (
	numberedRe  = regexp.MustCompile(`\p{Nd}+\.` + ws)
	itemMarkRe  = regexp.MustCompile(`\p{Nd}+\.`)
	problemRe   = regexp.MustCompile(`Problem` + ws + `\p{Nd}+:`)
	problemMark = regexp.MustCompile(`Problem` + ws + `\p{Nd}+`)
	solveRe     = regexp.MustCompile(`Solve` + ws + `for` + ws)
	calculateRe = regexp.MustCompile(`Calculate` + ws)
	proveRe     = regexp.MustCompile(`Prove` + ws)
	blankLineRe = regexp.MustCompile(`\n` + ws + `*\n`)
)

// Span is one match of a Matcher: byte offsets into the page text and the
// matched substring.
type Span struct {
	Start int
	End   int
	Text  string
}

// Matcher finds one candidate shape in page text.
type Matcher struct {
	Name string
	next func(text string, from int) (start, end int, ok bool)
}

// All yields the non-overlapping matches of m in text, left to right. Each
// search resumes where the previous match ended.
func (m Matcher) All(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		from := 0
		for from <= len(text) {
			start, end, ok := m.next(text, from)
			if !ok {
				return
			}
			if !yield(Span{Start: start, End: end, Text: text[start:end]}) {
				return
			}
			from = end
		}
	}
}

var matchers = []Matcher{
	{Name: "numbered", next: nextNumbered},
	delimited("problem", problemRe, problemMark),
	delimited("solve", solveRe, blankLineRe),
	delimited("calculate", calculateRe, blankLineRe),
	delimited("prove", proveRe, blankLineRe),
}

// Matchers returns the five question matchers in the order they are applied:
// numbered, problem, solve, calculate, prove.
func Matchers() []Matcher {
	out := make([]Matcher, len(matchers))
	copy(out, matchers)
	return out
}

// delimited builds a matcher whose span starts at open and stays on the
// opener's line: it ends at the first stop match that begins on that line, or
// at the end of the text when the line is the last one. An opener whose line
// meets neither is skipped.
func delimited(name string, open, stop *regexp.Regexp) Matcher {
	return Matcher{Name: name, next: func(text string, from int) (int, int, bool) {
		for from < len(text) {
			loc := open.FindStringIndex(text[from:])
			if loc == nil {
				return 0, 0, false
			}
			start, end := from+loc[0], from+loc[1]
			lineEnd := len(text)
			if nl := strings.IndexByte(text[end:], '\n'); nl >= 0 {
				lineEnd = end + nl
			}
			if stopAt := until(text, end, stop); stopAt <= lineEnd {
				return start, stopAt, true
			}
			_, size := utf8.DecodeRuneInString(text[start:])
			from = start + size
		}
		return 0, 0, false
	}}
}

// nextNumbered matches "N. ...?" where the question mark is the last one on the
// opener's line, then extends the span to the next "N." marker or the end.
func nextNumbered(text string, from int) (int, int, bool) {
	for from < len(text) {
		loc := numberedRe.FindStringIndex(text[from:])
		if loc == nil {
			return 0, 0, false
		}
		start, end := from+loc[0], from+loc[1]
		line := text[end:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		if q := strings.LastIndexByte(line, '?'); q >= 0 {
			return start, until(text, end+q+1, itemMarkRe), true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return 0, 0, false
}

func until(text string, from int, stop *regexp.Regexp) int {
	if loc := stop.FindStringIndex(text[from:]); loc != nil {
		return from + loc[0]
	}
	return len(text)
}
