package shaft

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPattern is returned when a jet pattern contains no symbols.
var ErrEmptyPattern = errors.New("shaft: empty jet pattern")

// JetError reports a symbol in the jet pattern that is neither '<' nor '>'.
type JetError struct {
	Pos    int  // byte offset in the trimmed input
	Symbol rune // offending symbol
}

func (e *JetError) Error() string {
	return fmt.Sprintf("shaft: invalid jet symbol %q at position %d", e.Symbol, e.Pos)
}

// Pattern is an immutable jet sequence. It is safe to share between runs.
type Pattern []Dir

// ParsePattern converts a line of '<' and '>' into a Pattern.
// Surrounding whitespace, including a trailing newline, is ignored.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyPattern
	}

	p := make(Pattern, 0, len(s))
	for i, r := range s {
		switch r {
		case '<':
			p = append(p, DirLeft)
		case '>':
			p = append(p, DirRight)
		default:
			return nil, &JetError{Pos: i, Symbol: r}
		}
	}
	return p, nil
}

// String renders the pattern back into '<' and '>' symbols.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		if d == DirLeft {
			sb.WriteByte('<')
		} else {
			sb.WriteByte('>')
		}
	}
	return sb.String()
}

// Jets is a cursor over a Pattern. The cursor only moves forward and wraps
// around the pattern indefinitely.
type Jets struct {
	pattern Pattern
	cursor  int64
}

// NewJets creates a cursor positioned at the start of p.
// p must not be empty.
func NewJets(p Pattern) *Jets {
	return &Jets{pattern: p}
}

// Next returns the current jet direction and advances the cursor.
func (j *Jets) Next() Dir {
	d := j.pattern[j.cursor%int64(len(j.pattern))]
	j.cursor++
	return d
}

// Cursor returns the number of jets consumed so far.
func (j *Jets) Cursor() int64 {
	return j.cursor
}

// Index returns the position of the next jet within the pattern.
func (j *Jets) Index() int {
	return int(j.cursor % int64(len(j.pattern)))
}

// Len returns the pattern length.
func (j *Jets) Len() int {
	return len(j.pattern)
}
