package shaft

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern(" <>>\n")
	require.NoError(t, err)
	assert.Equal(t, Pattern{DirLeft, DirRight, DirRight}, p)
	assert.Equal(t, "<>>", p.String())
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		pos    int
		symbol rune
	}{
		{"letter", "<<x>>", 2, 'x'},
		{"inner space", "<> <", 2, ' '},
		{"caret", "^", 0, '^'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePattern(tc.input)
			var jetErr *JetError
			require.True(t, errors.As(err, &jetErr), "expected *JetError, got %v", err)
			assert.Equal(t, tc.pos, jetErr.Pos)
			assert.Equal(t, tc.symbol, jetErr.Symbol)
		})
	}
}

func TestParsePatternEmpty(t *testing.T) {
	for _, input := range []string{"", "  ", "\n"} {
		_, err := ParsePattern(input)
		assert.ErrorIs(t, err, ErrEmptyPattern, "input %q", input)
	}
}

func TestJetsWrap(t *testing.T) {
	p, err := ParsePattern("<>>")
	require.NoError(t, err)
	jets := NewJets(p)

	want := []Dir{DirLeft, DirRight, DirRight, DirLeft, DirRight, DirRight, DirLeft}
	for i, d := range want {
		assert.Equal(t, i%3, jets.Index())
		assert.Equal(t, d, jets.Next(), "jet %d", i)
	}
	assert.Equal(t, int64(7), jets.Cursor())
	assert.Equal(t, 1, jets.Index())
	assert.Equal(t, 3, jets.Len())
}
