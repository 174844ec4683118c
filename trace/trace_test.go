package trace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/prooftrace"
	"github.com/ava12/prooftrace/term"
)

func TestReadFile(t *testing.T) {
	lines, e := ReadFile(filepath.Join("testdata", "sample.trace"))
	require.NoError(t, e)
	require.Len(t, lines, 6)

	var rules []string
	for _, ln := range lines {
		rules = append(rules, ln.Lhs.Rule)
	}
	require.Equal(t,
		[]string{"GoalSplit", "ALL1", "ForallHyp", "EqHyp", "FIN", "Discharge"},
		rules)

	fin, valid := lines[4].Rhs.(*term.Fin)
	require.True(t, valid)
	require.Equal(t, 3, fin.N)
	require.Len(t, fin.Left.Hyps, 2)
	require.Empty(t, fin.Right.Hyps)
}

func TestReadString(t *testing.T) {
	lines, e := ReadString("", "[A] <p>\n[B] <q or r>\n")
	require.NoError(t, e)
	require.Len(t, lines, 2)
	require.Equal(t, "A", lines[0].Lhs.Rule)
	require.Equal(t, "B", lines[1].Lhs.Rule)
}

func TestReadEmpty(t *testing.T) {
	lines, e := ReadString("", "")
	require.NoError(t, e)
	require.Empty(t, lines)
}

func TestAllOrNothing(t *testing.T) {
	// a syntax error anywhere discards the whole result
	lines, e := ReadString("broken", "[A] <p>\n[B] <q and>\n[C] <r>\n")
	require.Nil(t, lines)

	var pe *prooftrace.Error
	require.ErrorAs(t, e, &pe)
	require.Equal(t, "broken", pe.SourceName)
	require.Equal(t, 2, pe.Line)
	require.Equal(t, 11, pe.Col)
}

func TestSyntaxErrorFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.trace")
	require.NoError(t, os.WriteFile(name, []byte("[A] <p>\n[B] p\n"), 0o644))

	lines, e := ReadFile(name)
	require.Nil(t, lines)
	var pe *prooftrace.Error
	require.ErrorAs(t, e, &pe)
	require.Equal(t, name, pe.SourceName)
}

func TestOpenError(t *testing.T) {
	// open failures stay distinguishable from syntax failures
	lines, e := ReadFile(filepath.Join(t.TempDir(), "missing.trace"))
	require.Nil(t, lines)

	var pathErr *fs.PathError
	require.ErrorAs(t, e, &pathErr)
	require.True(t, errors.Is(e, fs.ErrNotExist))
	var pe *prooftrace.Error
	require.False(t, errors.As(e, &pe))
}
