package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shift(t *testing.T, src string) string {
	t.Helper()
	out, err := ShiftHeadings([]byte(src), 1)
	require.NoError(t, err)
	return string(out)
}

func TestShiftHeadings_ATXLevels(t *testing.T) {
	require.Equal(t, "## One", shift(t, "# One\n"))
	require.Equal(t, "### Two", shift(t, "## Two"))
	require.Equal(t, "###### Five", shift(t, "##### Five\n"))
}

func TestShiftHeadings_SaturatesAtSix(t *testing.T) {
	require.Equal(t, "###### Six", shift(t, "###### Six\n"))

	out, err := ShiftHeadings([]byte("#### Four\n"), 5)
	require.NoError(t, err)
	require.Equal(t, "###### Four", string(out))
}

func TestShiftHeadings_PreservesBody(t *testing.T) {
	src := "# Rules\n\nUse *emphasis* and `code`.\n\n- item one\n- item two\n\n## Details\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	want := "## Rules\n\nUse *emphasis* and `code`.\n\n- item one\n- item two\n\n### Details\n\n| a | b |\n|---|---|\n| 1 | 2 |"
	require.Equal(t, want, shift(t, src))
}

func TestShiftHeadings_IgnoresCodeBlocks(t *testing.T) {
	src := "# Title\n\n```sh\n# not a heading\n```\n\n    # indented code\n"
	want := "## Title\n\n```sh\n# not a heading\n```\n\n    # indented code"
	require.Equal(t, want, shift(t, src))
}

func TestShiftHeadings_ClosingSequence(t *testing.T) {
	require.Equal(t, "## Title #", shift(t, "# Title #\n"))
}

func TestShiftHeadings_HashInContent(t *testing.T) {
	require.Equal(t, "## #hashtag", shift(t, "# #hashtag\n"))
	require.Equal(t, "#hashtag\n\ntext", shift(t, "#hashtag\n\ntext\n"))
}

func TestShiftHeadings_EmptyATX(t *testing.T) {
	require.Equal(t, "##\n\ntext", shift(t, "#\n\ntext"))
	require.Equal(t, "### ##", shift(t, "## ##\n"))
	require.Equal(t, "###", shift(t, "## \n"))
	require.Equal(t, "######", shift(t, "######\n"))
	require.Equal(t, "> ##\n\n## A\n##\n\nbody", shift(t, "> #\n\n# A\n#\n\nbody\n"))
}

func TestShiftHeadings_EmptyATXAfterCode(t *testing.T) {
	src := "```\n#\n```\n\n#\n"
	want := "```\n#\n```\n\n##"
	require.Equal(t, want, shift(t, src))
}

func TestShiftHeadings_Blockquote(t *testing.T) {
	require.Equal(t, "> ## Quoted\n> body", shift(t, "> # Quoted\n> body\n"))
}

func TestShiftHeadings_SetextLevelOne(t *testing.T) {
	require.Equal(t, "Title\n-----\n\nbody", shift(t, "Title\n=====\n\nbody\n"))
}

func TestShiftHeadings_SetextLevelTwo(t *testing.T) {
	require.Equal(t, "### Sub title\n\nbody", shift(t, "Sub title\n---------\n\nbody\n"))
	require.Equal(t, "### Multi line", shift(t, "Multi\nline\n---\n"))
}

func TestShiftHeadings_CRLF(t *testing.T) {
	require.Equal(t, "## One\r\n\r\ntext", shift(t, "# One\r\n\r\ntext\r\n"))
}

func TestShiftHeadings_TrimsTrailingWhitespace(t *testing.T) {
	require.Equal(t, "## A\n\nb", shift(t, "# A\n\nb  \n\n\t\n"))
	require.Equal(t, "", shift(t, ""))
	require.Equal(t, "", shift(t, " \n\n"))
}

func TestShiftHeadings_ZeroShift(t *testing.T) {
	out, err := ShiftHeadings([]byte("# Keep\n"), 0)
	require.NoError(t, err)
	require.Equal(t, "# Keep", string(out))
}

func TestShiftHeadings_NegativeShift(t *testing.T) {
	_, err := ShiftHeadings([]byte("## Two\n"), -1)
	require.Error(t, err)
}
