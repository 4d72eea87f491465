package frontmatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntags: go, web\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("tags: go, web\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\nkey: value\r\n---\r\n# Title\r\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Only meta\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Only meta\n"), fm)
	require.Empty(t, body)
}

func TestParse_DecodesFields(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Post\ntags: go, web\ncreatedAt: 2023-01-02\n---\nBody\n"))
	require.NoError(t, err)

	require.True(t, doc.HadFrontMatter)
	require.Equal(t, "Post", doc.Fields["title"])
	require.Equal(t, "go, web", doc.Fields["tags"])
	require.Equal(t, []byte("Body\n"), doc.Body)

	switch v := doc.Fields["createdAt"].(type) {
	case time.Time:
		require.Equal(t, 2023, v.Year())
	case string:
		require.Equal(t, "2023-01-02", v)
	default:
		t.Fatalf("unexpected createdAt type %T", v)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	doc, err := Parse([]byte("# Hello\n"))
	require.NoError(t, err)
	require.False(t, doc.HadFrontMatter)
	require.NotNil(t, doc.Fields)
	require.Empty(t, doc.Fields)
}

func TestParseYAML_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := ParseYAML([]byte("key: [unterminated\n"))
	require.Error(t, err)
}

func TestParseYAML_ListValue(t *testing.T) {
	fields, err := ParseYAML([]byte("tags:\n  - one\n  - two\n"))
	require.NoError(t, err)
	require.Equal(t, []any{"one", "two"}, fields["tags"])
}
