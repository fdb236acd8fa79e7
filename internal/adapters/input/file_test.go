package input

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSource_Lines(t *testing.T) {
	path := writeTemp(t, "first line\n\n  second line  \n\t\nthird line")
	source := NewFileSource(path)

	lines, err := source.Lines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 3, "empty lines skipped")

	assert.Equal(t, domain.LogLine{Index: 0, Raw: "first line"}, lines[0])
	assert.Equal(t, domain.LogLine{Index: 1, Raw: "second line"}, lines[1], "trimmed")
	assert.Equal(t, domain.LogLine{Index: 2, Raw: "third line"}, lines[2])
}

func TestFileSource_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "does-not-exist.log"))

	lines, err := source.Lines(context.Background())
	assert.NoError(t, err, "a missing file is not an error")
	assert.Empty(t, lines)
}

func TestFileSource_InvalidUTF8Dropped(t *testing.T) {
	path := writeTemp(t, "valid prefix \xff\xfe suffix\n")
	source := NewFileSource(path)

	lines, err := source.Lines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "valid prefix  suffix", lines[0].Raw)
}

func TestFileSource_LongLineTruncated(t *testing.T) {
	path := writeTemp(t, strings.Repeat("a", domain.MaxLineLength+500)+"\n")
	source := NewFileSource(path)

	lines, err := source.Lines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Raw, domain.MaxLineLength)
}

func TestFileSource_Name(t *testing.T) {
	source := NewFileSource("/var/log/auth.log")
	assert.Equal(t, "auth.log", source.Name())
	assert.Equal(t, "/var/log/auth.log", source.Path())
}

func TestFileSource_CancelledContext(t *testing.T) {
	path := writeTemp(t, "line one\nline two\n")
	source := NewFileSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Lines(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
