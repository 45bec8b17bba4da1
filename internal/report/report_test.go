package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaverlabs/brainzgap/pkg/errors"
)

func TestFilenames(t *testing.T) {
	assert.Equal(t, "זמרים_ישראלים_without_musicbrainz.html", Filename("זמרים_ישראלים"))
	assert.Equal(t, "זמרים_ישראלים_without_musicbrainz.md", MarkdownFilename("זמרים_ישראלים"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteFile(path, []byte("<html></html>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "report.html")
	err := WriteFile(path, []byte("x"))
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
