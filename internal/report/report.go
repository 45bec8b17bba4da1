package report

import (
	"os"

	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
)

// Filename returns the default HTML report file name for a category.
func Filename(category string) string {
	return category + constants.ReportFileSuffix
}

// MarkdownFilename returns the default worklist file name for a category.
func MarkdownFilename(category string) string {
	return category + constants.MarkdownFileSuffix
}

// WriteFile writes a rendered report to disk.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
