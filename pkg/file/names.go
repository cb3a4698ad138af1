package file

import (
	"path/filepath"
	"strings"
)

// WorkspaceInputName derives the engine workspace name for an entry's
// original bytes: the entry ID plus the original extension, or a fixed
// placeholder when the filename has none.
func WorkspaceInputName(id, originalName string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		ext = PlaceholderExt
	}
	return id + "." + ext
}

// WorkspaceOutputName derives the workspace name the conversion writes to.
func WorkspaceOutputName(id, format string) string {
	return id + "." + Normalize(format)
}

// DownloadName is the suggested filename for a completed entry:
// converted_<original-basename>.<requested-format>.
func DownloadName(originalName, format string) string {
	base := filepath.Base(originalName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return "converted_" + base + "." + Normalize(format)
}
