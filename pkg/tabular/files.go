package tabular

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ajxudir/tabsplit/pkg/utils"
)

// DefaultExtensions are the source file extensions picked up from a directory.
var DefaultExtensions = []string{".csv", ".xlsx", ".xlsm"}

// ListFiles returns the tabular files named by path.
//
// A directory yields every regular file directly inside it whose extension
// (case-insensitive) is in extensions, sorted by name. A regular file yields
// itself regardless of extension. A missing path yields an empty list.
//
// Parameters:
//   - path: File or directory
//   - extensions: Accepted extensions including the dot; nil means DefaultExtensions
//
// Returns:
//   - []string: Matching file paths
//   - error: When the directory exists but cannot be read
func ListFiles(path string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !utils.ContainsIgnoreCase(extensions, filepath.Ext(entry.Name())) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// NormalizeExtensions lowercases extensions and adds a leading dot where missing.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
