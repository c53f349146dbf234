package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gridfold/gridfold/pkg/errors"
)

// supportedExtensions is the set of file extensions treated as images.
// Matching is case-insensitive.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
}

// IsSupported reports whether path has a supported image extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover lists the image files in folder, sorted alphabetically by name.
// The folder must exist and be a directory. An empty result is not an error;
// callers decide whether zero images is fatal.
func Discover(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeInputNotFound, "folder %q does not exist", folder)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "cannot access %q", folder)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInputNotDir, "%q is not a directory", folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "cannot read %q", folder)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupported(entry.Name()) {
			paths = append(paths, filepath.Join(folder, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
