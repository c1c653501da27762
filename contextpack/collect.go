package contextpack

import (
	"errors"
	"os"
	"path/filepath"
)

// defaultIgnoreDirs are skipped when collecting candidate files.
var defaultIgnoreDirs = []string{".git", "node_modules", "vendor", "dist", "build", "bin", "tmp"}

// CollectOptions controls file gathering for CollectFiles.
type CollectOptions struct {
	MaxFiles   int      // stop after this many files (0 = unlimited)
	IgnoreDirs []string // directory names to skip (nil = defaults)
}

// CollectFiles walks a project directory and returns candidate context files
// with their contents loaded. Unreadable files are skipped rather than
// failing the walk. The second return value reports whether the MaxFiles cap
// cut the walk short.
func CollectFiles(root string, opts CollectOptions) ([]File, bool, error) {
	ignore := opts.IgnoreDirs
	if ignore == nil {
		ignore = defaultIgnoreDirs
	}
	ignored := make(map[string]bool, len(ignore))
	for _, dir := range ignore {
		ignored[dir] = true
	}

	var files []File
	capped := false
	stopWalk := errors.New("stop walk")

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if ignored[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		files = append(files, File{
			Path:         path,
			RelativePath: filepath.ToSlash(rel),
			Content:      string(content),
		})
		if opts.MaxFiles > 0 && len(files) >= opts.MaxFiles {
			capped = true
			return stopWalk
		}
		return nil
	})

	if err != nil && !errors.Is(err, stopWalk) {
		return files, capped, err
	}
	return files, capped, nil
}
