package style

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

//go:embed reset.css
var resetSheet string

// Reset returns the static reset sheet that can be prepended to the generated CSS.
func Reset() string {
	return resetSheet
}

// IncludeFiles resolves glob patterns (with ** support) under root to a de-duplicated
// list of files, sorted within each pattern and in pattern order overall.
// Files matched by root/.gitignore are skipped.
func IncludeFiles(root string, patterns []string) ([]string, error) {
	gi := loadGitIgnore(root)

	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		fullPattern := filepath.Join(root, pattern)

		matches, err := doublestar.FilepathGlob(fullPattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)

		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			if gi != nil && isIgnored(gi, root, m) {
				continue
			}
			files = append(files, m)
		}
	}
	return files, nil
}

// ReadFragments reads each file as one stylesheet fragment, in order.
func ReadFragments(files []string) ([]string, error) {
	fragments := make([]string, 0, len(files))
	for _, f := range files {
		// #nosec G304 - paths come from the user's own include patterns
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read include %s: %w", f, err)
		}
		fragment := string(data)
		if !strings.HasSuffix(fragment, "\n") {
			fragment += "\n"
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// loadGitIgnore degrades to nil when root has no .gitignore.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

func isIgnored(gi *ignore.GitIgnore, root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}
