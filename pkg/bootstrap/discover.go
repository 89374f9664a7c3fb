package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches every JSON file under the root, recursively.
const DefaultPattern = "**/*.json"

var errStopWalk = errors.New("stop walk")

// Discover enumerates files under root matching pattern. It returns a lazy,
// finite, single-use sequence of paths; traversal order is unspecified and
// callers must not rely on it. A missing root or malformed pattern fails
// immediately with a DiscoveryError.
func Discover(root, pattern string) (iter.Seq2[string, error], error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &DiscoveryError{Root: root, Pattern: pattern, Err: doublestar.ErrBadPattern}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Pattern: pattern, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Root: root, Pattern: pattern, Err: fmt.Errorf("not a directory")}
	}

	fsys := os.DirFS(root)
	return func(yield func(string, error) bool) {
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			if !yield(filepath.Join(root, path), nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", &DiscoveryError{Root: root, Pattern: pattern, Err: err})
		}
	}, nil
}
