package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the image extension allow-list used when none is given.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

var (
	// ErrNotFound indicates the split directory does not exist under the
	// dataset root.
	ErrNotFound = errors.New("split directory not found")

	// ErrNoImages indicates the split directory exists but contains no files
	// matching the extension allow-list.
	ErrNoImages = errors.New("no images found")
)

// Split represents one partition of a dataset (train, test or val) rooted
// at <root>/<name>.
type Split struct {
	Name string
	Dir  string
}

// Open resolves a named split under the dataset root. It returns ErrNotFound
// when the split directory is absent, so callers can skip missing splits
// without treating them as fatal.
func Open(root, name string) (*Split, error) {
	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("split %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat split %s: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("split %s: %w", name, ErrNotFound)
	}
	return &Split{Name: name, Dir: dir}, nil
}

// Images enumerates all image files in the split using DefaultExtensions.
func (s *Split) Images() ([]string, error) {
	return s.ImagesWithExtensions(nil)
}

// ImagesWithExtensions enumerates all files under the split directory,
// recursively, whose extension case-insensitively matches the allow-list.
// A nil or empty list falls back to DefaultExtensions. The walk is lexical,
// so the returned order is stable for an unchanged tree. Returns ErrNoImages
// when nothing matches.
func (s *Split) ImagesWithExtensions(extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var images []string
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if allowed[strings.ToLower(filepath.Ext(path))] {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk split %s: %w", s.Name, err)
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("split %s: %w", s.Name, ErrNoImages)
	}

	return images, nil
}
