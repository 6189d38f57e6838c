// Package annotation locates and parses YOLO-format label files: one sidecar
// .txt per image, one object per line, class id followed by four normalized
// bounding-box coordinates.
package annotation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrShortLine marks a line with fewer than five whitespace-separated fields.
// Such lines carry no usable object and are skipped without being reported.
var ErrShortLine = errors.New("line has fewer than 5 fields")

// Object is one labeled bounding box: an integer class id plus a box
// normalized to image dimensions.
type Object struct {
	Class      int
	X, Y, W, H float64
}

// InRange reports whether all four coordinates lie within [0, 1].
func (o Object) InRange() bool {
	for _, c := range []float64{o.X, o.Y, o.W, o.H} {
		if c < 0 || c > 1 {
			return false
		}
	}
	return true
}

// Locate finds the label file paired with an image. It tries, in order:
// a .txt file with the same base name in the same directory, then the same
// rule with the first path segment named "images" replaced by "labels"
// (the parallel images/labels layout). Returns false when neither exists.
func Locate(imagePath string) (string, bool) {
	candidate := withTxtExt(imagePath)
	if fileExists(candidate) {
		return candidate, true
	}

	sep := string(filepath.Separator)
	parts := strings.Split(imagePath, sep)
	for i, part := range parts {
		if part == "images" {
			parts[i] = "labels"
			candidate = withTxtExt(strings.Join(parts, sep))
			if fileExists(candidate) {
				return candidate, true
			}
			break
		}
	}

	return "", false
}

func withTxtExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ParseLine parses one label line. Fields are split on ASCII whitespace;
// fields beyond the fifth are ignored. Returns ErrShortLine for lines with
// fewer than five fields, including blank lines.
func ParseLine(line string) (Object, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Object{}, ErrShortLine
	}

	class, err := strconv.Atoi(fields[0])
	if err != nil {
		return Object{}, fmt.Errorf("invalid class id %q", fields[0])
	}

	var coords [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Object{}, fmt.Errorf("invalid coordinate %q", fields[i+1])
		}
		coords[i] = v
	}

	return Object{Class: class, X: coords[0], Y: coords[1], W: coords[2], H: coords[3]}, nil
}

// IssueKind classifies a problem found while parsing a label file.
type IssueKind int

const (
	// IssueMalformed is a line that failed to parse; it contributes no object.
	IssueMalformed IssueKind = iota
	// IssueOutOfRange is an object with a coordinate outside [0, 1]. The
	// object is still counted; the issue is a warning.
	IssueOutOfRange
)

// Issue is one problem discovered in a label file, in line order.
type Issue struct {
	Kind   IssueKind
	Detail string // parse failure detail; empty for range issues
}

// File is the parsed content of one label file.
type File struct {
	Path    string
	Objects []Object
	Issues  []Issue
	Empty   bool // file had zero bytes: a valid background marker
}

// ParseFile reads and parses a label file. Lines with fewer than five fields
// are skipped silently; malformed lines and out-of-range coordinates are
// recorded as Issues in the order encountered. Out-of-range objects still
// appear in Objects.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f := &File{Path: path}
	if len(data) == 0 {
		f.Empty = true
		return f, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		obj, err := ParseLine(line)
		if err != nil {
			if errors.Is(err, ErrShortLine) {
				continue
			}
			f.Issues = append(f.Issues, Issue{Kind: IssueMalformed, Detail: err.Error()})
			continue
		}
		if !obj.InRange() {
			f.Issues = append(f.Issues, Issue{Kind: IssueOutOfRange})
		}
		f.Objects = append(f.Objects, obj)
	}

	return f, nil
}
