// Package integrity validates a labeled object-detection dataset: it walks a
// split's image files, verifies each one decodes, locates and parses its
// YOLO label file, and aggregates the results into a Report.
package integrity

import (
	"fmt"
	"path/filepath"

	"github.com/firewatch/datacheck/annotation"
	"github.com/firewatch/datacheck/dataset"
	"github.com/firewatch/datacheck/imagecheck"
)

// Checker validates dataset splits under a single root directory. The zero
// value is not usable; construct with NewChecker.
type Checker struct {
	// Root is the dataset root containing the split directories.
	Root string

	// Extensions overrides the image allow-list. Nil means
	// dataset.DefaultExtensions.
	Extensions []string

	// Progress renders a scan progress line to stdout. Leave false in tests.
	Progress bool
}

// NewChecker creates a checker for the dataset rooted at root.
func NewChecker(root string) *Checker {
	return &Checker{Root: root}
}

// Check validates one split and returns its report. It returns
// dataset.ErrNotFound when the split directory is absent and
// dataset.ErrNoImages when it contains no images; callers treat both as a
// skipped split. Per-file problems never fail the split: they are recorded
// in the report and processing continues with the next file.
func (c *Checker) Check(splitName string) (*Report, error) {
	split, err := dataset.Open(c.Root, splitName)
	if err != nil {
		return nil, err
	}

	images, err := split.ImagesWithExtensions(c.Extensions)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Split:       splitName,
		TotalImages: len(images),
		ClassCounts: make(map[int]int),
	}

	var bar *ProgressBar
	if c.Progress {
		fmt.Printf("Found %d images. Scanning...\n", len(images))
		bar = NewProgressBar(fmt.Sprintf("Processing %s", splitName), len(images))
	}

	for i, imagePath := range images {
		c.checkImage(imagePath, report)
		if bar != nil {
			bar.Update(i + 1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	return report, nil
}

// checkImage runs the per-image pipeline: decodability, label discovery,
// label parsing. A corrupt image short-circuits; its label is not examined.
func (c *Checker) checkImage(imagePath string, report *Report) {
	if err := imagecheck.Verify(imagePath); err != nil {
		report.CorruptImages++
		report.Errors = append(report.Errors,
			fmt.Sprintf("Corrupt image: %s", filepath.Base(imagePath)))
		return
	}

	labelPath, ok := annotation.Locate(imagePath)
	if !ok {
		// Not an error: recorded as a count only.
		report.MissingLabels++
		return
	}

	name := filepath.Base(labelPath)

	file, err := annotation.ParseFile(labelPath)
	if err != nil {
		report.Errors = append(report.Errors,
			fmt.Sprintf("Error reading %s: %v", name, err))
		return
	}

	if file.Empty {
		report.EmptyLabels++
		return
	}

	for _, issue := range file.Issues {
		switch issue.Kind {
		case annotation.IssueMalformed:
			report.Errors = append(report.Errors,
				fmt.Sprintf("Parse error in %s: %s", name, issue.Detail))
		case annotation.IssueOutOfRange:
			report.Errors = append(report.Errors,
				fmt.Sprintf("Invalid coordinates in %s", name))
		}
	}

	for _, obj := range file.Objects {
		report.ClassCounts[obj.Class]++
		report.ValidObjects++
	}
}
