package integrity

import (
	"fmt"
	"sort"
	"strings"
)

// maxPrintedErrors bounds rendered output; the Report keeps the full list.
const maxPrintedErrors = 10

// Report holds the outcome of validating one dataset split. It is built once
// by Checker.Check and never mutated afterwards.
//
// Every image counted in TotalImages lands in exactly one of: corrupt,
// missing-label, or found-label (empty or non-empty), so
// CorruptImages + MissingLabels + (images with a found label) == TotalImages.
type Report struct {
	Split         string
	TotalImages   int
	CorruptImages int
	MissingLabels int
	EmptyLabels   int // label file exists but is empty: background images
	ValidObjects  int
	ClassCounts   map[int]int
	Errors        []string
}

// String renders the report in fixed order: totals, class distribution, then
// up to maxPrintedErrors error lines with a remainder count.
func (r *Report) String() string {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("DATASET REPORT: %s\n", strings.ToUpper(r.Split)))
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Total images:         %d\n", r.TotalImages))
	sb.WriteString(fmt.Sprintf("Corrupt images:       %d\n", r.CorruptImages))
	sb.WriteString(fmt.Sprintf("Empty labels:         %d (background)\n", r.EmptyLabels))
	sb.WriteString(fmt.Sprintf("Missing labels:       %d\n", r.MissingLabels))
	sb.WriteString(fmt.Sprintf("Total objects:        %d\n", r.ValidObjects))
	sb.WriteString(fmt.Sprintf("Class distribution:   %s\n", formatClassCounts(r.ClassCounts)))

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nFound %d issues:\n", len(r.Errors)))
		for i, msg := range r.Errors {
			if i == maxPrintedErrors {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Errors)-maxPrintedErrors))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", msg))
		}
	}

	sb.WriteString(rule + "\n")
	return sb.String()
}

// formatClassCounts renders counts in ascending class id order so output is
// stable across runs.
func formatClassCounts(counts map[int]int) string {
	if len(counts) == 0 {
		return "{}"
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sb strings.Builder
	sb.WriteString("{")
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%d: %d", id, counts[id]))
	}
	sb.WriteString("}")
	return sb.String()
}
