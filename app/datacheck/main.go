// Command datacheck validates a YOLO-layout object-detection dataset before
// training: it flags corrupt images, missing or malformed label files and
// out-of-range coordinates, and prints per-split object statistics.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/firewatch/datacheck/dataset"
	"github.com/firewatch/datacheck/integrity"
)

// datasetRoot points at the dataset to validate.
const datasetRoot = "dataset/d-fire"

// splits are checked and reported in this order.
var splits = []string{"train", "test", "val"}

func main() {
	log.Println("Starting dataset integrity check...")

	checker := integrity.NewChecker(datasetRoot)
	checker.Progress = true

	reports := make(map[string]*integrity.Report, len(splits))
	for _, name := range splits {
		report, err := checker.Check(name)
		switch {
		case errors.Is(err, dataset.ErrNotFound):
			log.Printf("Folder not found: %s", name)
			continue
		case errors.Is(err, dataset.ErrNoImages):
			log.Printf("No images found in %s", name)
			continue
		case err != nil:
			log.Fatalf("Failed to check %s: %v", name, err)
		}
		reports[name] = report
	}

	for _, name := range splits {
		if report, ok := reports[name]; ok {
			fmt.Print(report)
		}
	}

	log.Println("Dataset validation complete!")
}
