// Package imagecheck verifies that image files on disk decode cleanly.
//
// Decoders are registered for the formats in the dataset allow-list: JPEG,
// PNG and BMP. GIF is deliberately not registered.
package imagecheck

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Verify opens and fully decodes the image at path. A nil return means the
// file is a well-formed image in one of the registered formats; any failure
// (truncated data, unsupported format, corrupt bytes) is returned as an
// error. The file handle is released before Verify returns.
func Verify(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	if _, _, err := image.Decode(f); err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	return nil
}
