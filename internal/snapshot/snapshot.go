// internal/snapshot/snapshot.go
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Name is the file name used for a snapshot taken at t.
func Name(t time.Time) string {
	return fmt.Sprintf("snapshot-%s.webp", t.Format("20060102-150405.000"))
}

// Write encodes img as lossless WebP into dir and returns the file path.
func Write(dir string, img image.Image, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	outPath := filepath.Join(dir, Name(t))
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		os.Remove(outPath)
		return "", fmt.Errorf("snapshot: WebP encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	return outPath, nil
}
