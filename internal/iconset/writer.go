package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// ErrWriteFailure wraps every error raised while persisting an icon.
var ErrWriteFailure = errors.New("icon write failed")

// Output describes one written file.
type Output struct {
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Format Format `json:"format"`
	Bytes  int    `json:"bytes"`
}

// Writer persists rendered icons, creating parent directories as needed.
type Writer struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

func NewWriter() *Writer { return &Writer{DirPerm: 0o755, FilePerm: 0o644} }

// WriteImage encodes img in the format implied by path and writes it there.
func (w *Writer) WriteImage(path string, img image.Image) (Output, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return Output{}, fmt.Errorf("%w: encode %s: %w", ErrWriteFailure, path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, w.DirPerm); err != nil {
			return Output{}, fmt.Errorf("%w: create %s: %w", ErrWriteFailure, dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), w.FilePerm); err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return Output{Path: path, Size: img.Bounds().Dx(), Format: format, Bytes: buf.Len()}, nil
}
