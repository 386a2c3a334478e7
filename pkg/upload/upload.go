// Package upload accepts study notes as PDF files.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"tableflip.dev/studyed/pkg/store"
)

const pdf = "application/pdf"

var ErrNotPDF = errors.New("upload: only PDF files are accepted")

// Check sniffs the file at path and returns its upload record. The file is
// not parsed.
func Check(path string) (store.Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return store.Upload{}, fmt.Errorf("upload: %w", err)
	}
	if info.IsDir() {
		return store.Upload{}, fmt.Errorf("upload: %s is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return store.Upload{}, fmt.Errorf("upload: detect %s: %w", path, err)
	}
	if !mt.Is(pdf) {
		return store.Upload{}, fmt.Errorf("%w: %s is %s", ErrNotPDF, filepath.Base(path), mt.String())
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return store.Upload{
		ID:   uuid.NewString(),
		Name: filepath.Base(path),
		Path: abs,
		Size: info.Size(),
		MIME: mt.String(),
		At:   time.Now(),
	}, nil
}

// Save checks path and records it in s.
func Save(s store.Uploads, path string) (store.Upload, error) {
	u, err := Check(path)
	if err != nil {
		return store.Upload{}, err
	}
	if err := s.SaveUpload(u); err != nil {
		return store.Upload{}, err
	}
	return u, nil
}
