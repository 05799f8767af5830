package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SpaceshipImagePath builds the stored file name for a spaceship image:
// slugified ship name plus a random suffix, keeping the original
// extension.
func SpaceshipImagePath(dir, shipName, originalName string) string {
	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("%s-%s%s", Slugify(shipName), uuid.New().String(), ext)
	return filepath.Join(dir, filename)
}

// SaveUploadedFile writes an uploaded file to path, creating the target
// directory if needed.
func SaveUploadedFile(src io.Reader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}

	return nil
}
