package upload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Magic byte signatures for allowed upload types, keyed by lowercase
// extension.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
}

// ValidateResume checks that the uploaded resume is a real PDF: extension
// whitelist plus magic-byte verification, so a renamed binary is rejected.
func ValidateResume(filename string, data []byte) error {
	return validate(filename, data, []string{".pdf"})
}

// ValidateImage checks that an uploaded photo is a JPEG or PNG.
func ValidateImage(filename string, data []byte) error {
	return validate(filename, data, []string{".jpg", ".jpeg", ".png"})
}

func validate(filename string, data []byte, allowed []string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("file has no extension")
	}

	permitted := false
	for _, a := range allowed {
		if ext == a {
			permitted = true
			break
		}
	}
	if !permitted {
		return fmt.Errorf("file extension not allowed: %s", ext)
	}

	if len(data) < 4 {
		return fmt.Errorf("file too small to validate")
	}
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return nil
		}
	}
	return fmt.Errorf("file content does not match extension")
}

// Save writes data under dir with a uuid-prefixed name and returns the
// public URL path ("/uploads/<name>").
func Save(dir, originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}
