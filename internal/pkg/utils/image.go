package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileExtension returns the lowercased extension of filename, dot included.
func FileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// ValidateImageExtension checks the filename against the allowed extension
// list. Extensions are matched case-insensitively, dot included.
func ValidateImageExtension(filename string, allowedFormats []string) error {
	ext := FileExtension(filename)
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format %q, allowed formats are: %s", ext, strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(sizeInBytes, maxSizeInMB int64) error {
	if sizeInBytes > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSizeInMB)
	}
	return nil
}
