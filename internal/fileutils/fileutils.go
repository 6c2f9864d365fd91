// Package fileutils provides common file operations used throughout the
// application.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ReadFileText reads the entire contents of a file as a string.
func ReadFileText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// MoveFile moves a file into destDir, keeping its base name. It falls back
// to copy-and-remove when a plain rename crosses filesystems.
func MoveFile(srcPath, destDir string) error {
	if err := EnsureDirectoryExists(destDir); err != nil {
		return err
	}
	destPath := filepath.Join(destDir, filepath.Base(srcPath))
	if err := os.Rename(srcPath, destPath); err == nil {
		return nil
	}
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	dest, err := os.Create(destPath)
	if err != nil {
		src.Close()
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	_, err = io.Copy(dest, src)
	src.Close()
	if err != nil {
		dest.Close()
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return os.Remove(srcPath)
}
