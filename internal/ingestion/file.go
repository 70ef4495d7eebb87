// Package ingestion loads resume text from local files.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile returns the text content of path. HTML files are reduced to their
// visible text, one block element per line. Other files are returned as-is so
// the timeline parser sees the original line endings.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if isHTML(path) {
		text, err := HTMLToText(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return text, nil
	}
	return string(content), nil
}

// AppendFile reads path and appends its text to buffer. A non-empty buffer is
// separated from the new text by a blank line.
func AppendFile(buffer, path string) (string, error) {
	text, err := ReadFile(path)
	if err != nil {
		return buffer, err
	}
	return Append(buffer, text), nil
}

// AppendFiles folds AppendFile over paths in order.
func AppendFiles(buffer string, paths ...string) (string, error) {
	for _, path := range paths {
		var err error
		buffer, err = AppendFile(buffer, path)
		if err != nil {
			return buffer, err
		}
	}
	return buffer, nil
}

// Append joins text onto buffer with the blank-line separator.
func Append(buffer, text string) string {
	if buffer == "" {
		return text
	}
	return buffer + "\n\n" + text
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
