package utils

import (
	"fmt"
	"os"
	"strings"
)

// LoadPrompt reads a prompt template from an exact file path, trimming
// surrounding whitespace. No fallback searching is performed.
func LoadPrompt(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return strings.TrimSpace(string(content)), nil
}
