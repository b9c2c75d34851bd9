package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompt(t *testing.T) {
	// Create a temporary directory for test files
	tempDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer os.Chdir(originalWd)
	os.Chdir(tempDir)

	// Create prompts directory
	err := os.Mkdir("prompts", 0755)
	require.NoError(t, err)

	// Test case 1: Load from exact path prompts/search-unions.txt
	testContent1 := "Search for labor unions in the given region.\nReturn structured results."
	testFile1 := filepath.Join("prompts", "search-unions.txt")
	err = os.WriteFile(testFile1, []byte(testContent1), 0644)
	require.NoError(t, err)

	content, err := LoadPrompt(testFile1)
	require.NoError(t, err)
	assert.Equal(t, testContent1, content)

	// Test case 2: Load from exact path prompts/deep-search.md
	testContent2 := "# Research Instructions\n\nInvestigate the named organization in depth."
	testFile2 := filepath.Join("prompts", "deep-search.md")
	err = os.WriteFile(testFile2, []byte(testContent2), 0644)
	require.NoError(t, err)

	content, err = LoadPrompt(testFile2)
	require.NoError(t, err)
	assert.Equal(t, testContent2, content)

	// Test case 3: File not found
	_, err = LoadPrompt("nonexistent-file.txt")
	assert.Error(t, err)

	// Test case 4: Load from root directory with exact path
	testContent3 := "Root level prompt content"
	testFile3 := "root-prompt.txt"
	err = os.WriteFile(testFile3, []byte(testContent3), 0644)
	require.NoError(t, err)

	content, err = LoadPrompt(testFile3)
	require.NoError(t, err)
	assert.Equal(t, testContent3, content)

	// Test case 5: Surrounding whitespace is trimmed
	testFile4 := "padded-prompt.txt"
	err = os.WriteFile(testFile4, []byte("\n\n  trimmed content  \n"), 0644)
	require.NoError(t, err)

	content, err = LoadPrompt(testFile4)
	require.NoError(t, err)
	assert.Equal(t, "trimmed content", content)
}
