package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileWrite writes files inside a sandbox directory. Input is JSON with
// "filename" and "content" fields. Paths that escape the sandbox are
// rejected.
type FileWrite struct {
	baseDir string
}

// NewFileWrite creates a file-write tool rooted at baseDir.
func NewFileWrite(baseDir string) *FileWrite {
	return &FileWrite{baseDir: baseDir}
}

// Name returns the name of the tool.
func (f *FileWrite) Name() string {
	return "file_write"
}

// Description returns the description of the tool.
func (f *FileWrite) Description() string {
	return "Writes content to a file. Input should be JSON with 'filename' and 'content'."
}

type fileWriteInput struct {
	Filename string  `json:"filename"`
	Content  *string `json:"content"`
}

// Call decodes the JSON input and writes the file under the sandbox
// directory.
func (f *FileWrite) Call(ctx context.Context, input string) (string, error) {
	var in fileWriteInput
	if err := json.Unmarshal([]byte(input), &in); err != nil {
		return "", fmt.Errorf("input must be valid JSON: %w", err)
	}
	if in.Filename == "" || in.Content == nil {
		return "", fmt.Errorf("both 'filename' and 'content' are required")
	}

	path := filepath.Join(f.baseDir, in.Filename)
	// filepath.Join cleans the path; anything still outside baseDir was a
	// traversal attempt.
	rel, err := filepath.Rel(f.baseDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("filename %q escapes the sandbox directory", in.Filename)
	}

	if dir := filepath.Dir(path); dir != f.baseDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(*in.Content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return "Successfully wrote to " + path, nil
}
