// Package export writes generated prompts to plain-text files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WritePrompt saves a prompt (with its hashtags, when present) to a
// timestamped .txt file in dir and returns the path.
func WritePrompt(dir, content string, hashtags []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(content)
	if len(hashtags) > 0 {
		b.WriteString("\n\nHashtags: ")
		b.WriteString(strings.Join(hashtags, " "))
	}
	b.WriteString("\n\nGenerated: ")
	b.WriteString(time.Now().Format(time.RFC1123))
	b.WriteString("\n")

	path := filepath.Join(dir, fmt.Sprintf("prompt-%d.txt", time.Now().UnixMilli()))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write prompt file: %w", err)
	}
	return path, nil
}
