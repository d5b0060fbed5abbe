package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Path:   filepath.Join(".tock", "tasks.json"),
			Format: "json",
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    filepath.Join(".tock", "journal.jsonl"),
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# tock global configuration
version: "1"

# Task store
store:
  # Path is relative to the directory tock runs in unless absolute
  path: .tock/tasks.json
  # Either "json" or "yaml"; both are human-inspectable
  format: json

# Activity journal (one JSONL entry per mutation)
journal:
  enabled: true
  path: .tock/journal.jsonl
`
	return os.WriteFile(path, []byte(content), 0644)
}
