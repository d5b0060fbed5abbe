package config

// Config represents the full tock configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Store configuration
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Journal configuration
	Journal JournalConfig `yaml:"journal" mapstructure:"journal"`
}

// StoreConfig configures where and how the task collection is persisted
type StoreConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
}

// JournalConfig configures the activity journal
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}
