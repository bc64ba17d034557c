package types

import "time"

// HTTPConfig holds shared HTTP settings used when fetching remote pictures.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "deckgen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ImageConfig holds settings for resolving picture references.
type ImageConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxRetries is the number of retry attempts for throttled downloads (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// MaxBytes caps the size of a single picture (default 50 MiB).
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes" mapstructure:"max_bytes"`

	// AllowRemote enables http:// and https:// picture paths.
	AllowRemote bool `json:"allow_remote" yaml:"allow_remote" mapstructure:"allow_remote"`

	// AuthToken is sent as a bearer token with picture downloads. It is
	// normally loaded from the image-auth-token secret, never written out.
	AuthToken string `json:"-" yaml:"-" mapstructure:"auth_token"`
}

// HistoryConfig controls the run history ledger.
type HistoryConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Path is the SQLite database file (default ".deckgen/history.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// OutputConfig controls where and how the deck file is written.
type OutputConfig struct {
	// Dir is the output directory (default ".").
	Dir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// FilenamePrefix precedes the timestamp in the output name (default "presentation").
	FilenamePrefix string `json:"filename_prefix" yaml:"filename_prefix" mapstructure:"filename_prefix"`

	// TOCTitle is the title of the generated contents slide (default "Contents").
	TOCTitle string `json:"toc_title" yaml:"toc_title" mapstructure:"toc_title"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is a logrus level name (default "info").
	Level string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	// Format is "text" or "json" (default "text").
	Format string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Config groups all deckgen settings.
type Config struct {
	OutputConfig `yaml:",inline" mapstructure:",squash"`
	LogConfig    `yaml:",inline" mapstructure:",squash"`

	Images  ImageConfig   `json:"images" yaml:"images" mapstructure:"images"`
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
}

// Defaults for Config fields left zero.
const (
	DefaultOutputDir      = "."
	DefaultFilenamePrefix = "presentation"
	DefaultTOCTitle       = "Contents"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultImageTimeout   = 30 * time.Second
	DefaultImageRetries   = 3
	DefaultImageMaxBytes  = 50 << 20
	DefaultHistoryPath    = ".deckgen/history.db"
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		OutputConfig: OutputConfig{
			Dir:            DefaultOutputDir,
			FilenamePrefix: DefaultFilenamePrefix,
			TOCTitle:       DefaultTOCTitle,
		},
		LogConfig: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Images: ImageConfig{
			HTTPConfig:  HTTPConfig{Timeout: DefaultImageTimeout, UserAgent: "deckgen"},
			MaxRetries:  DefaultImageRetries,
			MaxBytes:    DefaultImageMaxBytes,
			AllowRemote: true,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    DefaultHistoryPath,
		},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig. Boolean switches
// are taken as given.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Dir == "" {
		c.Dir = d.Dir
	}
	if c.FilenamePrefix == "" {
		c.FilenamePrefix = d.FilenamePrefix
	}
	if c.TOCTitle == "" {
		c.TOCTitle = d.TOCTitle
	}
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Images.Timeout <= 0 {
		c.Images.Timeout = d.Images.Timeout
	}
	if c.Images.UserAgent == "" {
		c.Images.UserAgent = d.Images.UserAgent
	}
	if c.Images.MaxRetries <= 0 {
		c.Images.MaxRetries = d.Images.MaxRetries
	}
	if c.Images.MaxBytes <= 0 {
		c.Images.MaxBytes = d.Images.MaxBytes
	}
	if c.History.Path == "" {
		c.History.Path = d.History.Path
	}
	return c
}
