package config

// Config represents the aocget configuration
type Config struct {
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session" yaml:"session"`
	HTTP    HTTPConfig    `mapstructure:"http" toml:"http" json:"http" yaml:"http"`
	Cache   CacheConfig   `mapstructure:"cache" toml:"cache" json:"cache" yaml:"cache"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
}

// SessionConfig locates the adventofcode.com session cookie
type SessionConfig struct {
	Token     string `mapstructure:"token" toml:"token" json:"token" yaml:"token"`                     // Raw cookie value (env: AOC_SESSION)
	TokenFile string `mapstructure:"token_file" toml:"token_file" json:"token_file" yaml:"token_file"` // Read when Token is empty (default: ~/.config/aocd/token)
}

// HTTPConfig configures requests to adventofcode.com
type HTTPConfig struct {
	BaseURL           string `mapstructure:"base_url" toml:"base_url" json:"base_url" yaml:"base_url"`
	UserAgent         string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent" yaml:"user_agent"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" yaml:"timeout_seconds"`                         // Bound for a whole run
	RequestsPerMinute int    `mapstructure:"requests_per_minute" toml:"requests_per_minute" json:"requests_per_minute" yaml:"requests_per_minute"` // 0 = unlimited
}

// CacheConfig configures the on-disk cache of inputs and puzzle pages
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled" yaml:"enabled"`
	Dir     string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
}

// OutputConfig configures where and how artifacts are written
type OutputConfig struct {
	Root      string `mapstructure:"root" toml:"root" json:"root" yaml:"root"`                         // Directory containing the <year>/ folders
	Layout    string `mapstructure:"layout" toml:"layout" json:"layout" yaml:"layout"`                 // toml or text
	InputMode string `mapstructure:"input_mode" toml:"input_mode" json:"input_mode" yaml:"input_mode"` // tokens or raw
}

// Output layouts
const (
	LayoutTOML = "toml" // INPUT.toml + EXAMPLES.toml
	LayoutText = "text" // input.txt, example{N}{field}.txt, README.md
)

// Input modes for INPUT.toml
const (
	InputModeTokens = "tokens" // input = [whitespace-separated tokens]
	InputModeRaw    = "raw"    // input_data = "raw text"
)

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
