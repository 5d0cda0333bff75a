package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults
const (
	DefaultBaseURL           = "https://adventofcode.com"
	DefaultUserAgent         = "github.com/teranos/aocget"
	DefaultTimeoutSeconds    = 30
	DefaultRequestsPerMinute = 30
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("session.token", "")
	v.SetDefault("session.token_file", defaultTokenFile())

	v.SetDefault("http.base_url", DefaultBaseURL)
	v.SetDefault("http.user_agent", DefaultUserAgent)
	v.SetDefault("http.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("http.requests_per_minute", DefaultRequestsPerMinute)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", defaultCacheDir())

	v.SetDefault("output.root", ".")
	v.SetDefault("output.layout", LayoutTOML)
	v.SetDefault("output.input_mode", InputModeTokens)
}

// BindSensitiveEnvVars binds values that have conventional env names outside the AOC_ prefix scheme
func BindSensitiveEnvVars(v *viper.Viper) {
	// aocd's variable name, so one exported token serves both tools
	_ = v.BindEnv("session.token", "AOC_SESSION")
}

// UserConfigDir returns ~/.config/aocget
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aocget")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aocd", "token")
}

func defaultCacheDir() string {
	dir := UserConfigDir()
	if dir == "" {
		return filepath.Join(os.TempDir(), "aocget-cache")
	}
	return filepath.Join(dir, "cache")
}
