package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/display"
	"github.com/teranos/aocget/errors"
)

// newConfigCmd builds the config command and its subcommands
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage aocget configuration",
		Long: `Display and check aocget configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (AOC_* prefix, AOC_SESSION for the token)
3. Project config (./aocget.toml, searched up directories)
4. User config (~/.config/aocget/config.toml)
5. System config (/etc/aocget/config.toml)
6. Default values

Examples:
  aocget config show                    # Show current configuration
  aocget config show --format json      # Show configuration in JSON format
  aocget config get output.layout       # Get specific config value
  aocget config validate                # Validate current configuration`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current aocget configuration from all sources. The session token is masked.",
		RunE:  runConfigShow,
	}
	showCmd.Flags().String("format", display.FormatTOML, "Output format: toml, json, yaml")

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., output.layout, http.timeout_seconds)",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		RunE:  runConfigValidate,
	}

	whereCmd := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade, which files were checked and
which AOC_* environment variables are set.`,
		RunE: runConfigWhere,
	}

	configCmd.AddCommand(showCmd, getCmd, validateCmd, whereCmd)
	return configCmd
}

const maskedToken = "********"

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	masked := *cfg
	if masked.Session.Token != "" {
		masked.Session.Token = maskedToken
	}

	data, err := display.Render(masked, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != display.FormatJSON {
		fmt.Fprintln(out, "# aocget configuration")
	}
	_, err = out.Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	v := config.GetViper()
	if !v.IsSet(key) {
		return errors.NewNotFoundError("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), maskSecrets(key, config.Get(key)))
	return nil
}

// maskSecrets replaces a set session token in value, which may be the token
// itself or a table containing it
func maskSecrets(key string, value interface{}) interface{} {
	if key == "session.token" {
		if s, ok := value.(string); ok && s != "" {
			return maskedToken
		}
		return value
	}

	table, ok := value.(map[string]interface{})
	if !ok {
		return value
	}
	masked := make(map[string]interface{}, len(table))
	for k, v := range table {
		masked[k] = maskSecrets(key+"."+strings.ToLower(k), v)
	}
	return masked
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	for i, path := range config.SearchPaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "found"
		}
		fmt.Fprintf(out, "  %d. [FILE]     %s (%s)\n", i+2, path, status)
	}
	fmt.Fprintln(out, "  *. [ENV]      AOC_* environment variables")

	var env []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "AOC_") {
			env = append(env, name)
		}
	}
	sort.Strings(env)

	fmt.Fprintln(out)
	if len(env) == 0 {
		fmt.Fprintln(out, "No AOC_* environment variables set")
		return nil
	}
	fmt.Fprintln(out, "Environment:")
	for _, name := range env {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
