package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/aocget/display"
	"github.com/teranos/aocget/version"
)

// newVersionCmd builds the version command
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show aocget version information",
		Long:  `Display version, build time, commit hash, and platform information for the aocget binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(out, info)
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}

	versionCmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return versionCmd
}
