package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/logger"
	"github.com/teranos/aocget/puzzle"
)

// NewRootCmd builds the aocget command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aocget YEAR DAY",
		Short: "Download Advent of Code input and examples into a day directory",
		Long: `aocget downloads one Advent of Code puzzle and writes it into the
matching day directory under <root>/<YEAR>/, the first directory whose
name starts with the zero-padded day (e.g. 2023/01-trebuchet).

TOML layout (default):
  INPUT.toml     input = ["tok", ...]   (or input_data = "..." with --input-mode raw)
  EXAMPLES.toml  [example-1] input_data, answer_a, answer_b, extra

Text layout (--layout text):
  input.txt, example0input.txt, example0answerA.txt, ..., README.md

The session cookie is read from AOC_SESSION or ~/.config/aocd/token.
Download errors are reported and never fail the process.

Examples:
  aocget 2023 1                     # Write INPUT.toml and EXAMPLES.toml into 2023/01*/
  aocget 2023 1 --layout text       # Write input.txt, example files and README.md
  aocget 2023 1 --root ~/aoc -v     # Use ~/aoc as root, log progress
  aocget config show                # Show effective configuration`,
		Args:              PuzzleArgs,
		PersistentPreRunE: initLogger,
		RunE:              RunDownload,
	}

	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Emit logs as JSON on stderr")

	addDownloadFlags(rootCmd)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// PuzzleArgs accepts exactly YEAR and DAY, both integers. Range checks
// happen later so that they are reported like any other download failure.
func PuzzleArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	_, err := parsePuzzleID(args)
	return err
}

func parsePuzzleID(args []string) (puzzle.ID, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return puzzle.ID{}, errors.Newf("invalid YEAR %q: must be an integer", args[0])
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return puzzle.ID{}, errors.Newf("invalid DAY %q: must be an integer", args[1])
	}
	return puzzle.ID{Year: year, Day: day}, nil
}

func initLogger(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	if err := logger.Initialize(jsonLog, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Logger.Debugw("Logger initialized", "level", logger.LevelName(verbosity))
	return nil
}
