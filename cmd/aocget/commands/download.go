package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/aocget/aoc"
	"github.com/teranos/aocget/config"
	"github.com/teranos/aocget/display"
	"github.com/teranos/aocget/download"
	"github.com/teranos/aocget/errors"
	"github.com/teranos/aocget/logger"
	"github.com/teranos/aocget/output"
	"github.com/teranos/aocget/puzzle"
	"github.com/teranos/aocget/version"
)

// MissingTokenHint is printed when no session token is configured
const MissingTokenHint = "Set AOC_SESSION or write ~/.config/aocd/token to autodownload input files"

// newFetcher builds the data source; tests replace it
var newFetcher = func(cfg *config.Config, token string, log *zap.SugaredLogger) (puzzle.Fetcher, error) {
	return aoc.NewClientFromConfig(cfg, token, log)
}

func addDownloadFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", "", "Directory containing the YEAR/ folders (default: output.root)")
	cmd.Flags().String("layout", "", "Output layout: toml or text (default: output.layout)")
	cmd.Flags().String("input-mode", "", "INPUT.toml content: tokens or raw (default: output.input_mode)")
	cmd.Flags().Bool("no-cache", false, "Neither read nor write the download cache")
}

// RunDownload fetches the puzzle named by args and writes it. Every failure
// after argument parsing is printed as one line and swallowed.
func RunDownload(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	verbosity, _ := cmd.Flags().GetCount("verbose")
	printer := display.NewStatusPrinter(out, verbosity)
	log := logger.ComponentLogger("download")

	id, err := parsePuzzleID(args)
	if err != nil {
		return err
	}

	result, err := fetchAndWrite(cmd, id, printer, log)
	switch {
	case err == nil:
		printer.Written(result.Root, result.Files)
		printer.Done(result.Title, result.Examples)
	case errors.Is(err, errNoToken):
		printer.Hint(MissingTokenHint)
	default:
		fmt.Fprintf(out, "Download of input failed: %v\n", err)
		log.Debugw("Download failed", logger.FieldError, fmt.Sprintf("%+v", err))
		if hints := errors.FlattenHints(err); hints != "" {
			log.Infow("Hint", "hint", hints)
		}
	}
	return nil
}

var errNoToken = errors.New("no session token")

type downloadResult struct {
	*download.Result
	Root string
}

func fetchAndWrite(cmd *cobra.Command, id puzzle.ID, printer *display.StatusPrinter, log *zap.SugaredLogger) (*downloadResult, error) {
	loaded, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg := *loaded
	applyDownloadFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	token, err := cfg.SessionToken()
	if errors.IsUnauthorizedError(err) {
		log.Debugw("No session token", logger.FieldError, err)
		return nil, errNoToken
	}
	if err != nil {
		return nil, err
	}

	cfg.HTTP.UserAgent = version.UserAgent(cfg.HTTP.UserAgent)
	fetcher, err := newFetcher(&cfg, token, logger.ComponentLogger("aoc"))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	defer cancel()

	printer.Fetching(id.String())
	result, err := download.Run(ctx, fetcher, output.NewWriter(cfg.Output, logger.ComponentLogger("output")), id, log)
	if err != nil {
		return nil, err
	}
	return &downloadResult{Result: result, Root: cfg.Output.Root}, nil
}

// applyDownloadFlags overrides configuration with explicitly set flags
func applyDownloadFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Output.Root, _ = flags.GetString("root")
	}
	if flags.Changed("layout") {
		cfg.Output.Layout, _ = flags.GetString("layout")
	}
	if flags.Changed("input-mode") {
		cfg.Output.InputMode, _ = flags.GetString("input-mode")
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
}
