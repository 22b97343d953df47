// Package cli wires the cobra commands: fetch-and-display, interactive
// browsing, cache and key management.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stellarview/apod/internal/apod"
	"github.com/stellarview/apod/internal/browser"
	"github.com/stellarview/apod/internal/config"
	"github.com/stellarview/apod/internal/display"
	"github.com/stellarview/apod/internal/logging"
	"github.com/stellarview/apod/internal/store"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
	openMedia  bool
)

var rootCmd = &cobra.Command{
	Use:          "apod [date]",
	Short:        "View the NASA Astronomy Picture of the Day",
	Long:         "Fetches the Astronomy Picture of the Day for a date (default: today), shows it in the terminal, and records it in a local CSV history.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		if os.Getenv("APOD_NO_COLOR") != "" {
			noColor = true
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVarP(&openMedia, "open", "o", false, "Open the media URL in the default browser")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("apod %s\n", version)
		return nil
	}

	date := time.Now().Format(apod.DateFormat)
	if len(args) > 0 {
		// Passed through as-is: range and format checks are the
		// service's call.
		date = args[0]
	}
	return fetchAndShow(cmd.Context(), date)
}

// isTerminal is a variable so tests can force the non-TTY path.
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// fetchAndShow runs the one fetch-then-upsert sequence per invocation:
// fetch the date, render it (or the generic failure message), and record a
// fresh entry in the CSV history.
func fetchAndShow(ctx context.Context, date string) error {
	logger := logging.FromContext(ctx)
	cfg := config.Get()

	key, source := config.FindAPIKey()
	logger.Debug("resolved api key", "source", source)
	if source == config.KeySourceDemo {
		logger.Info("no API key configured, using DEMO_KEY (rate-limited); run 'apod key set'")
	}

	var clientOpts []apod.ClientOption
	if cfg.Fetch.BaseURL != "" {
		clientOpts = append(clientOpts, apod.WithBaseURL(cfg.Fetch.BaseURL))
	}
	client := apod.NewClient(key, cfg.Fetch.Timeout, clientOpts...)

	var entry apod.Entry
	var fetchErr error
	doFetch := func() { entry, fetchErr = client.Fetch(ctx, date) }

	if display.SpinnerShouldShow(quiet, jsonOutput, !isTerminal()) {
		if err := display.SpinnerRun(date, doFetch); err != nil {
			return err
		}
	} else {
		doFetch()
	}

	if fetchErr != nil {
		// All failure kinds collapse to one user-facing message; the
		// kind only goes to the log.
		logger.Warn("fetch failed", "date", date, "kind", apod.KindOf(fetchErr), "err", fetchErr)
		if jsonOutput {
			return display.OutputJSON(outWriter, display.FetchErrorJSON{
				Error: display.FetchErrorDetailJSON{
					Kind:    string(apod.KindOf(fetchErr)),
					Date:    date,
					Message: fetchErr.Error(),
				},
			})
		}
		if !quiet {
			outln(display.RenderFetchFailure(noColor))
		}
		return nil
	}

	ds, added, err := store.Upsert(entry, cfg.CacheFile())
	if err != nil {
		// An unreadable cache file is fatal for the whole operation.
		return err
	}
	logger.Debug("cache updated", "path", cfg.CacheFile(), "rows", len(ds), "appended", added)

	if jsonOutput {
		return display.OutputJSON(outWriter, display.EntryJSON{
			Entry:  entry,
			Cached: !added,
			Rows:   len(ds),
		})
	}

	width := cfg.Display.WrapWidth
	if width <= 0 {
		width = display.TerminalWidth()
	}
	outln(display.RenderEntry(entry, display.EntryOptions{
		NoColor:  noColor,
		Width:    width,
		ShowURLs: cfg.Display.ShowURLs && !quiet,
	}))

	if openMedia {
		url := entry.BestURL()
		out("\nOpening %s\n", url)
		browser.Open(url)
	}
	return nil
}
