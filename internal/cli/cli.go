package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmorosoli/volleywatch/internal/config"
	"github.com/dmorosoli/volleywatch/internal/cycle"
	"github.com/dmorosoli/volleywatch/internal/logger"
	"github.com/dmorosoli/volleywatch/internal/notifier"
	"github.com/dmorosoli/volleywatch/internal/scraper"
	"github.com/dmorosoli/volleywatch/internal/state"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitAlertsSent = 2
)

var (
	flagConfig    string
	flagURL       string
	flagKeyword   string
	flagDataDir   string
	flagLookahead int
	flagDryRun    bool
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volleywatch",
		Short: "Watch a schedule page for the tracked team's matches",
		Long: `Run one scrape cycle against the configured schedule page.
Extracts candidate matches around mentions of the tracked team, reconciles
them against the persisted store, and sends at most one upcoming alert and
one result alert per match.`,
		RunE: runCycle,
	}

	cmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath(), "Path to config file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Schedule page URL (overrides config)")
	cmd.Flags().StringVar(&flagKeyword, "keyword", "", "Tracked team keyword (overrides config)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Data directory for the state file (overrides config)")
	cmd.Flags().IntVar(&flagLookahead, "lookahead-days", 0, "Upcoming alert window in days (overrides config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print alerts instead of sending them")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCycle is the main command logic
func runCycle(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	storage, err := state.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sink, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	runner := &cycle.Runner{
		Fetcher:       scraper.New(cfg.URL),
		Storage:       storage,
		Notifier:      sink,
		Keyword:       cfg.Keyword,
		LookaheadDays: cfg.LookaheadDays,
	}

	logger.Info("starting cycle", logger.Fields{
		"url":     cfg.URL,
		"keyword": cfg.Keyword,
		"store":   storage.Path(),
	})

	start := time.Now()
	report, err := runner.Run()
	if err != nil {
		return err
	}
	logger.RecordTiming("cycle.run", time.Since(start))

	if err := WriteOutput(os.Stdout, report, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(report.Alerts) > 0 {
		os.Exit(ExitAlertsSent)
	}
	os.Exit(ExitSuccess)
	return nil
}

// applyFlags lets command-line flags override the loaded config.
func applyFlags(cfg *config.Config) {
	if flagURL != "" {
		cfg.URL = flagURL
	}
	if flagKeyword != "" {
		cfg.Keyword = flagKeyword
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLookahead > 0 {
		cfg.LookaheadDays = flagLookahead
	}
}

// buildNotifier assembles the delivery channels: dry-run printer, or
// Telegram with an optional Twitter mirror.
func buildNotifier(cfg *config.Config) (notifier.Notifier, error) {
	if flagDryRun {
		return notifier.NewDryRunNotifier(os.Stdout), nil
	}

	tg, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram notifier: %w", err)
	}

	if !cfg.Twitter.Enabled {
		return tg, nil
	}

	tw, err := notifier.NewTwitterNotifier()
	if err != nil {
		return nil, fmt.Errorf("initializing twitter mirror: %w", err)
	}
	return notifier.Multi{tg, tw}, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
