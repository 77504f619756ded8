// Package cmd contains the blogdeck command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/partyapatil/Ai-blog-frontend/internal/browser"
	"github.com/partyapatil/Ai-blog-frontend/internal/config"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/partyapatil/Ai-blog-frontend/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagAPIURL  string
	flagVerbose bool
	flagQuiet   bool
	flagColor   string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blogdeck",
	Short: "Terminal client for the AI blog generator",
	Long: `blogdeck drives an AI blog generation backend from the terminal.

Run it without arguments for the interactive view, or use a subcommand:
  blogdeck generate "Write about React hooks best practices"
  blogdeck bulk --file titles.txt        # one "Title | details" per line
  blogdeck list                          # articles on the server
  blogdeck show <id>                     # read one article
  blogdeck delete-all`,
	Args:          usageArgs(cobra.NoArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides "+config.EnvAPIURL+" and config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only print primary output and errors")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "color output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &output.CLIError{Summary: err.Error(), Suggestion: "Run '" + cmd.CommandPath() + " --help' for usage", ExitCode: output.ExitUsage}
	})

	versionCmd.Flags().BoolVar(&flagCheckUpdate, "check", false, "check GitHub for a newer release")
	versionCmd.Flags().BoolVar(&flagOpenRelease, "open", false, "with --check, open the release page when one is newer")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config needed to print a version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "blogdeck %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheckUpdate {
			return nil
		}

		printer := newPrinter(cmd)
		res, err := update.Check(cmd.Context(), version)
		if err != nil {
			printer.Warning("%v", err)
			return nil
		}
		if res == nil {
			printer.Success("blogdeck is up to date")
			return nil
		}
		printer.Info("A newer release is available: %s", printer.Bold(res.LatestVersion))
		if res.URL == "" {
			return nil
		}
		if !flagOpenRelease {
			printer.Info("  %s", res.URL)
			return nil
		}
		if err := browser.Open(res.URL); err != nil {
			printer.Warning("could not open browser: %v", err)
		}
		return nil
	},
}

var (
	flagCheckUpdate bool
	flagOpenRelease bool
)

// initConfig loads .env, the config file and the stderr logger.
func initConfig() error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("reading .env", "err", err)
	}

	if _, err := output.ParseColorMode(flagColor); err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitUsage}
	}
	if flagAPIURL != "" {
		if err := config.CheckAPIURL(flagAPIURL); err != nil {
			return &output.CLIError{Summary: "invalid --api-url", Detail: err.Error(), ExitCode: output.ExitUsage}
		}
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return &output.CLIError{
			Summary:    "could not load configuration",
			Detail:     err.Error(),
			Suggestion: "Fix the file or pass --config with another path (default " + config.DefaultConfigPath() + ")",
			ExitCode:   output.ExitGeneral,
			Err:        err,
		}
	}

	logger.Debug("configuration loaded", "api_url", apiURL(), "cache", cfg.CachePath(), "timeout", cfg.Timeout())
	return nil
}

// apiURL applies the --api-url flag over env and config.
func apiURL() string {
	if flagAPIURL != "" {
		return config.NormalizeAPIURL(flagAPIURL)
	}
	return cfg.ResolvedAPIURL()
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return run(ctx)
}

func run(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return output.ExitSuccess
	}

	cliErr := toCLIError(err)
	newPrinter(rootCmd).FormatError(cliErr)
	return cliErr.ExitCode
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
