package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/partyapatil/Ai-blog-frontend/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	fileLogger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	fileLogger.Info("starting", "version", version, "api_url", apiURL())

	svc, closeSvc := openService(fileLogger)
	defer closeSvc()

	return tui.Run(tui.RunOpts{
		Service:       svc,
		APIURL:        apiURL(),
		MarkdownStyle: cfg.GetMarkdownStyle(),
		ExportDir:     cfg.ExportPath(),
		Logger:        fileLogger,
	})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
