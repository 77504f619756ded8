package cmd

import (
	"log/slog"

	"github.com/partyapatil/Ai-blog-frontend/internal/api"
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/cache"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/spf13/cobra"
)

// openService wires the API client and the local snapshot. The snapshot is
// optional: if it cannot be opened the service runs without one. The
// returned func closes it.
func openService(log *slog.Logger) (*blog.Service, func()) {
	client := api.New(api.Options{
		BaseURL: apiURL(),
		Version: version,
		Timeout: cfg.Timeout(),
		Logger:  log,
	})

	db, err := cache.Open(cfg.CachePath())
	if err != nil {
		log.Warn("opening article cache, continuing without it", "path", cfg.CachePath(), "err", err)
		return blog.New(client, nil, log), func() {}
	}
	return blog.New(client, db, log), func() {
		if err := db.Close(); err != nil {
			log.Warn("closing article cache", "err", err)
		}
	}
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	mode, _ := output.ParseColorMode(flagColor)
	return output.NewPrinter(output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: cfg == nil || cfg.ColorsEnabled(),
		Quiet:        flagQuiet,
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
	})
}
