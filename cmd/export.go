package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/partyapatil/Ai-blog-frontend/internal/browser"
	"github.com/partyapatil/Ai-blog-frontend/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagExportOut     string
	flagExportOpen    bool
	flagExportOffline bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Save an article as a standalone HTML page",
	Long: `Render an article to sanitized HTML. By default the page is written to the
export directory from the config file; -o takes a directory or an .html path.

Examples:
  blogdeck export 65f1c0de --open
  blogdeck export 65f1c0de -o ~/site/posts/
  blogdeck export 65f1c0de -o docker.html`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "output directory or .html file")
	exportCmd.Flags().BoolVar(&flagExportOpen, "open", false, "open the page in the browser")
	exportCmd.Flags().BoolVar(&flagExportOffline, "offline", false, "export from the local cache")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	svc, closeSvc := openService(logger)
	defer closeSvc()

	a, err := findArticle(cmd, printer, svc, args[0], flagExportOffline)
	if err != nil {
		return err
	}

	var path string
	if strings.HasSuffix(strings.ToLower(flagExportOut), ".html") {
		data, err := render.HTML(*a)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(flagExportOut), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagExportOut, err)
		}
		path = flagExportOut
	} else {
		dir := flagExportOut
		if dir == "" {
			dir = cfg.ExportPath()
		}
		path, err = render.WriteHTML(*a, dir)
		if err != nil {
			return err
		}
	}

	printer.Success("Exported %q to %s", a.Title, path)
	if flagExportOpen {
		if err := browser.OpenFile(path); err != nil {
			printer.Warning("could not open browser: %v", err)
		}
	}
	return nil
}
