package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/partyapatil/Ai-blog-frontend/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagListJSON    bool
	flagListOffline bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List articles on the server",
	Long: `List every generated article, newest first as the server returns them.

If the server cannot be reached the last fetched list is shown instead.

Examples:
  blogdeck list
  blogdeck list --json | jq '.[].title'
  blogdeck list --offline`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVar(&flagListOffline, "offline", false, "show the cached list without contacting the server")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	svc, closeSvc := openService(logger)
	defer closeSvc()

	listing, err := loadListing(cmd, printer, svc, flagListOffline)
	if err != nil {
		return err
	}

	if flagListJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listing.Articles)
	}

	printer.Header(fmt.Sprintf("Blog (%d)", len(listing.Articles)))
	if len(listing.Articles) == 0 {
		printer.Info("No articles yet. Generate some with 'blogdeck generate' or 'blogdeck bulk'.")
		return nil
	}
	return printArticles(printer, listing.Articles)
}

// loadListing fetches the list, falling back to the snapshot when the
// server is unreachable. It only fails if there is nothing to show.
func loadListing(cmd *cobra.Command, printer *output.Printer, svc *blog.Service, offline bool) (blog.Listing, error) {
	if offline {
		return svc.Cached()
	}

	listing, err := svc.Refresh(cmd.Context())
	if err == nil {
		return listing, nil
	}
	if listing.SyncedAt.IsZero() && len(listing.Articles) == 0 {
		return listing, err
	}
	printer.Warning("could not reach %s, showing articles cached %s", apiURL(), listing.SyncedAt.Local().Format(time.DateTime))
	return listing, nil
}

func printArticles(printer *output.Printer, articles []article.Article) error {
	table := output.NewTable(printer.Out(), []string{"ID", "Title", "Details", "Created"})
	for _, a := range articles {
		created := ""
		if !a.CreatedAt.IsZero() {
			created = render.PublishedDate(a.CreatedAt)
		}
		table.AddRow(a.ID, truncate(a.Title, 60), truncate(a.Details, 40), created)
	}
	return table.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
