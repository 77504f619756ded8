package cmd

import (
	"fmt"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/partyapatil/Ai-blog-frontend/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagShowRaw     bool
	flagShowWidth   int
	flagShowOffline bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one article",
	Long: `Print an article rendered for the terminal. Use --raw for the Markdown source.

Examples:
  blogdeck show 65f1c0de
  blogdeck show 65f1c0de --raw > docker.md`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRaw, "raw", false, "print the Markdown source")
	showCmd.Flags().IntVar(&flagShowWidth, "width", 80, "wrap rendered output at this many columns")
	showCmd.Flags().BoolVar(&flagShowOffline, "offline", false, "read the article from the local cache")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	svc, closeSvc := openService(logger)
	defer closeSvc()

	a, err := findArticle(cmd, printer, svc, args[0], flagShowOffline)
	if err != nil {
		return err
	}

	if flagShowRaw {
		fmt.Fprintln(cmd.OutOrStdout(), a.Content)
		return nil
	}

	out, err := render.Terminal(a.Content, flagShowWidth, cfg.GetMarkdownStyle())
	if err != nil {
		return err
	}
	printer.Header(a.Title)
	if !a.CreatedAt.IsZero() {
		printer.Info("%s", printer.Dim("Published: "+render.PublishedDate(a.CreatedAt)))
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// findArticle looks id up in the current list, or in the cache when
// offline. The backend has no single-article endpoint.
func findArticle(cmd *cobra.Command, printer *output.Printer, svc *blog.Service, id string, offline bool) (*article.Article, error) {
	var a *article.Article
	if offline {
		var err error
		if a, err = svc.CachedArticle(id); err != nil {
			return nil, err
		}
	} else {
		listing, err := loadListing(cmd, printer, svc, false)
		if err != nil {
			return nil, err
		}
		a = article.Find(listing.Articles, id)
	}
	if a == nil {
		return nil, &output.CLIError{
			Summary:    fmt.Sprintf("no article with id %q", id),
			Suggestion: "Run 'blogdeck list' to see article ids",
			ExitCode:   output.ExitUsage,
		}
	}
	return a, nil
}
