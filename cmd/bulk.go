package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/blog"
	"github.com/partyapatil/Ai-blog-frontend/internal/feed"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagBulkFile  string
	flagFromFeed  string
	flagFeedLimit int
	flagDryRun    bool
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Generate several articles in one request",
	Long: `Generate one article per input line. Each line is a title, optionally
followed by "|" and extra details for the writer:

  Docker for Beginners | Step-by-step tutorial
  Python vs JavaScript: Key Differences

Input comes from --file, from an RSS/Atom feed with --from-feed, or stdin.

Examples:
  blogdeck bulk --file titles.txt
  cat titles.txt | blogdeck bulk
  blogdeck bulk --from-feed https://go.dev/blog/feed.atom --limit 5 --dry-run
  blogdeck bulk --from-feed https://go.dev/blog/feed.atom --dry-run -q > titles.txt`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runBulk,
}

func init() {
	bulkCmd.Flags().StringVarP(&flagBulkFile, "file", "f", "", "read titles from file ('-' for stdin)")
	bulkCmd.Flags().StringVar(&flagFromFeed, "from-feed", "", "take titles from an RSS or Atom feed URL")
	bulkCmd.Flags().IntVar(&flagFeedLimit, "limit", 10, "with --from-feed, use at most this many items (0 for all)")
	bulkCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "parse and validate only, send nothing")
	bulkCmd.MarkFlagsMutuallyExclusive("file", "from-feed")

	rootCmd.AddCommand(bulkCmd)
}

func runBulk(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	raw, err := readBulkInput(cmd)
	if err != nil {
		return err
	}

	reqs, err := article.ParseBulk(raw)
	if err != nil {
		return err
	}

	if flagDryRun {
		if err := article.Validate(reqs); err != nil {
			return err
		}
		return printRequests(printer, reqs)
	}

	svc, closeSvc := openService(logger)
	defer closeSvc()

	printer.Info("Generating %d articles... This may take a minute...", len(reqs))
	count, err := svc.Submit(cmd.Context(), reqs)
	if err != nil {
		return err
	}
	printer.Success("%d articles generated successfully!", count)

	refreshAfterCreate(cmd, printer, svc)
	return nil
}

// readBulkInput returns the raw bulk text from whichever source the flags
// select.
func readBulkInput(cmd *cobra.Command) (string, error) {
	switch {
	case flagFromFeed != "":
		raw, err := feed.Titles(cmd.Context(), flagFromFeed, flagFeedLimit)
		if err != nil {
			return "", &output.CLIError{Summary: "could not read feed", Detail: err.Error(), ExitCode: output.ExitGeneral, Err: err}
		}
		return raw, nil

	case flagBulkFile != "" && flagBulkFile != "-":
		data, err := os.ReadFile(flagBulkFile)
		if err != nil {
			return "", &output.CLIError{Summary: "could not read titles file", Detail: err.Error(), ExitCode: output.ExitUsage, Err: err}
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter titles, one per line (Title | optional details). Finish with Ctrl+D.")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// printRequests shows what would be sent. With --quiet it prints the
// normalized input instead, ready to feed back into bulk.
func printRequests(printer *output.Printer, reqs []article.GenerationRequest) error {
	if printer.IsQuiet() {
		printer.Print("%s", strings.TrimSuffix(article.FormatBulk(reqs), "\n"))
		return nil
	}
	printer.Header(fmt.Sprintf("%d articles would be generated", len(reqs)))
	table := output.NewTable(printer.Out(), []string{"#", "Title", "Details"})
	for i, r := range reqs {
		table.AddRow(fmt.Sprint(i+1), r.Title, r.Details)
	}
	return table.Render()
}

// refreshAfterCreate updates the local snapshot. Generation already
// succeeded, so a failure here is only a warning.
func refreshAfterCreate(cmd *cobra.Command, printer *output.Printer, svc *blog.Service) {
	listing, err := svc.Refresh(cmd.Context())
	if err != nil {
		printer.Warning("article list not refreshed: %v", err)
		return
	}
	printer.Info("The blog now has %d articles. Run 'blogdeck list' to see them.", len(listing.Articles))
}
