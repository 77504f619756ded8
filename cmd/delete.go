package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/spf13/cobra"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every article on the server",
	Long: `Delete all articles on the server. Asks for confirmation unless --yes is given.

There is no undo.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runDeleteAll,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDeleteAll(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	svc, closeSvc := openService(logger)
	defer closeSvc()

	if !flagDeleteYes {
		ok, err := confirm(cmd, "Delete all articles? This cannot be undone. [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			printer.Info("Nothing deleted.")
			return nil
		}
	}

	if err := svc.DeleteAll(cmd.Context()); err != nil {
		return &output.CLIError{Summary: "Error deleting articles", Detail: err.Error(), ExitCode: output.ExitServer, Err: err}
	}
	printer.Success("All articles deleted")
	return nil
}

func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprint(cmd.ErrOrStderr(), question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		// EOF without an answer counts as no
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
