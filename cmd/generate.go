package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt...>",
	Short: "Generate one article from a prompt",
	Long: `Ask the backend to write a single article from a free-form prompt.

Examples:
  blogdeck generate Write an article about React hooks best practices
  blogdeck generate "Explain Kubernetes to a backend developer"`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	svc, closeSvc := openService(logger)
	defer closeSvc()

	prompt := strings.Join(args, " ")
	printer.Info("Generating article... This may take a minute...")
	if err := svc.Generate(cmd.Context(), prompt); err != nil {
		return err
	}
	printer.Success("Article generated successfully!")

	refreshAfterCreate(cmd, printer, svc)
	return nil
}
