package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/partyapatil/Ai-blog-frontend/internal/api"
	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	"github.com/partyapatil/Ai-blog-frontend/internal/config"
	"github.com/partyapatil/Ai-blog-frontend/internal/output"
	"github.com/spf13/cobra"
)

// toCLIError picks the message and exit code the user sees for err.
func toCLIError(err error) *output.CLIError {
	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var empty *article.EmptyInputError
	if errors.As(err, &empty) {
		return &output.CLIError{Summary: empty.Error(), ExitCode: output.ExitUsage, Err: err}
	}

	var invalid *article.ValidationError
	if errors.As(err, &invalid) {
		details := make([]string, len(invalid.Problems))
		for i, p := range invalid.Problems {
			details[i] = fmt.Sprintf("line %d: %s", p.Position, p.Message)
		}
		return &output.CLIError{
			Summary:    "invalid titles",
			Detail:     strings.Join(details, "; "),
			Suggestion: "Every line needs a title before the '|' separator",
			ExitCode:   output.ExitUsage,
			Err:        err,
		}
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		if errors.Is(err, context.Canceled) {
			return &output.CLIError{Summary: "interrupted", ExitCode: output.ExitGeneral, Err: err}
		}
		e := &output.CLIError{Summary: api.UserMessage(err, ""), ExitCode: output.ExitServer, Err: err}
		var urlErr *url.Error
		if reqErr.StatusCode == 0 && errors.As(err, &urlErr) {
			e.Summary = "could not reach the blog server"
			e.Detail = err.Error()
			e.Suggestion = "Check that the backend is running, or point --api-url or " + config.EnvAPIURL + " at it"
		}
		return e
	}

	return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitGeneral, Err: err}
}

// usageArgs makes argument validation failures exit with the usage code.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &output.CLIError{
				Summary:    err.Error(),
				Suggestion: "Run '" + cmd.CommandPath() + " --help' for usage",
				ExitCode:   output.ExitUsage,
			}
		}
		return nil
	}
}
