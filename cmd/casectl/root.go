package main

import (
	"github.com/spf13/cobra"

	"github.com/dcdanielca/casetracker/internal/client"
	"github.com/dcdanielca/casetracker/internal/tracker"
)

// globalOptions holds the flags shared by every subcommand.
type globalOptions struct {
	baseURL string
}

func (o *globalOptions) api() tracker.CaseAPI {
	return client.New(o.baseURL)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "casectl",
		Short:         "Consulta y registra casos de soporte con sus queries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://127.0.0.1:8080", "base URL of the case tracker API")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
	)
	return cmd
}
