package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/tracker"
)

func newCreateCmd(global *globalOptions) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Registra un nuevo caso a partir de un archivo YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readCaseFile(filePath)
			if err != nil {
				return err
			}

			notifier := &cliNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			command := tracker.NewCreateCommand(global.api(), nil, notifier, &cliNavigator{out: cmd.OutOrStdout()})

			form := tracker.NewCaseForm(command)
			form.Edit(func(in *domain.CreateCaseInput) { *in = *input })

			created, err := form.Submit(cmd.Context())
			if err != nil {
				if form.Phase() == tracker.FormInvalid {
					printFieldErrors(cmd.ErrOrStderr(), form.Errors())
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Caso creado: %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "YAML file describing the case (use - for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readCaseFile(path string) (*domain.CreateCaseInput, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}

	var input domain.CreateCaseInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("parse case file: %w", err)
	}
	return &input, nil
}

// printFieldErrors lists validation messages in stable field order.
func printFieldErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "  %s: %s\n", field, errs[field])
	}
}

// cliNotifier writes notifications to the command's output streams.
type cliNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *cliNotifier) Success(message string) { fmt.Fprintln(n.out, message) }
func (n *cliNotifier) Error(message string)   { fmt.Fprintln(n.errOut, message) }

// cliNavigator prints the detail path of the view a UI would navigate to.
type cliNavigator struct {
	out io.Writer
}

func (n *cliNavigator) NavigateTo(path string) {
	fmt.Fprintf(n.out, "Ver detalle: %s\n", path)
}
