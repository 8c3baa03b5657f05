package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dcdanielca/casetracker/internal/tracker"
)

func newGetCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Muestra un caso con todas sus queries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := tracker.NewDetailSession(global.api())
			state := session.Load(cmd.Context(), args[0])
			if state.Err != nil {
				return state.Err
			}

			c := state.Case
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Caso:       %s\n", c.ID)
			fmt.Fprintf(out, "Título:     %s\n", c.Title)
			fmt.Fprintf(out, "Tipo:       %s\n", c.CaseType)
			fmt.Fprintf(out, "Prioridad:  %s\n", c.Priority)
			fmt.Fprintf(out, "Estado:     %s\n", c.Status)
			fmt.Fprintf(out, "Creado por: %s el %s\n", c.CreatedBy, c.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "\n%s\n", c.Description)

			if len(c.Queries) == 0 {
				return nil
			}

			fmt.Fprintf(out, "\nQueries (%d):\n", len(c.Queries))
			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"#", "Base de datos", "Esquema", "Query", "Ejecutada"})
			for i, q := range c.Queries {
				tw.AppendRow(table.Row{
					i + 1,
					q.DatabaseName,
					q.SchemaName,
					q.QueryText,
					q.ExecutedAt.Format("2006-01-02 15:04"),
				})
			}
			tw.Render()
			return nil
		},
	}
}
