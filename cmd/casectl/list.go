package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/dcdanielca/casetracker/internal/filters"
	"github.com/dcdanielca/casetracker/internal/tracker"
)

type listOptions struct {
	page      int
	status    string
	priority  string
	caseType  string
	search    string
	sortBy    string
	sortOrder string
}

func newListCmd(global *globalOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista los casos registrados, con filtros y paginación",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, global, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	cmd.Flags().StringVar(&opts.status, "status", "", "filter by status (open|in_progress|resolved|closed)")
	cmd.Flags().StringVar(&opts.priority, "priority", "", "filter by priority (low|medium|high|critical)")
	cmd.Flags().StringVar(&opts.caseType, "type", "", "filter by case type (support|requirement|investigation)")
	cmd.Flags().StringVar(&opts.search, "search", "", "free text search over title and description")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "sort field (created_at|title|priority|status|queries_count)")
	cmd.Flags().StringVar(&opts.sortOrder, "sort-order", "", "sort direction (asc|desc)")
	return cmd
}

func runList(cmd *cobra.Command, global *globalOptions, opts *listOptions) error {
	values := url.Values{}
	if opts.page > 1 {
		values.Set("page", strconv.Itoa(opts.page))
	}
	set := func(key, v string) {
		if v != "" {
			values.Set(key, v)
		}
	}
	set("status", opts.status)
	set("priority", opts.priority)
	set("case_type", opts.caseType)
	set("search", opts.search)
	set("sort_by", opts.sortBy)
	set("sort_order", opts.sortOrder)

	session := tracker.NewListSession(global.api(), filters.NewMemoryStore(values))
	state := session.Refresh(cmd.Context())
	if state.Err != nil {
		return state.Err
	}

	result := state.Result
	if len(result.Items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No se encontraron casos")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"ID", "Título", "Tipo", "Prioridad", "Estado", "Queries", "Creado"})
	for _, c := range result.Items {
		tw.AppendRow(table.Row{
			c.ID,
			c.Title,
			c.CaseType,
			c.Priority,
			c.Status,
			c.QueriesCount,
			c.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	tw.Render()

	fmt.Fprintln(cmd.OutOrStdout(), pagerFooter(tracker.NewPager(result.Page, result.Pages), result.Total))
	return nil
}

// pagerFooter renders the "Página X de Y" line with the visible page window,
// the current page bracketed.
func pagerFooter(p tracker.Pager, total int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Página %d de %d (%d casos)", p.Current, p.Total, total)

	window := p.Window()
	if len(window) > 1 {
		b.WriteString("  |")
		for _, n := range window {
			if n == p.Current {
				fmt.Fprintf(&b, " [%d]", n)
			} else {
				fmt.Fprintf(&b, " %d", n)
			}
		}
	}
	return b.String()
}
