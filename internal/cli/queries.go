package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kenmoini/unifi-facts/api/controller"
)

// newQueriesCmd creates the queries catalog command.
func newQueriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queries",
		Short: "List the query catalog",
		Long:  "List every query the query command accepts, with its scope and controller endpoint.",
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Scope", "Endpoint"})

			for _, name := range controller.Queries() {
				desc, err := controller.Lookup(name)
				if err != nil {
					continue
				}
				scope := "site"
				if desc.Global {
					scope = "global"
				}
				t.AppendRow(table.Row{name, scope, desc.Path})
			}

			t.Render()
		},
	}
}
