package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ordercheck",
		Short: "Validate order sets and report findings and aggregates",
		Long: `ordercheck reads an order document ({"orders": [...]} as JSON or YAML),
checks every order against the field and cross-field rules, and prints a report
with the findings per order and the requested aggregates.

Example Usage:
  ordercheck report --file orders.json
  ordercheck report --file orders.yaml --top 2 --gmv --format json
  ordercheck version`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newReportCmd(), newVersionCmd())
	return root
}
