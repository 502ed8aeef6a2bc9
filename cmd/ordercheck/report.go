package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"orderaudit/internal/adapters/out/filesource"
	"orderaudit/internal/core/domain/services"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errFindings = errors.New("orders have findings")

type reportFlags struct {
	file        string
	top         int
	gmv         bool
	format      string
	strict      bool
	parallelism int
}

func newReportCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report on an order document",
		Long: `report loads the order document, validates every order and prints the report.

A document without an "orders" collection is rejected before any order is checked.
Findings on individual orders never stop the run; with --strict the command exits
non-zero when at least one order has a finding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Path to the order document (.json, .yaml or .yml)")
	cmd.Flags().IntVar(&flags.top, "top", 0, "Include the top N SKUs by quantity")
	cmd.Flags().BoolVar(&flags.gmv, "gmv", false, "Include GMV per order")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "Output format: text or json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit non-zero when any order has a finding")
	cmd.Flags().IntVar(&flags.parallelism, "parallelism", 0, "Orders inspected concurrently (0 uses all CPUs)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(cmd *cobra.Command, flags reportFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("unknown format %q", flags.format)
	}
	if flags.top < 0 {
		return fmt.Errorf("--top must not be negative")
	}

	source, err := filesource.New(flags.file)
	if err != nil {
		return err
	}

	orders, err := source.Load(cmd.Context())
	if err != nil {
		return err
	}

	builder := services.NewReportBuilder()
	if flags.parallelism > 0 {
		builder = builder.WithParallelism(flags.parallelism)
	}

	rep, err := builder.Build(cmd.Context(), orders, services.ReportOptions{
		IncludeTopSKUs: cmd.Flags().Changed("top"),
		TopK:           flags.top,
		IncludeGMV:     flags.gmv,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(rep); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, rep.Summary())
	}

	if flags.strict && !rep.IsClean() {
		return errFindings
	}
	return nil
}
