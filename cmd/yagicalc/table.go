package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wiless/yagi/antenna"
)

func (a *app) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the director spacing and length tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)

			fmt.Fprintf(tw, "Director\tSpacing (wl)\t\n")
			fmt.Fprintf(tw, "R-DE\t%.3f\t\n", antenna.ReflectorSpacing)
			for i := range antenna.SpacingTable {
				fmt.Fprintf(tw, "%d\t%.3f\t\n", i+1, antenna.Spacing(i+1))
			}
			fmt.Fprintf(tw, "%d+\t%.3f\t\n\n", len(antenna.SpacingTable)+1, antenna.Spacing(len(antenna.SpacingTable)+1))

			fmt.Fprintf(tw, "Diameter (wl)\tK1\tK2\tK3\tK4\t\n")
			for _, row := range antenna.DirectorTable {
				fmt.Fprintf(tw, "%.3f\t%.4f\t%.5f\t%.5f\t%.4f\t\n", row.Diameter, row.K1, row.K2, row.K3, row.K4)
			}
			return tw.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the yagicalc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yagicalc %s\n", version)
		},
	}
}
