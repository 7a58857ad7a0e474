package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hslog/hslog-go/internal/heroclass"
)

var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Print the hero to class table",
	Long: `Print the heroes hslog recognizes and the class each one maps to.
Heroes missing from the table are reported with their own lower-cased
name as the class.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CLASS\tHERO")
		for _, e := range heroclass.Entries() {
			fmt.Fprintf(tw, "%s\t%s\n", e.Class, e.Hero)
		}
		return tw.Flush()
	},
}
