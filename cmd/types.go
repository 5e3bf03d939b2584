package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/sixteen/internal/content"
	"github.com/abhisek/sixteen/internal/personality"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the sixteen types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := content.Load(settings.Content)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tTITLE\tLINK")
		for _, t := range personality.AllTypes() {
			rec, err := c.Lookup(t)
			if err != nil {
				fmt.Fprintf(tw, "%s\t-\t%s\n", t, c.CTALink(t))
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t, rec.Title, c.CTALink(t))
		}
		return tw.Flush()
	},
}
