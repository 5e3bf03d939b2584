package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sixteen/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect quiz content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a content file, or the built-in content",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.Content
		if len(args) == 1 {
			path = args[0]
		}

		c, err := content.Load(path)
		if err != nil {
			return err
		}

		name := path
		if name == "" {
			name = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d questions, %d results)\n",
			name, c.Version, len(c.Questions), len(c.Results))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
