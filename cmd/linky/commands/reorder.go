package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"linky/internal/page"
)

// reorder <file.html>...: move the welcome video before the links block.
func reorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <file.html>...",
		Short: "Move the welcome video before the links block in HTML files",
		Long: "Rewrites each file so the #welcome-vid element immediately precedes " +
			"the first .links block under the same parent. Files without both " +
			"elements are left untouched; that is not an error.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				changed, err := page.ReorderFile(path)
				if err != nil {
					return err
				}
				if changed {
					fmt.Printf("%s: reordered\n", path)
				} else {
					logger.Debug().Str("file", path).Msg("already in place")
				}
			}
			return nil
		},
	}
}
