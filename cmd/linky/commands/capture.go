package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// capture <linktree-url>: fetch the page and write link files.
func captureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture <linktree-url>",
		Short: "Fetch a Linktree page and write markdown link files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := wire.Capture.Capture(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Captured %d links, %d unchanged (%d images downloaded, %d unchanged)\n",
				sum.Links, sum.LinksSkipped, sum.Images, sum.ImagesSkipped)
			return nil
		},
	}
}
