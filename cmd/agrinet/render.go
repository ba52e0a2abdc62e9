package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/agrinet/internal/web/pages"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the home page to stdout or a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		html, err := pages.HomeHTML()
		if err != nil {
			return fmt.Errorf("render home page: %w", err)
		}
		if out == "" {
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}
		if err := os.WriteFile(out, html, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(html))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("out", "o", "", "Write the page to this file instead of stdout")
}
