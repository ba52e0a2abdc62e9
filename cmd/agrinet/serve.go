package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/agrinet/internal/app"
	"github.com/yungbote/agrinet/internal/platform/shutdown"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the website and the /predict API. Configuration comes from config/config.yaml and AGRINET_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := shutdown.NotifyContext(context.Background())
		defer stop()

		a, err := app.New(ctx)
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer a.Close()

		if err := a.Run(ctx); err != nil {
			a.Log.Error("server stopped with error", "error", err)
			return err
		}
		a.Log.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
