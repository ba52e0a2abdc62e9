package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify a leaf photo and print the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		engineName, _ := cmd.Flags().GetString("engine")
		if file == "" {
			return fmt.Errorf("--file is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if engineName != "" {
			if cfg.Model.Engine, err = config.NormalizeEngine(engineName); err != nil {
				return fmt.Errorf("--engine: %w", err)
			}
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		eng, err := diagnosis.NewEngine(cfg.Model)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		svc := diagnosis.NewService(logger.NewNop(), eng, diagnosis.WithInputSize(cfg.Model.InputSize))

		p, err := svc.Predict(cmd.Context(), diagnosis.Upload{Filename: filepath.Base(file), Data: data})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringP("file", "f", "", "Path to the leaf image")
	predictCmd.Flags().String("engine", "", "Override the configured model engine (mock, tfserving)")
}
