package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/data/db"
	"github.com/yungbote/agrinet/internal/data/repos"
	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise stored predictions and contact messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		image, _ := cmd.Flags().GetString("image")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.NewNop()
		dbs, err := db.Open(cfg.Database, log)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer dbs.Close()
		if err := db.AutoMigrateAll(dbs.DB()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		ctx := cmd.Context()
		predictions := repos.NewPredictionRecordRepo(dbs.DB(), log)
		contacts := repos.NewContactMessageRepo(dbs.DB(), log)
		out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		byClass, err := predictions.CountByClass(ctx, nil)
		if err != nil {
			return fmt.Errorf("count predictions: %w", err)
		}
		classes := make([]string, 0, len(byClass))
		for class := range byClass {
			classes = append(classes, class)
		}
		sort.Strings(classes)
		fmt.Fprintln(out, "CLASS\tPREDICTIONS")
		for _, class := range classes {
			fmt.Fprintf(out, "%s\t%d\n", class, byClass[class])
		}

		if image != "" {
			data, err := os.ReadFile(image)
			if err != nil {
				return fmt.Errorf("read %s: %w", image, err)
			}
			history, err := predictions.ListByDigest(ctx, nil, diagnosis.Upload{Data: data}.Digest())
			if err != nil {
				return fmt.Errorf("list predictions: %w", err)
			}
			fmt.Fprintf(out, "\nHISTORY\t%s\n", image)
			for _, rec := range history {
				fmt.Fprintf(out, "%s\t%s\t%.3f\tcached=%t\n",
					rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Class, rec.Confidence, rec.Cached)
			}
		}

		total, err := contacts.Count(ctx, nil)
		if err != nil {
			return fmt.Errorf("count contact messages: %w", err)
		}
		recent, err := contacts.ListRecent(ctx, nil, limit)
		if err != nil {
			return fmt.Errorf("list contact messages: %w", err)
		}
		fmt.Fprintf(out, "\nMESSAGES\t%d\n", total)
		for _, msg := range recent {
			fmt.Fprintf(out, "%s\t%s <%s>\n", msg.CreatedAt.Format("2006-01-02 15:04:05"), msg.Name, msg.Email)
		}
		return out.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Int("limit", 10, "Number of recent contact messages to list")
	statsCmd.Flags().String("image", "", "Show the prediction history of this image file")
}
