package history

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tiktok-transcript/internal/app/repository/sqlite"
	"tiktok-transcript/internal/config"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to list")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transcription runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitializeConfig()
		if err != nil {
			return err
		}

		db := sqlite.NewSQLiteDB(cfg.HistoryDBPath)
		defer db.Close()

		runs, err := db.GetRecent(limit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}

		for _, run := range runs {
			status := "ok"
			if run.ErrorMessage != "" {
				status = "error: " + run.ErrorMessage
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", run.ID, run.CreatedAt.Format(time.RFC3339), run.SourceURL, status)
		}
		return nil
	},
}
