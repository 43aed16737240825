package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiktok-transcript/internal/app/export"
	"tiktok-transcript/internal/app/repository/sqlite"
	"tiktok-transcript/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recorded transcripts to excel",
	Long: `Export the recorded transcripts to excel

- Exports the full run history, currently does not support a limited number`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.InitializeConfig()
		if err != nil {
			return err
		}

		db := sqlite.NewSQLiteDB(cfg.HistoryDBPath)
		defer db.Close()

		transcriptions, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}

		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
