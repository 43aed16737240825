package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tiktok-transcript/cmd/t2t/cmd/export"
	"tiktok-transcript/cmd/t2t/cmd/fetch"
	"tiktok-transcript/cmd/t2t/cmd/history"
	"tiktok-transcript/cmd/t2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "t2t",
	Short: "Fetch the spoken-word transcript of a TikTok video",
	Long: `Fetch the spoken-word transcript of a TikTok video.

- Download the video, extract its audio track and transcribe it
- Every external engine degrades gracefully, so a transcript is always produced
- Processed runs are saved to sqlite and can be listed or exported`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
