package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiktok-transcript/internal/app"
	"tiktok-transcript/internal/app/pipeline"
	"tiktok-transcript/internal/config"
)

var workDir string
var outputFile string
var copyToClipboard bool
var share bool
var showProgress bool

func init() {
	Cmd.Flags().StringVarP(&workDir, "work-dir", "w", "",
		"Directory for intermediate video/audio files, a fresh temp directory when omitted")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Save the transcript to this file and print the path instead of the text")
	Cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false,
		"Copy the transcript to the clipboard")
	Cmd.Flags().BoolVarP(&share, "share", "s", false,
		"Upload the transcript to the paste service and print the resulting URL")
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false,
		"Show per-stage progress on stderr (on by default when stderr is a terminal)")
}

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a TikTok video and print its cleaned transcript",
	Long: `Download a TikTok video and print its cleaned transcript

- Validates the URL, downloads the video and extracts its audio track
- Transcribes the audio and normalizes the text
- With --output writes the transcript to a file and prints the file path`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.InitializeConfig()
		if err != nil {
			return err
		}

		p := app.InitializePipeline(cfg)
		defer p.Close()

		var pm *pipeline.ProgressManager
		if pipeline.ShouldShowProgress(showProgress) {
			pm = pipeline.NewProgressManager(pipeline.ProgressConfig{Enabled: true})
			p.SetProgress(pm)
		}
		defer func() {
			// A failed run leaves the stage bar incomplete; tear it down so
			// the error message is not interleaved with a stuck bar.
			if err != nil && pm != nil {
				pm.Shutdown()
			}
		}()

		url := args[0]

		if outputFile != "" {
			path, err := p.SaveTo(url, outputFile, workDir)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		}

		var text string
		switch {
		case copyToClipboard:
			text, err = p.CopyToClipboard(url, workDir)
		case share:
			text, err = p.Share(url, workDir)
		default:
			text, err = p.Run(url, workDir)
		}
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}
