package export

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"tiktok-transcript/internal/app/model"
)

var header = []string{"ID", "Source URL", "Created At", "Video File", "Audio File", "Duration (s)", "Transcription", "Error Message"}

// ToExcel writes run history to an xlsx file at outputFilePath.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		headerRow.AddCell().Value = title
	}

	rows := lo.Map(transcriptions, func(t model.Transcription, _ int) []string {
		return []string{
			fmt.Sprint(t.ID),
			t.SourceURL,
			t.CreatedAt.Format(time.RFC3339),
			t.VideoFileName,
			t.AudioFileName,
			fmt.Sprint(t.AudioDuration),
			t.Transcription,
			t.ErrorMessage,
		}
	})

	for _, cells := range rows {
		row := sheet.AddRow()
		for _, cell := range cells {
			row.AddCell().Value = cell
		}
	}

	return file.Save(outputFilePath)
}
