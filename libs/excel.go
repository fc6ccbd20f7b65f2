package libs

import (
	"bytes"
	"fmt"

	"bakery-shop/models"

	"github.com/xuri/excelize/v2"
)

const FeedbackSheet = "Feedback"

var feedbackHeaders = []string{"Received", "Name", "Email", "Message"}

// FeedbackWorkbook writes the submissions into a single styled sheet.
func FeedbackWorkbook(submissions []models.FeedbackSubmission) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FeedbackSheet); err != nil {
		return nil, err
	}

	for i, header := range feedbackHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(FeedbackSheet, col+"1", header)
		f.SetColWidth(FeedbackSheet, col, col, 24)
	}
	f.SetColWidth(FeedbackSheet, "D", "D", 60)

	for r, s := range submissions {
		row := []interface{}{
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.Name,
			s.Email,
			s.Message,
		}
		for i, value := range row {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(FeedbackSheet, fmt.Sprintf("%s%d", col, r+2), value)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE68A"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(FeedbackSheet, 1, 1, style)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
