package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/healthmate/healthmate/internal/models"
)

// ChatHistoryPDF renders a user's chat records into a downloadable PDF.
func ChatHistoryPDF(username string, chats []models.ChatRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("HealthMate Chat History", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "HealthMate Chat History")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", username))
	pdf.Ln(10)

	if len(chats) == 0 {
		pdf.Cell(0, 8, "No conversations recorded yet.")
		pdf.Ln(8)
	}

	for _, ch := range chats {
		category := ch.Category
		if category == "" {
			category = "General"
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("[%s] You: %s", category, ch.UserMessage), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, "Assistant: "+ch.AIResponse, "", "L", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
