package transcript

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// SavePDF renders the transcript as a printable report next to the JSON file
// and returns the full path.
func SavePDF(dir string, t Transcript) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.MultiCell(0, 9, fmt.Sprintf("Interview Report: %s", t.Field), "", "", false)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Tone: %s", t.Tone), "", "", false)
	pdf.Ln(4)

	for i, question := range t.Questions {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, question, "", "", false)

		pdf.SetFont("Arial", "", 11)
		if i < len(t.Answers) {
			pdf.MultiCell(0, 6, "Answer: "+t.Answers[i], "", "", false)
		}
		if i < len(t.Evaluations) {
			eval := t.Evaluations[i]
			pdf.MultiCell(0, 6, fmt.Sprintf("Score: %.1f / 10", eval.Score), "", "", false)
			if eval.Comment != "" {
				pdf.MultiCell(0, 6, "Comment: "+eval.Comment, "", "", false)
			}
		}
		pdf.Ln(4)
	}

	name := strings.TrimSuffix(Filename(t.Field), ".json") + ".pdf"
	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf %s: %w", path, err)
	}
	return path, nil
}
