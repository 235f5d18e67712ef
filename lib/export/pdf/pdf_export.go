package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateOnboardingChecklist renders the candidate's checklist with the
// completion state of every task. Core fonts only, so no font files are needed.
func GenerateOnboardingChecklist(companyName string, candidate dbmodels.Candidate, tasks dbmodels.OnboardingTasks) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOnboardingChecklist panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(companyName+" onboarding checklist", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Onboarding checklist: "+candidate.GetFullName(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Completed %d of %d tasks", tasks.CompletedCount(), len(tasks)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Generated "+time.Now().Format("01/02/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{12, 110, 30, 44}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(255, 242, 204)
	for idx, title := range []string{"#", "Task", "Status", "Completed"} {
		pdf.CellFormat(widths[idx], 8, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, task := range tasks {
		status := "Pending"
		completedAt := ""
		if task.IsCompleted {
			status = "Done"
			if task.CompletedAt != nil {
				completedAt = task.CompletedAt.Format("01/02/2006 15:04")
			}
		}
		pdf.CellFormat(widths[0], 8, fmt.Sprintf("%d", task.SortOrder), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, task.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, completedAt, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
