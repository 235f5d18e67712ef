package xlsexport

import (
	"bytes"

	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

const candidateSheet = "Candidates"

var candidateColumns = []column{
	{title: "Name", width: 28},
	{title: "Email", width: 32},
	{title: "Phone", width: 18},
	{title: "Status", width: 22},
	{title: "40-hour course", width: 16},
	{title: "Schedule set", width: 14},
	{title: "Added", width: 14},
	{title: "Notes", width: 40},
}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	if err := f.SetSheetName("Sheet1", candidateSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	row, err := writeHeader(f, candidateSheet, 0, candidateColumns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = writeCandidateData(f, candidateSheet, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx rows")
		}
	}
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateColumns), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.GetFullName(),
			item.Email,
			item.Phone,
			item.Status.ToHuman(),
			yesNo(item.FortyHourCourseCompleted),
			yesNo(item.ScheduleCompleted),
			item.CreatedAt.Format("01/02/2006"),
			item.Notes,
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
