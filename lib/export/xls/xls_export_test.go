package xlsexport

import (
	"testing"
	"time"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	dbmodels "github.com/Aaron071982/riseandshineHRM-final-sub000/models/db"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCandidateList(t *testing.T) {
	rec := dbmodels.Candidate{
		Status:                   models.CandidateStatusHired,
		FirstName:                "Jamie",
		LastName:                 "Rivera",
		Email:                    "jamie@example.com",
		FortyHourCourseCompleted: true,
	}
	rec.CreatedAt = time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	buf, err := impl{}.ExportCandidateList([]dbmodels.Candidate{rec})
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows(candidateSheet)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Name", rows[0][0])
	require.Equal(t, "Jamie Rivera", rows[1][0])
	require.Equal(t, "Hired", rows[1][3])
	require.Equal(t, "Yes", rows[1][4])
	require.Equal(t, "No", rows[1][5])
	require.Equal(t, "02/03/2026", rows[1][6])
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportCandidateList(nil)
	require.Nil(t, err)
	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()
	rows, err := f.GetRows(candidateSheet)
	require.Nil(t, err)
	require.Len(t, rows, 1)
}
