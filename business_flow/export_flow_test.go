package businessflow

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildImportWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	header := []any{"Date", "Source", "Country", "Bookmaker", "Profile", "Bet Amount", "Return Amount", "Is Error", "Employee ID", "Nickname"}
	require.NoError(t, file.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return &buf
}

func TestImportReportsContinuesPastBadRows(t *testing.T) {
	reportFlow := &fakeReportFlow{}
	historyRepo := &fakeHistoryRepo{}
	flow := NewExportFlow(reportFlow, historyRepo)

	buf := buildImportWorkbook(t, [][]any{
		{"2026-08-20", "Forum", "Georgia", "Betline", "login1", 100, 120, "no", 42, "nick"},
		{"2026-08-21", "Forum", "Georgia", "Betline", "login1", "abc", 90, "no", 42, ""},
		{"2026-08-22", "Forum", "Georgia", "Betline", "login1", 50, 40, "yes", 42, ""},
	})

	resp, err := flow.ImportReports(context.Background(), buf, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 1, resp.Rejected)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 3, resp.Errors[0].Row)
	assert.Contains(t, resp.Errors[0].Message, "unparsable bet amount")
	assert.Len(t, reportFlow.ingested, 2, "bad rows never reach ingestion")
	assert.Len(t, historyRepo.operations, 1)
}

func TestImportReportsCollectsLookupRejections(t *testing.T) {
	reportFlow := &fakeReportFlow{ingestResults: []dto.IngestReportResponse{
		{Message: "employee not found; source not found"},
		{Accepted: true, ReportID: 1},
	}}
	flow := NewExportFlow(reportFlow, &fakeHistoryRepo{})

	buf := buildImportWorkbook(t, [][]any{
		{"2026-08-20", "Forum", "Georgia", "Betline", "login1", 100, 120, "no", 999, ""},
		{"2026-08-21", "Forum", "Georgia", "Betline", "login1", 80, 90, "no", 42, ""},
	})

	resp, err := flow.ImportReports(context.Background(), buf, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, 1, resp.Rejected)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 2, resp.Errors[0].Row)
	assert.Contains(t, resp.Errors[0].Message, "employee not found")
	assert.Contains(t, resp.Errors[0].Message, "source not found")
}

func TestImportReportsEmptyWorkbook(t *testing.T) {
	flow := NewExportFlow(&fakeReportFlow{}, &fakeHistoryRepo{})

	buf := buildImportWorkbook(t, nil)
	_, err := flow.ImportReports(context.Background(), buf, nil)
	require.Error(t, err)
}

func TestExportReportsRoundTrip(t *testing.T) {
	reportFlow := &fakeReportFlow{reports: map[uint]dto.ReportDTO{
		1: {
			ID:           1,
			Date:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			SourceName:   "Forum",
			CountryName:  "Georgia",
			BetAmount:    100,
			ReturnAmount: 120,
			Profit:       20,
			EmployeeID:   42,
		},
	}}
	flow := NewExportFlow(reportFlow, &fakeHistoryRepo{})

	data, err := flow.ExportReports(context.Background(), &dto.ListReportsRequest{})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2026-08-20", rows[1][0])
	assert.Equal(t, "Georgia", rows[1][2])
}

func TestParseReportRowAccumulatesFieldErrors(t *testing.T) {
	_, errs := parseReportRow([]string{"", "Forum", "", "Betline", "login1", "x", "90", "maybe", "abc", ""})

	assert.Contains(t, errs, "missing date")
	assert.Contains(t, errs, "missing country")
	assert.Contains(t, errs, "unparsable bet amount")
	assert.Contains(t, errs, "unparsable error flag")
	assert.Contains(t, errs, "unparsable employee id")
	assert.Len(t, errs, 5)
}
