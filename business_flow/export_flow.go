// Package businessflow contains the core business logic and use cases for spreadsheet exchange
package businessflow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet column layout shared by export and import.
var reportColumns = []string{
	"Date", "Source", "Country", "Bookmaker", "Profile",
	"Bet Amount", "Return Amount", "Is Error", "Employee ID", "Nickname",
}

const reportSheet = "Reports"

// ExportFlow defines spreadsheet export and import of reports
type ExportFlow interface {
	ExportReports(ctx context.Context, req *dto.ListReportsRequest) ([]byte, error)
	ImportReports(ctx context.Context, r io.Reader, actor *Actor) (*dto.ImportReportsResponse, error)
}

// ExportFlowImpl implements ExportFlow
type ExportFlowImpl struct {
	reportFlow  ReportFlow
	historyRepo repository.HistoryRepository
}

// NewExportFlow constructs an ExportFlow
func NewExportFlow(reportFlow ReportFlow, historyRepo repository.HistoryRepository) ExportFlow {
	return &ExportFlowImpl{
		reportFlow:  reportFlow,
		historyRepo: historyRepo,
	}
}

// ExportReports renders the filtered reports into a workbook, one row
// per report with derived figures appended.
func (f *ExportFlowImpl) ExportReports(ctx context.Context, req *dto.ListReportsRequest) ([]byte, error) {
	reports, err := f.reportFlow.List(ctx, req)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(reportSheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := append(append([]string{}, reportColumns...), "Profit", "Salary", "Penalty")
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(reportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, r := range reports {
		values := []any{
			r.Date.Format("2006-01-02"),
			r.SourceName,
			r.CountryName,
			r.BookmakerName,
			r.BookmakerLogin,
			r.BetAmount,
			r.ReturnAmount,
			r.IsError,
			r.EmployeeID,
			r.Nickname,
			r.Profit,
			r.Salary,
			r.Penalty,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ImportReports ingests a workbook of proposed reports. Every row runs
// through the same validation as single ingestion; a rejected row is
// recorded and the batch continues to the end.
func (f *ExportFlowImpl) ImportReports(ctx context.Context, r io.Reader, actor *Actor) (*dto.ImportReportsResponse, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewBusinessError("IMPORT_OPEN_FAILED", "Workbook is not readable", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, NewBusinessError("IMPORT_EMPTY", "Workbook has no data rows", ErrEmptyBatch)
	}

	resp := &dto.ImportReportsResponse{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // spreadsheet numbering, header on row 1
		req, parseErrs := parseReportRow(row)
		if len(parseErrs) > 0 {
			resp.Rejected++
			resp.Errors = append(resp.Errors, dto.ImportRowError{
				Row:     rowNum,
				Message: strings.Join(parseErrs, "; "),
			})
			continue
		}

		result, err := f.reportFlow.Ingest(ctx, req, actor)
		if err != nil {
			return nil, err
		}
		if !result.Accepted {
			resp.Rejected++
			resp.Errors = append(resp.Errors, dto.ImportRowError{Row: rowNum, Message: result.Message})
			continue
		}
		resp.Accepted++
	}

	if resp.Accepted > 0 {
		err = recordOperation(ctx, f.historyRepo, actor, models.OperationReportsImported,
			fmt.Sprintf("imported %d reports, rejected %d", resp.Accepted, resp.Rejected))
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// parseReportRow converts one raw spreadsheet row into an ingestion
// request, collecting every malformed field instead of stopping at the
// first.
func parseReportRow(row []string) (*dto.IngestReportRequest, []string) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var errs []string
	req := &dto.IngestReportRequest{
		Date:                 cell(0),
		SourceName:           cell(1),
		CountryName:          cell(2),
		BookmakerDisplayName: cell(3),
		BookmakerLogin:       cell(4),
		Nickname:             cell(9),
	}

	if req.Date == "" {
		errs = append(errs, "missing date")
	}
	if req.SourceName == "" {
		errs = append(errs, "missing source")
	}
	if req.CountryName == "" {
		errs = append(errs, "missing country")
	}
	if req.BookmakerDisplayName == "" {
		errs = append(errs, "missing bookmaker")
	}
	if req.BookmakerLogin == "" {
		errs = append(errs, "missing profile login")
	}

	bet, err := strconv.ParseFloat(cell(5), 64)
	if err != nil {
		errs = append(errs, "unparsable bet amount")
	}
	req.BetAmount = bet

	ret, err := strconv.ParseFloat(cell(6), 64)
	if err != nil {
		errs = append(errs, "unparsable return amount")
	}
	req.ReturnAmount = ret

	isError, err := parseBoolCell(cell(7))
	if err != nil {
		errs = append(errs, "unparsable error flag")
	}
	req.IsError = isError

	employeeID, err := strconv.ParseInt(cell(8), 10, 64)
	if err != nil {
		errs = append(errs, "unparsable employee id")
	}
	req.EmployeeID = employeeID

	return req, errs
}

func parseBoolCell(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "false", "no", "0", "-":
		return false, nil
	case "true", "yes", "1", "+":
		return true, nil
	}
	return false, fmt.Errorf("unrecognized boolean %q", s)
}
