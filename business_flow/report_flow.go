// Package businessflow contains the core business logic and use cases for report ingestion
package businessflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/ledger"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
	"gorm.io/gorm"
)

// Ingestion failure messages. Every lookup failure for one record is
// collected into a single response message.
const (
	msgEmployeeNotFound  = "employee not found"
	msgSourceNotFound    = "source not found"
	msgCountryNotFound   = "country not found"
	msgBookmakerNotFound = "bookmaker not found"
	msgInvalidDate       = "invalid date"
)

// ReportFlow defines operations for report ingestion and retrieval
type ReportFlow interface {
	Ingest(ctx context.Context, req *dto.IngestReportRequest, actor *Actor) (*dto.IngestReportResponse, error)
	ByID(ctx context.Context, id uint) (*dto.ReportDTO, error)
	List(ctx context.Context, req *dto.ListReportsRequest) ([]dto.ReportDTO, error)
	Delete(ctx context.Context, id uint, actor *Actor) error
}

// ReportFlowImpl implements ReportFlow
type ReportFlowImpl struct {
	reportRepo    repository.ReportRepository
	employeeRepo  repository.EmployeeRepository
	sourceRepo    repository.SourceRepository
	countryRepo   repository.CountryRepository
	bookmakerRepo repository.BookmakerRepository
	historyRepo   repository.HistoryRepository
	db            *gorm.DB
}

// NewReportFlow constructs a ReportFlow
func NewReportFlow(
	reportRepo repository.ReportRepository,
	employeeRepo repository.EmployeeRepository,
	sourceRepo repository.SourceRepository,
	countryRepo repository.CountryRepository,
	bookmakerRepo repository.BookmakerRepository,
	historyRepo repository.HistoryRepository,
	db *gorm.DB,
) ReportFlow {
	return &ReportFlowImpl{
		reportRepo:    reportRepo,
		employeeRepo:  employeeRepo,
		sourceRepo:    sourceRepo,
		countryRepo:   countryRepo,
		bookmakerRepo: bookmakerRepo,
		historyRepo:   historyRepo,
		db:            db,
	}
}

// Ingest validates one proposed report and writes it when every lookup
// resolves. Employee, source and country failures are accumulated and
// reported together; only when all three resolve is the bookmaker
// lookup attempted, whose failure is a single distinct message. No row
// is written on any failure.
func (f *ReportFlowImpl) Ingest(ctx context.Context, req *dto.IngestReportRequest, actor *Actor) (*dto.IngestReportResponse, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return &dto.IngestReportResponse{Message: msgInvalidDate}, nil
	}

	var failures []string

	employee, err := f.employeeRepo.ByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		failures = append(failures, msgEmployeeNotFound)
	}

	source, err := f.sourceRepo.ByName(ctx, utils.Capitalize(req.SourceName))
	if err != nil {
		return nil, err
	}
	if source == nil {
		failures = append(failures, msgSourceNotFound)
	}

	country, err := f.countryRepo.ByName(ctx, utils.Capitalize(req.CountryName))
	if err != nil {
		return nil, err
	}
	if country == nil {
		failures = append(failures, msgCountryNotFound)
	}

	if len(failures) > 0 {
		return &dto.IngestReportResponse{Message: strings.Join(failures, "; ")}, nil
	}

	bookmaker, err := f.bookmakerRepo.ByLookup(ctx, req.BookmakerLogin, utils.Capitalize(req.BookmakerDisplayName), country.ID)
	if err != nil {
		return nil, err
	}
	if bookmaker == nil {
		return &dto.IngestReportResponse{Message: msgBookmakerNotFound}, nil
	}

	// The override percentage stays unset so the report keeps reading
	// the bookmaker's live rate.
	report := &models.Report{
		Date:         date,
		SourceID:     source.ID,
		CountryID:    country.ID,
		BookmakerID:  bookmaker.ID,
		EmployeeID:   employee.ID,
		BetAmount:    req.BetAmount,
		ReturnAmount: req.ReturnAmount,
		MatchName:    req.MatchName,
		Nickname:     req.Nickname,
		IsError:      req.IsError,
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.reportRepo.Save(txCtx, report); err != nil {
			return err
		}
		description := fmt.Sprintf("report %d: %s / %s, bet %.2f, return %.2f",
			report.ID, country.Name, bookmaker.DisplayName, req.BetAmount, req.ReturnAmount)
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationReportCreated, description)
	})
	if err != nil {
		return nil, err
	}

	return &dto.IngestReportResponse{Accepted: true, ReportID: report.ID}, nil
}

// ByID retrieves one report with derived figures
func (f *ReportFlowImpl) ByID(ctx context.Context, id uint) (*dto.ReportDTO, error) {
	reports, err := f.reportRepo.ListDetailed(ctx, models.ReportFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, NewBusinessError("REPORT_NOT_FOUND", "Report not found", ErrReportNotFound)
	}
	out := ToReportDTO(*reports[0])
	return &out, nil
}

// List retrieves reports narrowed by the request filter
func (f *ReportFlowImpl) List(ctx context.Context, req *dto.ListReportsRequest) ([]dto.ReportDTO, error) {
	filter, err := reportFilterFromRequest(req)
	if err != nil {
		return nil, err
	}

	reports, err := f.reportRepo.ListDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToReportDTO(*r))
	}
	return out, nil
}

// Delete soft-deletes one report. The row drops out of every derived
// figure immediately.
func (f *ReportFlowImpl) Delete(ctx context.Context, id uint, actor *Actor) error {
	report, err := f.reportRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if report == nil {
		return NewBusinessError("REPORT_NOT_FOUND", "Report not found", ErrReportNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.reportRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationReportDeleted,
			fmt.Sprintf("report %d deleted", id))
	})
}

func reportFilterFromRequest(req *dto.ListReportsRequest) (models.ReportFilter, error) {
	filter := models.ReportFilter{
		CountryID:   req.CountryID,
		BookmakerID: req.BookmakerID,
		SourceID:    req.SourceID,
		EmployeeID:  req.EmployeeID,
	}

	var start, end *time.Time
	if req.StartDate != "" {
		s, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return filter, NewBusinessError("INVALID_DATE", "Start date is not parsable", err)
		}
		start = &s
	}
	if req.EndDate != "" {
		e, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return filter, NewBusinessError("INVALID_DATE", "End date is not parsable", err)
		}
		end = &e
	}
	if start != nil && end != nil && end.Before(*start) {
		return filter, NewBusinessError("INVALID_PERIOD", "Start date is after end date", ErrStartDateAfterEndDate)
	}

	if start != nil {
		filter.DateFrom = ledger.Since(*start).Start()
	}
	if end != nil {
		filter.DateTo = ledger.Through(*end).Until()
	}
	return filter, nil
}
