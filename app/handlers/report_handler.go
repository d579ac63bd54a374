package handlers

import (
	"bytes"
	"strconv"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/app/middleware"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ReportHandlerInterface interface {
	Ingest(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
	Import(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

type ReportHandler struct {
	reportFlow businessflow.ReportFlow
	exportFlow businessflow.ExportFlow
	validator  *validator.Validate
}

func NewReportHandler(reportFlow businessflow.ReportFlow, exportFlow businessflow.ExportFlow, v *validator.Validate) *ReportHandler {
	return &ReportHandler{
		reportFlow: reportFlow,
		exportFlow: exportFlow,
		validator:  v,
	}
}

// Ingest validates and stores one report. Lookup failures come back as
// a 200 with accepted=false and the concatenated message, matching the
// chat gateway contract.
func (h *ReportHandler) Ingest(c fiber.Ctx) error {
	var req dto.IngestReportRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.reportFlow.Ingest(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	if resp.Accepted {
		middleware.ReportsIngested.WithLabelValues("api").Inc()
		return successResponse(c, fiber.StatusCreated, "Report created", resp)
	}
	return successResponse(c, fiber.StatusOK, resp.Message, resp)
}

// List returns reports narrowed by query filters
func (h *ReportHandler) List(c fiber.Ctx) error {
	req := dto.ListReportsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if v, err := strconv.ParseUint(c.Query("country_id"), 10, 32); err == nil {
		id := uint(v)
		req.CountryID = &id
	}
	if v, err := strconv.ParseUint(c.Query("bookmaker_id"), 10, 32); err == nil {
		id := uint(v)
		req.BookmakerID = &id
	}
	if v, err := strconv.ParseUint(c.Query("source_id"), 10, 32); err == nil {
		id := uint(v)
		req.SourceID = &id
	}
	if v, err := strconv.ParseInt(c.Query("employee_id"), 10, 64); err == nil {
		req.EmployeeID = &v
	}

	reports, err := h.reportFlow.List(c.Context(), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Reports retrieved", reports)
}

// Get returns one report with derived figures
func (h *ReportHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid report id", "INVALID_ID", nil)
	}

	report, err := h.reportFlow.ByID(c.Context(), uint(id))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Report retrieved", report)
}

// Delete soft-deletes one report
func (h *ReportHandler) Delete(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid report id", "INVALID_ID", nil)
	}

	if err := h.reportFlow.Delete(c.Context(), uint(id), actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Report deleted", nil)
}

// Import ingests a workbook of reports, one row at a time
func (h *ReportHandler) Import(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Empty request body", "INVALID_BODY", nil)
	}

	resp, err := h.exportFlow.ImportReports(c.Context(), bytes.NewReader(body), actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	middleware.ReportsIngested.WithLabelValues("import").Add(float64(resp.Accepted))
	return successResponse(c, fiber.StatusOK, "Import completed", resp)
}

// Export renders the filtered reports as a workbook download
func (h *ReportHandler) Export(c fiber.Ctx) error {
	req := dto.ListReportsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if v, err := strconv.ParseUint(c.Query("country_id"), 10, 32); err == nil {
		id := uint(v)
		req.CountryID = &id
	}

	data, err := h.exportFlow.ExportReports(c.Context(), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reports.xlsx"`)
	return c.Send(data)
}
