package handlers

import (
	"strconv"

	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/gofiber/fiber/v3"
)

type BrowseHandlerInterface interface {
	Start(c fiber.Ctx) error
	SubmitPeriod(c fiber.Ctx) error
	Select(c fiber.Ctx) error
	Cancel(c fiber.Ctx) error
}

// BrowseHandler exposes the multi-step report browsing workflow. The
// chat gateway calls one endpoint per conversation step, identified by
// the acting user's id.
type BrowseHandler struct {
	flow businessflow.BrowseFlow
}

func NewBrowseHandler(flow businessflow.BrowseFlow) *BrowseHandler {
	return &BrowseHandler{flow: flow}
}

func (h *BrowseHandler) userID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("user_id"), 10, 64)
}

// Start opens a fresh browse session for the user
func (h *BrowseHandler) Start(c fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id", "INVALID_ID", nil)
	}

	session, err := h.flow.Start(c.Context(), userID)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Session started", session)
}

// SubmitPeriod records the chosen period and lists matching reports
func (h *BrowseHandler) SubmitPeriod(c fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id", "INVALID_ID", nil)
	}

	reports, err := h.flow.SubmitPeriod(c.Context(), userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Reports listed", reports)
}

// Select resolves the picked report and completes the session
func (h *BrowseHandler) Select(c fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id", "INVALID_ID", nil)
	}
	reportID, err := strconv.ParseUint(c.Params("report_id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid report id", "INVALID_ID", nil)
	}

	report, err := h.flow.Select(c.Context(), userID, uint(reportID))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Report selected", report)
}

// Cancel drops the session
func (h *BrowseHandler) Cancel(c fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id", "INVALID_ID", nil)
	}
	if err := h.flow.Cancel(c.Context(), userID); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Session cancelled", nil)
}
