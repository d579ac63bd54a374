package handlers

import (
	"strconv"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type StatsHandlerInterface interface {
	Aggregate(c fiber.Ctx) error
	Windows(c fiber.Ctx) error
	BalanceOverview(c fiber.Ctx) error
	CountryBalance(c fiber.Ctx) error
	BookmakerBalances(c fiber.Ctx) error
	WalletBalances(c fiber.Ctx) error
	EmployeeBalances(c fiber.Ctx) error
	EmployeeBalance(c fiber.Ctx) error
}

type StatsHandler struct {
	flow      businessflow.StatsFlow
	validator *validator.Validate
}

func NewStatsHandler(flow businessflow.StatsFlow, v *validator.Validate) *StatsHandler {
	return &StatsHandler{flow: flow, validator: v}
}

// Aggregate computes totals for one scope over an inclusive date range
func (h *StatsHandler) Aggregate(c fiber.Ctx) error {
	var req dto.AggregateRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.Aggregate(c.Context(), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	if resp.NotFound {
		return errorResponse(c, fiber.StatusNotFound, "Scope entity not found", "SCOPE_NOT_FOUND", nil)
	}
	return successResponse(c, fiber.StatusOK, "Totals computed", resp)
}

// Windows computes the day/week/month/all-time rolling aggregates
func (h *StatsHandler) Windows(c fiber.Ctx) error {
	scope := c.Query("scope", dto.ScopeGlobal)
	scopeID, _ := strconv.ParseInt(c.Query("scope_id"), 10, 64)

	windows, notFound, err := h.flow.Windows(c.Context(), scope, scopeID)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	if notFound {
		return errorResponse(c, fiber.StatusNotFound, "Scope entity not found", "SCOPE_NOT_FOUND", nil)
	}
	return successResponse(c, fiber.StatusOK, "Windows computed", windows)
}

// BalanceOverview returns the whole-operation position snapshot
func (h *StatsHandler) BalanceOverview(c fiber.Ctx) error {
	resp, err := h.flow.BalanceOverview(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Overview computed", resp)
}

// CountryBalance returns one country's derived position
func (h *StatsHandler) CountryBalance(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid country id", "INVALID_ID", nil)
	}

	resp, err := h.flow.CountryBalance(c.Context(), uint(id))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Balance computed", resp)
}

// BookmakerBalances returns the positions of all profiles under a country
func (h *StatsHandler) BookmakerBalances(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid country id", "INVALID_ID", nil)
	}

	resp, err := h.flow.BookmakerBalances(c.Context(), uint(id))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Balances computed", resp)
}

// WalletBalances returns wallet positions, optionally by category
func (h *StatsHandler) WalletBalances(c fiber.Ctx) error {
	resp, err := h.flow.WalletBalances(c.Context(), c.Query("category"))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Balances computed", resp)
}

// EmployeeBalances returns every employee's derived position
func (h *StatsHandler) EmployeeBalances(c fiber.Ctx) error {
	resp, err := h.flow.EmployeeBalances(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Balances computed", resp)
}

// EmployeeBalance returns one employee's derived position
func (h *StatsHandler) EmployeeBalance(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid employee id", "INVALID_ID", nil)
	}

	resp, err := h.flow.EmployeeBalance(c.Context(), id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Balance computed", resp)
}
