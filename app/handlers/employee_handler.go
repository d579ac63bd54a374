package handlers

import (
	"strconv"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type EmployeeHandlerInterface interface {
	RequestAccess(c fiber.Ctx) error
	ListWaiting(c fiber.Ctx) error
	Promote(c fiber.Ctx) error
	Reject(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Adjust(c fiber.Ctx) error
	PaySalary(c fiber.Ctx) error
	Remove(c fiber.Ctx) error
	GrantAdmin(c fiber.Ctx) error
	RevokeAdmin(c fiber.Ctx) error
}

type EmployeeHandler struct {
	flow      businessflow.EmployeeFlow
	validator *validator.Validate
}

func NewEmployeeHandler(flow businessflow.EmployeeFlow, v *validator.Validate) *EmployeeHandler {
	return &EmployeeHandler{flow: flow, validator: v}
}

func (h *EmployeeHandler) paramID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// RequestAccess records a chat user asking to join
func (h *EmployeeHandler) RequestAccess(c fiber.Ctx) error {
	var req dto.RequestAccessRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	if err := h.flow.RequestAccess(c.Context(), &req); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusAccepted, "Access requested", nil)
}

// ListWaiting lists pending access requests
func (h *EmployeeHandler) ListWaiting(c fiber.Ctx) error {
	resp, err := h.flow.ListWaiting(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Waiting users retrieved", resp)
}

// Promote turns a pending request into an employee
func (h *EmployeeHandler) Promote(c fiber.Ctx) error {
	var req dto.PromoteWaitingUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.Promote(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Employee promoted", resp)
}

// Reject drops a pending access request
func (h *EmployeeHandler) Reject(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user id", "INVALID_ID", nil)
	}
	if err := h.flow.Reject(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Request rejected", nil)
}

// List lists employees with admin markers
func (h *EmployeeHandler) List(c fiber.Ctx) error {
	resp, err := h.flow.ListEmployees(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Employees retrieved", resp)
}

// Adjust shifts an employee's adjustment delta
func (h *EmployeeHandler) Adjust(c fiber.Ctx) error {
	var req dto.AdjustEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	if err := h.flow.Adjust(c.Context(), &req, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Employee adjusted", nil)
}

// PaySalary settles an employee's balance into the adjustment delta
func (h *EmployeeHandler) PaySalary(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid employee id", "INVALID_ID", nil)
	}
	if err := h.flow.PaySalary(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Salary paid", nil)
}

// Remove deletes an employee permanently
func (h *EmployeeHandler) Remove(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid employee id", "INVALID_ID", nil)
	}
	if err := h.flow.Remove(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Employee removed", nil)
}

// GrantAdmin marks an employee as admin
func (h *EmployeeHandler) GrantAdmin(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid employee id", "INVALID_ID", nil)
	}
	if err := h.flow.GrantAdmin(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Admin granted", nil)
}

// RevokeAdmin removes the admin marker
func (h *EmployeeHandler) RevokeAdmin(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid employee id", "INVALID_ID", nil)
	}
	if err := h.flow.RevokeAdmin(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Admin revoked", nil)
}
