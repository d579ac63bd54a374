package handlers

import (
	"strconv"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type TransactionHandlerInterface interface {
	Create(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	ListByCountry(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

type TransactionHandler struct {
	flow      businessflow.TransactionFlow
	validator *validator.Validate
}

func NewTransactionHandler(flow businessflow.TransactionFlow, v *validator.Validate) *TransactionHandler {
	return &TransactionHandler{flow: flow, validator: v}
}

// Create registers a money movement
func (h *TransactionHandler) Create(c fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.Create(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Transaction created", resp)
}

// Get returns one transaction
func (h *TransactionHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid transaction id", "INVALID_ID", nil)
	}

	resp, err := h.flow.ByID(c.Context(), uint(id))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Transaction retrieved", resp)
}

// ListByCountry lists transactions attributed to a country
func (h *TransactionHandler) ListByCountry(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid country id", "INVALID_ID", nil)
	}

	resp, err := h.flow.ListByCountry(c.Context(), uint(id))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Transactions retrieved", resp)
}

// Delete soft-deletes a transaction
func (h *TransactionHandler) Delete(c fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid transaction id", "INVALID_ID", nil)
	}

	if err := h.flow.Delete(c.Context(), uint(id), actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Transaction deleted", nil)
}
