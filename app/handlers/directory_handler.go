package handlers

import (
	"strconv"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type DirectoryHandlerInterface interface {
	CreateCountry(c fiber.Ctx) error
	ListCountries(c fiber.Ctx) error
	DeleteCountry(c fiber.Ctx) error
	CreateTemplate(c fiber.Ctx) error
	ListTemplates(c fiber.Ctx) error
	DeleteTemplate(c fiber.Ctx) error
	CreateBookmaker(c fiber.Ctx) error
	UpdateBookmaker(c fiber.Ctx) error
	DeleteBookmaker(c fiber.Ctx) error
	CreateWallet(c fiber.Ctx) error
	AdjustWallet(c fiber.Ctx) error
	DeleteWallet(c fiber.Ctx) error
	CreateSource(c fiber.Ctx) error
	ListSources(c fiber.Ctx) error
	DeleteSource(c fiber.Ctx) error
}

type DirectoryHandler struct {
	flow      businessflow.DirectoryFlow
	validator *validator.Validate
}

func NewDirectoryHandler(flow businessflow.DirectoryFlow, v *validator.Validate) *DirectoryHandler {
	return &DirectoryHandler{flow: flow, validator: v}
}

func (h *DirectoryHandler) paramID(c fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// CreateCountry registers a country
func (h *DirectoryHandler) CreateCountry(c fiber.Ctx) error {
	var req dto.CreateCountryRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.CreateCountry(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Country created", resp)
}

// ListCountries lists live countries
func (h *DirectoryHandler) ListCountries(c fiber.Ctx) error {
	resp, err := h.flow.ListCountries(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Countries retrieved", resp)
}

// DeleteCountry soft-deletes a country and everything under it
func (h *DirectoryHandler) DeleteCountry(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid country id", "INVALID_ID", nil)
	}
	if err := h.flow.DeleteCountry(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Country deleted", nil)
}

// CreateTemplate registers a bookmaker brand
func (h *DirectoryHandler) CreateTemplate(c fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.CreateTemplate(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Template created", resp)
}

// ListTemplates lists live templates under a country
func (h *DirectoryHandler) ListTemplates(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid country id", "INVALID_ID", nil)
	}
	resp, err := h.flow.ListTemplates(c.Context(), id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Templates retrieved", resp)
}

// DeleteTemplate soft-deletes a template
func (h *DirectoryHandler) DeleteTemplate(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid template id", "INVALID_ID", nil)
	}
	if err := h.flow.DeleteTemplate(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Template deleted", nil)
}

// CreateBookmaker creates a profile from a template
func (h *DirectoryHandler) CreateBookmaker(c fiber.Ctx) error {
	var req dto.CreateBookmakerRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	bookmaker, err := h.flow.CreateBookmaker(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Bookmaker created", bookmaker)
}

// UpdateBookmaker applies partial updates to a profile
func (h *DirectoryHandler) UpdateBookmaker(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid bookmaker id", "INVALID_ID", nil)
	}

	var req dto.UpdateBookmakerRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	if err := h.flow.UpdateBookmaker(c.Context(), id, &req, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Bookmaker updated", nil)
}

// DeleteBookmaker soft-deletes a profile
func (h *DirectoryHandler) DeleteBookmaker(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid bookmaker id", "INVALID_ID", nil)
	}
	if err := h.flow.DeleteBookmaker(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Bookmaker deleted", nil)
}

// CreateWallet registers a wallet
func (h *DirectoryHandler) CreateWallet(c fiber.Ctx) error {
	var req dto.CreateWalletRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	wallet, err := h.flow.CreateWallet(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Wallet created", wallet)
}

// AdjustWallet shifts a wallet's adjustment delta
func (h *DirectoryHandler) AdjustWallet(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid wallet id", "INVALID_ID", nil)
	}

	var req dto.AdjustWalletRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	if err := h.flow.AdjustWallet(c.Context(), id, &req, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Wallet adjusted", nil)
}

// DeleteWallet soft-deletes a wallet
func (h *DirectoryHandler) DeleteWallet(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid wallet id", "INVALID_ID", nil)
	}
	if err := h.flow.DeleteWallet(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Wallet deleted", nil)
}

// CreateSource registers a traffic source
func (h *DirectoryHandler) CreateSource(c fiber.Ctx) error {
	var req dto.CreateSourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY", nil)
	}
	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_FAILED", validationDetails(err))
	}

	resp, err := h.flow.CreateSource(c.Context(), &req, actorFromContext(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusCreated, "Source created", resp)
}

// ListSources lists live sources
func (h *DirectoryHandler) ListSources(c fiber.Ctx) error {
	resp, err := h.flow.ListSources(c.Context())
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Sources retrieved", resp)
}

// DeleteSource soft-deletes a source
func (h *DirectoryHandler) DeleteSource(c fiber.Ctx) error {
	id, err := h.paramID(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid source id", "INVALID_ID", nil)
	}
	if err := h.flow.DeleteSource(c.Context(), id, actorFromContext(c)); err != nil {
		return businessErrorResponse(c, err)
	}
	return successResponse(c, fiber.StatusOK, "Source deleted", nil)
}
