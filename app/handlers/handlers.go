// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"errors"
	"fmt"
	"strconv"

	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}

func validationDetails(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, getValidationErrorMessage(fe))
	}
	return out
}

func errorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: &dto.ErrorDetail{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

func successResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// businessErrorResponse maps a flow error to the envelope, surfacing
// the business code when one is attached.
func businessErrorResponse(c fiber.Ctx, err error) error {
	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		status := fiber.StatusUnprocessableEntity
		if businessflow.IsCountryNotFound(err) || businessflow.IsBookmakerNotFound(err) ||
			businessflow.IsEmployeeNotFound(err) || businessflow.IsReportNotFound(err) ||
			businessflow.IsSessionExpired(err) {
			status = fiber.StatusNotFound
		}
		return errorResponse(c, status, be.Message, be.Code, nil)
	}
	return errorResponse(c, fiber.StatusInternalServerError, "Internal error", "INTERNAL_ERROR", nil)
}

// actorFromContext builds the audit actor from request headers. The
// chat gateway forwards the acting user's id and name.
func actorFromContext(c fiber.Ctx) *businessflow.Actor {
	actor := &businessflow.Actor{
		Name:     c.Get("X-Actor-Name"),
		Username: c.Get("X-Actor-Username"),
	}
	if id, err := strconv.ParseInt(c.Get("X-Actor-ID"), 10, 64); err == nil {
		actor.ID = id
	}
	return actor
}
