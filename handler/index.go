package handler

import (
	"errors"

	"restro_pos/constants"
	"restro_pos/pos"
	"restro_pos/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	engine       *pos.Engine
	catalogCache *pos.CatalogCache
	listener     *pos.Listener
)

// Setup wires the shared engine, cache and listener into this package.
func Setup(e *pos.Engine, cc *pos.CatalogCache, l *pos.Listener) {
	engine = e
	catalogCache = cc
	listener = l
}

// respondEngineError maps the engine's error taxonomy onto HTTP responses.
// Validation failures return every violation; remote failures keep the
// local state and tell the operator to retry.
func respondEngineError(c *fiber.Ctx, err error) error {
	var validationErrs pos.ValidationErrors
	if errors.As(err, &validationErrs) {
		return utils.ValidationErrorResponse(c, constants.ORDER_VALIDATION_FAILED, validationErrs.Messages())
	}

	var validationErr pos.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ValidationErrorResponse(c, constants.ORDER_VALIDATION_FAILED, []string{validationErr.Message})
	}

	if errors.Is(err, pos.ErrDispatchInFlight) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DISPATCH_IN_FLIGHT, err)
	}

	if errors.Is(err, pos.ErrItemNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var remoteErr *pos.RemoteError
	if errors.As(err, &remoteErr) {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.REMOTE_CALL_FAILED, err)
	}

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), err)
}
