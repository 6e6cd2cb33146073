package utils

import (
	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// ValidationErrorResponse returns every violation so the terminal can show
// the full list, not just the first one.
func ValidationErrorResponse(c *fiber.Ctx, message string, violations []string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message":    message,
		"violations": violations,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func Ptr[T any](v T) *T {
	return &v
}
