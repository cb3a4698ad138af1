package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*ConvertError); ok {
		if ce.Err != nil {
			log.Printf("Convert error [%s]: %v", ce.Code, ce.Err)
		}

		var status int
		switch ce.Code {
		case "not_found", "no_output":
			status = fiber.StatusNotFound
		case "invalid_file":
			status = fiber.StatusBadRequest
		case "illegal_transition":
			status = fiber.StatusConflict
		case "engine_not_ready":
			status = fiber.StatusServiceUnavailable
		default:
			status = fiber.StatusInternalServerError
		}

		// Only Code + Message go to the client
		return c.Status(status).JSON(fiber.Map{
			"error":   ce.Code,
			"message": ce.Message,
		})
	}

	// Fallback for errors nobody mapped
	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "Internal server error",
	})
}
