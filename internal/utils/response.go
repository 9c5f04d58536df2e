package utils

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

// APIResponse is the envelope returned by every endpoint. Clients rely on
// success and message; data is optional.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SendSuccess sends a 200 response with a message and optional data.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends a failure envelope with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = utilsStatusMessage(status)
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}

func utilsStatusMessage(status int) string {
	if text := fiberutils.StatusMessage(status); text != "" {
		return text
	}
	return "error"
}
