package models

import "github.com/gofiber/fiber/v2"

// APIResponse is the uniform envelope for every API response. Exactly one of
// Data or Error is populated, discriminated by Success.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondWithData writes a success envelope wrapping data.
func RespondWithData(c *fiber.Ctx, data any) error {
	return c.JSON(APIResponse{Success: true, Data: data})
}

// RespondWithError writes a failure envelope with the given status code.
// Wrapped internal error detail is never echoed to the caller; the message on
// the AppError is already safe to surface.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	msg := "Internal server error"
	if appErr, ok := err.(*AppError); ok {
		msg = appErr.Message
	} else if err != nil && status < fiber.StatusInternalServerError {
		msg = err.Error()
	}
	return c.Status(status).JSON(APIResponse{Success: false, Error: msg})
}
