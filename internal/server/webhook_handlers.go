package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"wrenchbase/internal/middleware"
	"wrenchbase/internal/models"
	"wrenchbase/internal/service"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
)

// HandleIdentityWebhook handles POST /api/webhooks/identity.
//
// Signature verification runs before any payload parsing: requests without
// the full svix header set are rejected outright, and a bad signature never
// reaches the sync service. Processing is at-most-once per delivery; the
// provider's redelivery drives eventual consistency after a 5xx.
func (s *Server) HandleIdentityWebhook(c *fiber.Ctx) error {
	svixID := c.Get("svix-id")
	svixTimestamp := c.Get("svix-timestamp")
	svixSignature := c.Get("svix-signature")

	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		return c.Status(fiber.StatusBadRequest).
			SendString("Error occurred -- no svix headers")
	}

	wh, err := svix.NewWebhook(s.config.WebhookSecret)
	if err != nil {
		middleware.Logger.Error("webhook secret misconfigured", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	headers := http.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)

	payload := c.Body()
	if err := wh.Verify(payload, headers); err != nil {
		middleware.Logger.Warn("webhook signature verification failed",
			slog.String("svix_id", svixID),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Webhook verification failed"))
	}

	var evt service.IdentityEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid event payload"))
	}

	if err := s.identitySync.Process(c.UserContext(), evt); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
		middleware.Logger.Error("identity event processing failed",
			slog.String("type", evt.Type),
			slog.String("svix_id", svixID),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Acknowledge with a bare 200; the provider only looks at the status.
	return c.Status(fiber.StatusOK).Send(nil)
}
