package server

import (
	"wrenchbase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me. The identity comes from the
// verified provider token, never from the request body.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	clerkID, ok := c.Locals("clerkID").(string)
	if !ok || clerkID == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}

	user, err := s.userRepo.GetByClerkID(c.UserContext(), clerkID)
	if err != nil {
		return respondRepoError(c, err)
	}

	return models.RespondWithData(c, user)
}
