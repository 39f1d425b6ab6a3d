package server

import (
	"wrenchbase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProblem handles GET /api/problems/:id, returning the problem with its
// solutions preloaded.
func (s *Server) GetProblem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid problem ID"))
	}

	problem, err := s.problemRepo.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return respondRepoError(c, err)
	}

	return models.RespondWithData(c, problem)
}
