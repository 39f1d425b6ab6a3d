package server

import (
	"errors"
	"log/slog"

	"wrenchbase/internal/middleware"
	"wrenchbase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetVehicles handles GET /api/vehicles
func (s *Server) GetVehicles(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	vehicles, err := s.vehicleRepo.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		middleware.Logger.Error("vehicle list failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return models.RespondWithData(c, vehicles)
}

// GetVehicleMakes handles GET /api/vehicles/makes
func (s *Server) GetVehicleMakes(c *fiber.Ctx) error {
	makes, err := s.vehicleRepo.ListMakes(c.UserContext())
	if err != nil {
		middleware.Logger.Error("make list failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if makes == nil {
		makes = []string{}
	}
	return models.RespondWithData(c, makes)
}

// GetVehicle handles GET /api/vehicles/:id
func (s *Server) GetVehicle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid vehicle ID"))
	}

	vehicle, err := s.vehicleRepo.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return respondRepoError(c, err)
	}

	return models.RespondWithData(c, vehicle)
}

// GetVehicleProblems handles GET /api/vehicles/:id/problems
func (s *Server) GetVehicleProblems(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid vehicle ID"))
	}

	problems, err := s.problemRepo.ListByVehicle(c.UserContext(), uint(id))
	if err != nil {
		middleware.Logger.Error("vehicle problems lookup failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if problems == nil {
		problems = []models.Problem{}
	}
	return models.RespondWithData(c, problems)
}

// respondRepoError maps repository AppErrors onto HTTP statuses.
func respondRepoError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
	}
	middleware.Logger.Error("repository error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
