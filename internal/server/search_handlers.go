package server

import (
	"log/slog"

	"wrenchbase/internal/middleware"
	"wrenchbase/internal/models"
	"wrenchbase/internal/search"
	"wrenchbase/internal/service"

	"github.com/gofiber/fiber/v2"
)

// searchRequest is the write-style search body. Type discriminates between
// the two collections; filters apply to vehicles, vehicleId/query to problems.
type searchRequest struct {
	Type      string              `json:"type"`
	Filters   *search.FilterInput `json:"filters,omitempty"`
	VehicleID string              `json:"vehicleId,omitempty"`
	Query     string              `json:"query,omitempty"`
}

// Search handles GET /api/search with all constraints as query parameters.
// `type` defaults to vehicles on the read path.
func (s *Server) Search(c *fiber.Ctx) error {
	searchType := c.Query("type", "vehicles")

	switch searchType {
	case "vehicles":
		in := search.FilterInput{
			YearFrom:    c.Query("yearFrom"),
			YearTo:      c.Query("yearTo"),
			Makes:       queryValues(c, "make"),
			Models:      queryValues(c, "model"),
			EngineTypes: queryValues(c, "engineType"),
			DriveTypes:  queryValues(c, "driveType"),
			Categories:  queryValues(c, "category"),
		}
		return s.searchVehicles(c, in)
	case "problems":
		return s.searchProblems(c, c.Query("vehicleId"), c.Query("q"))
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid search type"))
	}
}

// SearchPost handles POST /api/search with a structured JSON body. Unlike the
// read path, a missing type discriminator is rejected, never defaulted.
func (s *Server) SearchPost(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	switch req.Type {
	case "vehicles":
		var in search.FilterInput
		if req.Filters != nil {
			in = *req.Filters
		}
		return s.searchVehicles(c, in)
	case "problems":
		return s.searchProblems(c, req.VehicleID, req.Query)
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid search type"))
	}
}

func (s *Server) searchVehicles(c *fiber.Ctx, in search.FilterInput) error {
	filters, err := in.Normalize()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	vehicles, err := s.searchSvc.SearchVehicles(c.UserContext(), filters)
	if err != nil {
		middleware.Logger.Error("vehicle search failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return models.RespondWithData(c, vehicles)
}

func (s *Server) searchProblems(c *fiber.Ctx, rawVehicleID, query string) error {
	vehicleID, err := service.ParseVehicleID(rawVehicleID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	problems, err := s.searchSvc.SearchProblems(c.UserContext(), vehicleID, query)
	if err != nil {
		middleware.Logger.Error("problem search failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if problems == nil {
		problems = []models.Problem{}
	}
	return models.RespondWithData(c, problems)
}
