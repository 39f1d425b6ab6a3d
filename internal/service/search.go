// Package service contains the application's business logic.
package service

import (
	"context"
	"strconv"
	"time"

	"wrenchbase/internal/models"
	"wrenchbase/internal/observability"
	"wrenchbase/internal/repository"
	"wrenchbase/internal/search"
)

// SearchService answers vehicle and problem searches. Both operations are
// pure reads: identical filters against unchanged data return identical
// result sets, and an empty result is a success, never an error.
type SearchService struct {
	vehicleRepo repository.VehicleRepository
	problemRepo repository.ProblemRepository
	timeout     time.Duration
}

// NewSearchService returns a SearchService with a bounded per-query timeout.
func NewSearchService(vehicleRepo repository.VehicleRepository, problemRepo repository.ProblemRepository, timeout time.Duration) *SearchService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SearchService{
		vehicleRepo: vehicleRepo,
		problemRepo: problemRepo,
		timeout:     timeout,
	}
}

// SearchVehicles applies the filter set against the vehicle collection.
// An empty filter set returns the entire collection.
func (s *SearchService) SearchVehicles(ctx context.Context, filters search.FilterSet) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	span, ctx := observability.NewSpan(ctx, "search.vehicles")
	defer span.End()

	vehicles, err := s.vehicleRepo.Search(ctx, filters)
	if err != nil {
		span.SetError(err)
		observability.SearchQueriesTotal.WithLabelValues("vehicles", "error").Inc()
		return nil, err
	}

	observability.SearchQueriesTotal.WithLabelValues("vehicles", "ok").Inc()
	observability.SearchResultSize.WithLabelValues("vehicles").Observe(float64(len(vehicles)))
	return vehicles, nil
}

// SearchProblems scopes to a vehicle and/or a free-text query; both absent
// returns all problems, both present combine conjunctively.
func (s *SearchService) SearchProblems(ctx context.Context, vehicleID uint, query string) ([]models.Problem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	span, ctx := observability.NewSpan(ctx, "search.problems")
	defer span.End()

	problems, err := s.problemRepo.Search(ctx, vehicleID, query)
	if err != nil {
		span.SetError(err)
		observability.SearchQueriesTotal.WithLabelValues("problems", "error").Inc()
		return nil, err
	}

	observability.SearchQueriesTotal.WithLabelValues("problems", "ok").Inc()
	observability.SearchResultSize.WithLabelValues("problems").Observe(float64(len(problems)))
	return problems, nil
}

// ParseVehicleID converts the wire vehicleId parameter into a repository key.
// Empty means unscoped; anything non-numeric is a client error.
func ParseVehicleID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid vehicle ID")
	}
	return uint(id), nil
}
