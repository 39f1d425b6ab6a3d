package repository

import (
	"context"
	"errors"
	"strings"

	"wrenchbase/internal/models"

	"gorm.io/gorm"
)

// ProblemRepository defines persistence operations for known problems.
type ProblemRepository interface {
	// Search scopes to a vehicle when vehicleID is non-zero and to a
	// case-insensitive substring match over title/description when query is
	// non-empty. Both absent returns all problems.
	Search(ctx context.Context, vehicleID uint, query string) ([]models.Problem, error)
	GetByID(ctx context.Context, id uint) (*models.Problem, error)
	ListByVehicle(ctx context.Context, vehicleID uint) ([]models.Problem, error)
	Create(ctx context.Context, problem *models.Problem) error
}

type problemRepository struct {
	db *gorm.DB
}

// NewProblemRepository returns a new ProblemRepository implementation.
func NewProblemRepository(db *gorm.DB) ProblemRepository {
	return &problemRepository{db: db}
}

func (r *problemRepository) Search(ctx context.Context, vehicleID uint, query string) ([]models.Problem, error) {
	q := r.db.WithContext(ctx).Model(&models.Problem{})

	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	if query != "" {
		// LIKE over lowered columns keeps the match case-insensitive on both
		// postgres and sqlite.
		needle := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}

	var problems []models.Problem
	if err := q.Order("created_at DESC").Find(&problems).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return problems, nil
}

func (r *problemRepository) GetByID(ctx context.Context, id uint) (*models.Problem, error) {
	var problem models.Problem
	if err := r.db.WithContext(ctx).
		Preload("Solutions").
		First(&problem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Problem", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &problem, nil
}

func (r *problemRepository) ListByVehicle(ctx context.Context, vehicleID uint) ([]models.Problem, error) {
	var problems []models.Problem
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&problems).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return problems, nil
}

func (r *problemRepository) Create(ctx context.Context, problem *models.Problem) error {
	if err := r.db.WithContext(ctx).Create(problem).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
