// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"wrenchbase/internal/cache"
	"wrenchbase/internal/models"
	"wrenchbase/internal/search"

	"gorm.io/gorm"
)

// VehicleRepository defines persistence operations for vehicle reference data.
type VehicleRepository interface {
	Search(ctx context.Context, filters search.FilterSet) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]models.Vehicle, error)
	ListMakes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository returns a new VehicleRepository implementation.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// applyFilters translates a FilterSet into a chain of predicates. Every
// populated field contributes one AND condition; values within a field are
// OR-combined through IN. Absent fields add nothing, so an empty FilterSet
// matches every row.
func applyFilters(db *gorm.DB, f search.FilterSet) *gorm.DB {
	if f.YearFrom != nil {
		db = db.Where("year >= ?", *f.YearFrom)
	}
	if f.YearTo != nil {
		db = db.Where("year <= ?", *f.YearTo)
	}
	if len(f.Makes) > 0 {
		db = db.Where("make IN ?", f.Makes)
	}
	if len(f.Models) > 0 {
		db = db.Where("model IN ?", f.Models)
	}
	if len(f.EngineTypes) > 0 {
		db = db.Where("engine_type IN ?", f.EngineTypes)
	}
	if len(f.DriveTypes) > 0 {
		db = db.Where("drive_type IN ?", f.DriveTypes)
	}
	if len(f.Categories) > 0 {
		db = db.Where("category IN ?", f.Categories)
	}
	return db
}

func (r *vehicleRepository) Search(ctx context.Context, filters search.FilterSet) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	q := applyFilters(r.db.WithContext(ctx).Model(&models.Vehicle{}), filters)
	if err := q.Order("year DESC, make ASC, model ASC").Find(&vehicles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	key := cache.VehicleKey(id)

	err := cache.Aside(ctx, key, &vehicle, cache.VehicleTTL, func() error {
		if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Vehicle", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context, limit, offset int) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Order("year DESC, make ASC, model ASC").
		Limit(limit).
		Offset(offset).
		Find(&vehicles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) ListMakes(ctx context.Context) ([]string, error) {
	var makes []string
	err := cache.Aside(ctx, cache.MakesKey, &makes, cache.MakesTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Vehicle{}).
			Distinct("make").
			Order("make ASC").
			Pluck("make", &makes).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return makes, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
