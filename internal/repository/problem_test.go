package repository

import (
	"context"
	"testing"
	"time"

	"wrenchbase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProblems(t *testing.T, db *gorm.DB) (models.Vehicle, models.Vehicle) {
	t.Helper()
	truck := models.Vehicle{Year: 2015, Make: "Ford", Model: "F-150", EngineType: "V8", DriveType: models.DriveTypeFourWheel, Category: models.VehicleCategoryTruck}
	car := models.Vehicle{Year: 2018, Make: "Toyota", Model: "Camry", EngineType: "I4", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar}
	require.NoError(t, db.Create(&truck).Error)
	require.NoError(t, db.Create(&car).Error)

	base := time.Now().Add(-time.Hour)
	problems := []models.Problem{
		{VehicleID: truck.ID, Title: "Transmission slipping", Description: "Slips between second and third gear", Commonality: models.CommonalityCommon, Difficulty: models.DifficultyHard, CreatedAt: base},
		{VehicleID: truck.ID, Title: "Coolant leak", Description: "Puddle under the engine bay", Commonality: models.CommonalityUncommon, Difficulty: models.DifficultyMedium, CreatedAt: base.Add(time.Minute)},
		{VehicleID: car.ID, Title: "Brake pulsation", Description: "Pedal shudders when TRANSMISSION is cold", Commonality: models.CommonalityCommon, Difficulty: models.DifficultyEasy, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range problems {
		require.NoError(t, db.Create(&problems[i]).Error)
	}
	return truck, car
}

func TestProblemRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	truck, _ := seedProblems(t, db)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	t.Run("Unscoped returns all, newest first", func(t *testing.T) {
		got, err := repo.Search(ctx, 0, "")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Brake pulsation", got[0].Title)
	})

	t.Run("Vehicle scope restricts results", func(t *testing.T) {
		got, err := repo.Search(ctx, truck.ID, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, truck.ID, p.VehicleID)
		}
	})

	t.Run("Query matches title and description case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, 0, "transmission")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("Vehicle scope and query combine conjunctively", func(t *testing.T) {
		got, err := repo.Search(ctx, truck.ID, "transmission")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Transmission slipping", got[0].Title)
	})

	t.Run("No match is empty, not an error", func(t *testing.T) {
		got, err := repo.Search(ctx, truck.ID, "flux capacitor")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestProblemRepository_GetByID_PreloadsSolutions(t *testing.T) {
	db := setupTestDB(t)
	truck, _ := seedProblems(t, db)
	repo := NewProblemRepository(db)
	ctx := context.Background()

	var problem models.Problem
	require.NoError(t, db.Where("vehicle_id = ?", truck.ID).First(&problem).Error)

	solution := models.Solution{
		ProblemID:   problem.ID,
		Description: "Replace the valve body",
		Steps:       []string{"Drain fluid", "Drop pan", "Swap valve body"},
		Tools:       []models.Tool{{Name: "Torque wrench", Required: true}},
	}
	require.NoError(t, db.Create(&solution).Error)

	got, err := repo.GetByID(ctx, problem.ID)
	require.NoError(t, err)
	require.Len(t, got.Solutions, 1)
	assert.Equal(t, "Replace the valve body", got.Solutions[0].Description)
	assert.Equal(t, []string{"Drain fluid", "Drop pan", "Swap valve body"}, got.Solutions[0].Steps)

	_, err = repo.GetByID(ctx, 99999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestProblemRepository_ListByVehicle(t *testing.T) {
	db := setupTestDB(t)
	_, car := seedProblems(t, db)
	repo := NewProblemRepository(db)

	got, err := repo.ListByVehicle(context.Background(), car.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Brake pulsation", got[0].Title)
}
