package repository

import (
	"context"
	"testing"

	"wrenchbase/internal/models"
	"wrenchbase/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedVehicles(t *testing.T, db *gorm.DB) {
	t.Helper()
	vehicles := []models.Vehicle{
		{Year: 2015, Make: "Ford", Model: "F-150", EngineType: "V8", DriveType: models.DriveTypeFourWheel, Category: models.VehicleCategoryTruck},
		{Year: 2018, Make: "Toyota", Model: "Camry", EngineType: "I4", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar},
		{Year: 2020, Make: "Subaru", Model: "Outback", EngineType: "I4", DriveType: models.DriveTypeAllWheel, Category: models.VehicleCategoryCar},
		{Year: 2020, Make: "Ford", Model: "Mustang", EngineType: "V8", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar},
		{Year: 2012, Make: "Freightliner", Model: "Cascadia", EngineType: "Diesel", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryHeavyTruck},
	}
	for i := range vehicles {
		require.NoError(t, db.Create(&vehicles[i]).Error)
	}
}

func intp(v int) *int { return &v }

func TestVehicleRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	modelsOf := func(vs []models.Vehicle) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.Model)
		}
		return out
	}

	tests := []struct {
		name     string
		filters  search.FilterSet
		expected []string
	}{
		{
			name:    "Empty filter returns full collection ordered by year then make",
			filters: search.FilterSet{},
			expected: []string{
				"Mustang", "Outback", // 2020, Ford before Subaru
				"Camry",    // 2018
				"F-150",    // 2015
				"Cascadia", // 2012
			},
		},
		{
			name:     "Year range bounds are inclusive",
			filters:  search.FilterSet{YearFrom: intp(2015), YearTo: intp(2018)},
			expected: []string{"Camry", "F-150"},
		},
		{
			name:     "Lower bound alone leaves upper side open",
			filters:  search.FilterSet{YearFrom: intp(2018)},
			expected: []string{"Mustang", "Outback", "Camry"},
		},
		{
			name:     "Multiple makes combine disjunctively",
			filters:  search.FilterSet{Makes: []string{"Ford", "Toyota"}},
			expected: []string{"Mustang", "Camry", "F-150"},
		},
		{
			name: "Distinct fields combine conjunctively",
			filters: search.FilterSet{
				Makes:      []string{"Ford"},
				Categories: []models.VehicleCategory{models.VehicleCategoryCar},
			},
			expected: []string{"Mustang"},
		},
		{
			name:     "Drive type filter",
			filters:  search.FilterSet{DriveTypes: []models.DriveType{models.DriveTypeAllWheel}},
			expected: []string{"Outback"},
		},
		{
			name:     "Engine type filter",
			filters:  search.FilterSet{EngineTypes: []string{"Diesel"}},
			expected: []string{"Cascadia"},
		},
		{
			name: "No match yields empty result, not an error",
			filters: search.FilterSet{
				Makes:    []string{"Ford"},
				YearFrom: intp(2021),
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, modelsOf(got))
		})
	}
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	var first models.Vehicle
	require.NoError(t, db.First(&first).Error)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Model, got.Model)

	_, err = repo.GetByID(ctx, 99999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestVehicleRepository_ListMakes(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db)
	repo := NewVehicleRepository(db)

	makes, err := repo.ListMakes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ford", "Freightliner", "Subaru", "Toyota"}, makes)
}

func TestVehicleRepository_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	page1, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page2, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)
}
