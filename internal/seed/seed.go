package seed

import (
	"fmt"
	"log"

	"wrenchbase/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumVehicles        int
	ProblemsPerVehicle int
	ShouldClean        bool
}

// Seeder populates the database with generated data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Child tables go first so foreign keys
// stay satisfied on databases that enforce them.
func (s *Seeder) ClearAll() error {
	log.Println("🧹 Clearing existing data...")
	for _, model := range []any{
		&models.Solution{},
		&models.Problem{},
		&models.Vehicle{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedInventory creates numVehicles vehicles, each with up to
// problemsPerVehicle problems and their solutions.
func (s *Seeder) SeedInventory(numVehicles, problemsPerVehicle int) ([]*models.Vehicle, error) {
	log.Printf("🚗 Creating %d vehicles...", numVehicles)

	vehicles := make([]*models.Vehicle, 0, numVehicles)
	for i := 0; i < numVehicles; i++ {
		vehicle, err := s.factory.CreateVehicle()
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)

		numProblems := 1 + s.factory.rng.Intn(problemsPerVehicle)
		for j := 0; j < numProblems; j++ {
			if _, err := s.factory.CreateProblem(vehicle); err != nil {
				return nil, err
			}
		}
	}

	log.Printf("✅ Created %d vehicles", len(vehicles))
	return vehicles, nil
}

// Catalog inserts a small fixed set of well-known vehicles so local
// environments always have predictable rows to search against.
func Catalog(db *gorm.DB) error {
	known := []models.Vehicle{
		{Year: 2015, Make: "Ford", Model: "F-150", EngineType: "V8", DriveType: models.DriveTypeFourWheel, Category: models.VehicleCategoryTruck},
		{Year: 2018, Make: "Toyota", Model: "Camry", EngineType: "I4", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar},
		{Year: 2020, Make: "Subaru", Model: "Outback", EngineType: "I4", DriveType: models.DriveTypeAllWheel, Category: models.VehicleCategoryCar},
		{Year: 2012, Make: "Freightliner", Model: "Cascadia", EngineType: "Diesel", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryHeavyTruck},
		{Year: 2021, Make: "Tesla", Model: "Model 3", EngineType: "Electric", DriveType: models.DriveTypeAllWheel, Category: models.VehicleCategoryCar},
	}

	for i := range known {
		v := known[i]
		var existing models.Vehicle
		err := db.Where("year = ? AND make = ? AND model = ?", v.Year, v.Make, v.Model).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("lookup catalog vehicle: %w", err)
		}
		if err := db.Create(&v).Error; err != nil {
			return fmt.Errorf("create catalog vehicle: %w", err)
		}
	}

	log.Printf("✅ Catalog vehicles in place (%d)", len(known))
	return nil
}
