// Package seed provides helpers to create development and test data for the
// knowledge base. Vehicles are reference data created only here, never
// through the API.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"wrenchbase/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var engineTypes = []string{"I4", "V6", "V8", "Diesel", "Hybrid", "Electric"}

var driveTypes = []models.DriveType{
	models.DriveTypeTwoWheel,
	models.DriveTypeFourWheel,
	models.DriveTypeAllWheel,
}

var problemTemplates = []struct {
	Title       string
	Commonality models.Commonality
	Difficulty  models.Difficulty
	Time        string
}{
	{"Transmission slipping between gears", models.CommonalityCommon, models.DifficultyHard, "4-8 hours"},
	{"Check engine light with rough idle", models.CommonalityCommon, models.DifficultyMedium, "1-3 hours"},
	{"Brake pedal pulsation under braking", models.CommonalityCommon, models.DifficultyEasy, "1-2 hours"},
	{"Coolant leak near water pump", models.CommonalityUncommon, models.DifficultyMedium, "2-4 hours"},
	{"Alternator not charging battery", models.CommonalityCommon, models.DifficultyMedium, "1-2 hours"},
	{"Blown head gasket", models.CommonalityRare, models.DifficultyHard, "8-16 hours"},
	{"Worn serpentine belt squeal", models.CommonalityCommon, models.DifficultyEasy, "30-60 minutes"},
	{"Failing oxygen sensor", models.CommonalityCommon, models.DifficultyEasy, "30-60 minutes"},
	{"Clunking from front suspension", models.CommonalityUncommon, models.DifficultyMedium, "2-4 hours"},
	{"Intermittent no-start condition", models.CommonalityUncommon, models.DifficultyHard, "2-6 hours"},
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateVehicle persists a vehicle with realistic reference data.
func (f *Factory) CreateVehicle(overrides ...func(*models.Vehicle)) (*models.Vehicle, error) {
	category := models.VehicleCategoryCar
	switch f.rng.Intn(10) {
	case 7, 8:
		category = models.VehicleCategoryTruck
	case 9:
		category = models.VehicleCategoryHeavyTruck
	}

	vehicle := &models.Vehicle{
		Year:       1995 + f.rng.Intn(30),
		Make:       gofakeit.CarMaker(),
		Model:      gofakeit.CarModel(),
		EngineType: engineTypes[f.rng.Intn(len(engineTypes))],
		DriveType:  driveTypes[f.rng.Intn(len(driveTypes))],
		Category:   category,
	}

	for _, o := range overrides {
		o(vehicle)
	}

	if err := f.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// CreateProblem persists a problem for the vehicle, with one solution.
func (f *Factory) CreateProblem(vehicle *models.Vehicle, overrides ...func(*models.Problem)) (*models.Problem, error) {
	tpl := problemTemplates[f.rng.Intn(len(problemTemplates))]

	problem := &models.Problem{
		VehicleID:     vehicle.ID,
		Title:         tpl.Title,
		Description:   gofakeit.Paragraph(1, 3, 8, " "),
		Symptoms:      []string{gofakeit.Sentence(4), gofakeit.Sentence(4)},
		Commonality:   tpl.Commonality,
		Difficulty:    tpl.Difficulty,
		EstimatedTime: tpl.Time,
	}

	for _, o := range overrides {
		o(problem)
	}

	if err := f.db.Create(problem).Error; err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}

	solution := &models.Solution{
		ProblemID:   problem.ID,
		Description: gofakeit.Sentence(10),
		Steps: []string{
			"Disconnect the battery negative terminal",
			gofakeit.Sentence(6),
			gofakeit.Sentence(6),
			"Reconnect the battery and test",
		},
		Tools: []models.Tool{
			{Name: "Socket set", Required: true},
			{Name: "Torque wrench", Required: false},
		},
		Parts: []models.Part{
			{
				Name:               gofakeit.CarType() + " replacement part",
				PartNumber:         gofakeit.LetterN(2) + gofakeit.DigitN(5),
				InterchangeableIDs: []string{gofakeit.LetterN(2) + gofakeit.DigitN(5)},
			},
		},
		Warnings:   []string{"Wear eye protection"},
		References: []string{gofakeit.URL()},
	}
	if err := f.db.Create(solution).Error; err != nil {
		return nil, fmt.Errorf("create solution: %w", err)
	}

	return problem, nil
}

// CreateUser persists a user with a synthetic external identity key. Used by
// tests and local demos; production user rows only ever arrive via webhook.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		ClerkID:   "user_" + uuid.NewString(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Username:  gofakeit.Username(),
		Role:      models.UserRoleUser,
	}

	for _, o := range overrides {
		o(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
