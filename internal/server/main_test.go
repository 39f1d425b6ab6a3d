package server

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"wrenchbase/internal/config"
	"wrenchbase/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testWebhookSecret is the svix documentation example secret; any well-formed
// whsec_ value works for signing test payloads.
const testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

func testConfig() *config.Config {
	return &config.Config{
		Port:                 "8460",
		Env:                  "test",
		JWTSecret:            "test-signing-secret",
		WebhookSecret:        testWebhookSecret,
		AdminEmail:           "boss@example.com",
		SearchTimeoutSeconds: 5,
	}
}

func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Vehicle{},
		&models.Problem{},
		&models.Solution{},
		&models.User{},
	))

	s := NewTestServer(testConfig(), db)
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// decodeEnvelope reads the response body into the uniform API envelope.
func decodeEnvelope(t *testing.T, resp *http.Response) models.APIResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var env models.APIResponse
	require.NoError(t, json.Unmarshal(body, &env), "body: %s", string(body))
	return env
}

func seedTestVehicles(t *testing.T, db *gorm.DB) []models.Vehicle {
	t.Helper()
	vehicles := []models.Vehicle{
		{Year: 2015, Make: "Ford", Model: "F-150", EngineType: "V8", DriveType: models.DriveTypeFourWheel, Category: models.VehicleCategoryTruck},
		{Year: 2018, Make: "Toyota", Model: "Camry", EngineType: "I4", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar},
		{Year: 2020, Make: "Ford", Model: "Mustang", EngineType: "V8", DriveType: models.DriveTypeTwoWheel, Category: models.VehicleCategoryCar},
	}
	for i := range vehicles {
		require.NoError(t, db.Create(&vehicles[i]).Error)
	}
	return vehicles
}
