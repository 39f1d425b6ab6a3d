// Package models contains data structures for the application's domain models.
package models

import "time"

// DriveType defines a vehicle's drive configuration.
type DriveType string

const (
	// DriveTypeTwoWheel is two-wheel drive.
	DriveTypeTwoWheel DriveType = "2WD"
	// DriveTypeFourWheel is four-wheel drive.
	DriveTypeFourWheel DriveType = "4WD"
	// DriveTypeAllWheel is all-wheel drive.
	DriveTypeAllWheel DriveType = "AWD"
)

// VehicleCategory defines the broad class of a vehicle.
type VehicleCategory string

const (
	// VehicleCategoryCar is a passenger car.
	VehicleCategoryCar VehicleCategory = "car"
	// VehicleCategoryTruck is a light or medium truck.
	VehicleCategoryTruck VehicleCategory = "truck"
	// VehicleCategoryHeavyTruck is a semi / heavy truck.
	VehicleCategoryHeavyTruck VehicleCategory = "18-wheeler"
)

// ValidDriveType reports whether the given value is a member of the closed drive type set.
func ValidDriveType(v string) bool {
	switch DriveType(v) {
	case DriveTypeTwoWheel, DriveTypeFourWheel, DriveTypeAllWheel:
		return true
	}
	return false
}

// ValidVehicleCategory reports whether the given value is a member of the closed category set.
func ValidVehicleCategory(v string) bool {
	switch VehicleCategory(v) {
	case VehicleCategoryCar, VehicleCategoryTruck, VehicleCategoryHeavyTruck:
		return true
	}
	return false
}

// Vehicle is immutable reference data describing a searchable vehicle.
// Rows are created by the seed tooling, never through the API.
type Vehicle struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Year       int             `gorm:"index;not null" json:"year"`
	Make       string          `gorm:"index;not null" json:"make"`
	Model      string          `gorm:"index;not null" json:"model"`
	EngineType string          `gorm:"index" json:"engine_type"`
	DriveType  DriveType       `gorm:"type:varchar(10);index" json:"drive_type"`
	Specialty  string          `json:"specialty,omitempty"`
	Category   VehicleCategory `gorm:"type:varchar(20);index" json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Problems   []Problem       `gorm:"foreignKey:VehicleID" json:"problems,omitempty"`
}
