package models

import "time"

// Commonality ranks how often a problem shows up in the field.
type Commonality string

const (
	// CommonalityCommon marks a frequently reported problem.
	CommonalityCommon Commonality = "common"
	// CommonalityUncommon marks an occasionally reported problem.
	CommonalityUncommon Commonality = "uncommon"
	// CommonalityRare marks a rarely reported problem.
	CommonalityRare Commonality = "rare"
)

// Difficulty ranks how hard a repair is for a home mechanic.
type Difficulty string

const (
	// DifficultyEasy is a driveway fix.
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium needs tools and patience.
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard is shop territory for most people.
	DifficultyHard Difficulty = "hard"
)

// Problem is a known issue for a specific vehicle. A problem always references
// exactly one vehicle; vehicles own zero or more problems.
type Problem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	VehicleID     uint        `gorm:"index;not null" json:"vehicle_id"`
	Vehicle       *Vehicle    `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Title         string      `gorm:"not null" json:"title"`
	Description   string      `gorm:"type:text" json:"description"`
	Symptoms      []string    `gorm:"serializer:json" json:"symptoms"`
	Solutions     []Solution  `gorm:"foreignKey:ProblemID" json:"solutions,omitempty"`
	Commonality   Commonality `gorm:"type:varchar(20);index" json:"commonality"`
	Difficulty    Difficulty  `gorm:"type:varchar(20);index" json:"difficulty"`
	EstimatedTime string      `json:"estimated_time"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
