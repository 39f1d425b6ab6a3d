package models

import "time"

// Tool is a tool needed for a repair. Optional tools make the job easier but
// are not strictly required.
type Tool struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Part is a replacement part, optionally with interchangeable part numbers
// from other manufacturers.
type Part struct {
	Name               string   `json:"name"`
	PartNumber         string   `json:"part_number,omitempty"`
	InterchangeableIDs []string `json:"interchangeable_ids,omitempty"`
}

// Solution describes one way to fix a problem. Owned by exactly one problem.
type Solution struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProblemID   uint      `gorm:"index;not null" json:"problem_id"`
	Description string    `gorm:"type:text" json:"description"`
	Steps       []string  `gorm:"serializer:json" json:"steps"`
	Tools       []Tool    `gorm:"serializer:json" json:"tools"`
	Parts       []Part    `gorm:"serializer:json" json:"parts"`
	Warnings    []string  `gorm:"serializer:json" json:"warnings"`
	References  []string  `gorm:"serializer:json" json:"references"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
