// Package search defines the filter model used to scope vehicle and problem
// queries. A FilterSet is a transient, per-request value object: fields left
// unset impose no constraint at all, they never mean "match nothing".
package search

import (
	"strconv"

	"wrenchbase/internal/models"
)

// FilterSet holds the normalized, optional constraints for a vehicle search.
// Multiple values within one field are OR-combined; distinct fields are
// AND-combined.
type FilterSet struct {
	YearFrom    *int
	YearTo      *int
	Makes       []string
	Models      []string
	EngineTypes []string
	DriveTypes  []models.DriveType
	Categories  []models.VehicleCategory
}

// IsEmpty reports whether the filter set imposes no constraint.
func (f FilterSet) IsEmpty() bool {
	return f.YearFrom == nil && f.YearTo == nil &&
		len(f.Makes) == 0 && len(f.Models) == 0 && len(f.EngineTypes) == 0 &&
		len(f.DriveTypes) == 0 && len(f.Categories) == 0
}

// FilterInput is the loosely-typed filter shape accepted on the wire, both as
// query-string parameters and inside a POST body. Every field is optional and
// multi-valued.
type FilterInput struct {
	YearFrom    string   `json:"yearFrom,omitempty"`
	YearTo      string   `json:"yearTo,omitempty"`
	Makes       []string `json:"make,omitempty"`
	Models      []string `json:"model,omitempty"`
	EngineTypes []string `json:"engineType,omitempty"`
	DriveTypes  []string `json:"driveType,omitempty"`
	Categories  []string `json:"category,omitempty"`
}

// Normalize converts the raw input into a FilterSet, validating closed enum
// sets. Unknown driveType/category values are rejected rather than passed
// through to the query layer. A year bound that does not parse as an integer
// is dropped and that side of the range stays open; this matches the
// long-standing behavior callers rely on.
func (in FilterInput) Normalize() (FilterSet, error) {
	var fs FilterSet

	fs.YearFrom = parseYearBound(in.YearFrom)
	fs.YearTo = parseYearBound(in.YearTo)

	fs.Makes = dropEmpty(in.Makes)
	fs.Models = dropEmpty(in.Models)
	fs.EngineTypes = dropEmpty(in.EngineTypes)

	for _, v := range dropEmpty(in.DriveTypes) {
		if !models.ValidDriveType(v) {
			return FilterSet{}, models.NewValidationError("Invalid drive type: " + v)
		}
		fs.DriveTypes = append(fs.DriveTypes, models.DriveType(v))
	}

	for _, v := range dropEmpty(in.Categories) {
		if !models.ValidVehicleCategory(v) {
			return FilterSet{}, models.NewValidationError("Invalid category: " + v)
		}
		fs.Categories = append(fs.Categories, models.VehicleCategory(v))
	}

	return fs, nil
}

// parseYearBound returns nil for empty or non-numeric input so the bound
// stays open instead of collapsing to year zero.
func parseYearBound(s string) *int {
	if s == "" {
		return nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &y
}

func dropEmpty(in []string) []string {
	var out []string
	for _, v := range in {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
