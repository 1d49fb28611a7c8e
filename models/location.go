package models

import "math"

// Unresolved is the sentinel coordinate value reported by a device locator
// while a position read is still pending.
var Unresolved = math.Inf(1)

// Location is a resolved geographic location. The zero value (no coordinates,
// empty name) means "not resolved yet"; a successful resolution always
// replaces the whole record.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Name      *string  `json:"name"`
}

// NewLocation builds a fully resolved location record.
func NewLocation(latitude, longitude float64, name string) Location {
	return Location{
		Latitude:  &latitude,
		Longitude: &longitude,
		Name:      &name,
	}
}

// Resolved reports whether the location carries usable coordinates.
func (l Location) Resolved() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Coordinates is a raw coordinate pair as reported by a device locator.
// Either field may be Unresolved while the device has no fix yet.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Resolved reports whether the device produced an actual fix.
func (c Coordinates) Resolved() bool {
	return !math.IsInf(c.Latitude, 1) && !math.IsInf(c.Longitude, 1)
}
