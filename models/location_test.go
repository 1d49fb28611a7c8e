package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationResolved(t *testing.T) {
	assert.False(t, Location{}.Resolved())
	assert.True(t, NewLocation(52.3068, 4.9453, "Amsterdam").Resolved())
}

func TestCoordinatesResolved(t *testing.T) {
	unresolved := Coordinates{Latitude: Unresolved, Longitude: Unresolved}
	assert.False(t, unresolved.Resolved())

	fix := Coordinates{Latitude: 52.3068, Longitude: 4.9453}
	assert.True(t, fix.Resolved())
}
