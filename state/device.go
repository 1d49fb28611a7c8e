package state

import "weather-dashboard/models"

// Permission mirrors the device geolocation permission states.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionPrompt  Permission = "prompt"
)

// DeviceLocator models the device geolocation capability the dashboard runs
// next to. Permission state and support are plain values, not errors; a
// locator without a fix reports the unresolved sentinel coordinates.
type DeviceLocator interface {
	// Supported reports whether the device can produce coordinates at all.
	Supported() bool

	// Permission returns the current geolocation permission state.
	Permission() Permission

	// RequestRead asks the device to start or refresh a position read.
	RequestRead()

	// Coordinates returns the last known position, or unresolved sentinel
	// values while no fix is available.
	Coordinates() models.Coordinates
}

// staticLocator is a trivial DeviceLocator for deployments without device
// hardware: either unsupported, or pinned to fixed coordinates.
type staticLocator struct {
	supported  bool
	permission Permission
	coords     models.Coordinates
}

// UnsupportedLocator returns a DeviceLocator that reports no geolocation
// capability, making the user-location strategy a no-op.
func UnsupportedLocator() DeviceLocator {
	return &staticLocator{
		supported:  false,
		permission: PermissionPrompt,
		coords:     models.Coordinates{Latitude: models.Unresolved, Longitude: models.Unresolved},
	}
}

// FixedLocator returns a DeviceLocator pinned to the given coordinates with
// permission granted.
func FixedLocator(latitude, longitude float64) DeviceLocator {
	return &staticLocator{
		supported:  true,
		permission: PermissionGranted,
		coords:     models.Coordinates{Latitude: latitude, Longitude: longitude},
	}
}

func (l *staticLocator) Supported() bool                 { return l.supported }
func (l *staticLocator) Permission() Permission          { return l.permission }
func (l *staticLocator) RequestRead()                    {}
func (l *staticLocator) Coordinates() models.Coordinates { return l.coords }
