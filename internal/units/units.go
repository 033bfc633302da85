// Package units provides shared constants and conversion for velocity units
package units

// Unit constants
const (
	MMPerMS = "mm/ms"
	MMPerS  = "mm/s"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MMPerMS, MMPerS}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mm/ms, mm/s"
}

// ConvertVelocity converts a velocity from mm/ms to the target units.
// The pipeline computes velocities in mm/ms (millimetres per millisecond);
// reports usually display mm/s.
func ConvertVelocity(velMMPerMS float64, targetUnits string) float64 {
	switch targetUnits {
	case MMPerMS:
		return velMMPerMS
	case MMPerS:
		return velMMPerMS * 1000
	default:
		return velMMPerMS
	}
}
