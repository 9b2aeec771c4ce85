package greatcircle

import (
	"fmt"
	"strings"
)

// Unit is a linear distance unit on the same spherical Earth.
type Unit string

const (
	UnitMiles         Unit = "miles"
	UnitKilometers    Unit = "kilometers"
	UnitMeters        Unit = "meters"
	UnitNauticalMiles Unit = "nautical_miles"
)

// ParseUnit accepts a unit name or its usual abbreviation.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miles", "mile", "mi":
		return UnitMiles, nil
	case "kilometers", "kilometer", "km":
		return UnitKilometers, nil
	case "meters", "meter", "m":
		return UnitMeters, nil
	case "nautical_miles", "nautical_mile", "nmi":
		return UnitNauticalMiles, nil
	}
	return "", fmt.Errorf("unknown distance unit %q", s)
}

// Radius returns the Earth's radius expressed in u.
func (u Unit) Radius() float64 {
	switch u {
	case UnitMiles:
		return DistanceScaler
	case UnitKilometers:
		return earthRadiusNauticalMiles * metersPerNauticalMile / 1000
	case UnitMeters:
		return earthRadiusNauticalMiles * metersPerNauticalMile
	case UnitNauticalMiles:
		return earthRadiusNauticalMiles
	}
	return 0
}

// Scale converts a distance in miles, as returned by Distance and Haversine,
// into u.
func (u Unit) Scale(miles float64) float64 {
	if u == UnitMiles {
		return miles
	}
	return miles / DistanceScaler * u.Radius()
}

// Abbrev is the short suffix used when printing distances.
func (u Unit) Abbrev() string {
	switch u {
	case UnitMiles:
		return "mi"
	case UnitKilometers:
		return "km"
	case UnitMeters:
		return "m"
	case UnitNauticalMiles:
		return "nmi"
	}
	return string(u)
}
