package greatcircle

import (
	"fmt"
	"math"
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Valid reports whether the latitude lies in [-90, 90] and the longitude is
// finite. Longitudes outside [-180, 180] are valid; they are normalized
// wherever a longitude is produced.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lon)
}

// Distance returns the great-circle distance to q in miles.
func (p Point) Distance(q Point) float64 {
	return Distance(p.Lat, p.Lon, q.Lat, q.Lon)
}

// Midpoint returns the midpoint of the arc to q and the azimuth there.
func (p Point) Midpoint(q Point) (Point, float64) {
	arc := Solve(p, q)
	return arc.Midpoint, arc.MidpointAzimuth
}

// Degeneracy says why a pair of points has no unique great circle.
type Degeneracy int

const (
	// DegenerateNone means the points define exactly one great circle.
	DegenerateNone Degeneracy = iota
	// DegenerateCoincident means the points are the same place.
	DegenerateCoincident
	// DegenerateAntipodal means the points are on opposite sides of the Earth.
	DegenerateAntipodal
)

// DegenerateTolerance is the angular slack, in radians, used by Degenerate.
// It is roughly 6 millimetres on the Earth's surface.
const DegenerateTolerance = 1e-9

func (d Degeneracy) String() string {
	switch d {
	case DegenerateNone:
		return "none"
	case DegenerateCoincident:
		return "coincident"
	case DegenerateAntipodal:
		return "antipodal"
	}
	return fmt.Sprintf("Degeneracy(%d)", int(d))
}

// Degenerate classifies a pair of points for which the great circle through
// them is not unique, so that the midpoint azimuth is meaningless.
func Degenerate(p1, p2 Point) Degeneracy {
	central := degToRad(Solve(p1, p2).CentralAngle)
	switch {
	case central < DegenerateTolerance:
		return DegenerateCoincident
	case math.Pi-central < DegenerateTolerance:
		return DegenerateAntipodal
	}
	return DegenerateNone
}
