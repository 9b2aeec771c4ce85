package greatcircle

import "math"

const (
	earthRadiusNauticalMiles = 3443.8985
	metersPerNauticalMile    = 1852
	metersPerMile            = 1609.344
)

// DistanceScaler is the Earth's mean spherical radius in miles.
const DistanceScaler = earthRadiusNauticalMiles * metersPerNauticalMile / metersPerMile

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// wrapPi folds an angle into (-π, π]. Angles that a single turn brings back
// into range are corrected by exactly one ±2π step.
func wrapPi(rad float64) float64 {
	if rad > math.Pi {
		rad -= 2 * math.Pi
	} else if rad <= -math.Pi {
		rad += 2 * math.Pi
	}
	if rad > math.Pi || rad <= -math.Pi {
		rad = math.Remainder(rad, 2*math.Pi)
		if rad <= -math.Pi {
			rad += 2 * math.Pi
		}
	}
	return rad
}
