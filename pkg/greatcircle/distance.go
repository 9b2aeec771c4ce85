package greatcircle

import "math"

// Distance returns the great-circle distance in miles between two points
// given in decimal degrees, using the spherical law of cosines.
//
// The arccos argument is clamped to [-1, 1] so rounding near coincident or
// antipodal points cannot produce NaN, and bit-identical points return 0.
// Coordinates are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return centralAngle(lat1, lon1, lat2, lon2) * DistanceScaler
}

func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1r := degToRad(lat1)
	lon1r := degToRad(lon1)
	lat2r := degToRad(lat2)
	lon2r := degToRad(lon2)

	cosTheta := math.Sin(lat1r)*math.Sin(lat2r) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Cos(lon2r-lon1r)

	return math.Acos(clamp(cosTheta, -1, 1))
}

// Haversine returns the great-circle distance in miles between two points
// using the haversine formula. It is better conditioned than Distance for
// very short separations.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := degToRad(lat1)
	phi2 := degToRad(lat2)
	deltaPhi := degToRad(lat2 - lat1)
	deltaLambda := degToRad(lon2 - lon1)

	a := math.Pow(math.Sin(deltaPhi/2), 2) + math.Cos(phi1)*math.Cos(phi2)*
		math.Pow(math.Sin(deltaLambda/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return DistanceScaler * c
}

func clamp(v, lo, hi float64) float64 {
	// NaN falls through both comparisons and is returned unchanged.
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
