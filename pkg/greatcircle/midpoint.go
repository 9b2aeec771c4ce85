package greatcircle

import "math"

// Arc describes the great circle through two points and the midpoint of
// the shorter arc between them. All angles are in degrees.
type Arc struct {
	// InitialCourse is the azimuth of the arc at the first point.
	InitialCourse float64
	// CentralAngle is the angle subtended at the Earth's center.
	CentralAngle float64
	// NodeAzimuth is the azimuth at which the circle crosses the equator
	// heading north. It equals the circle's inclination and is the same
	// everywhere on the circle.
	NodeAzimuth float64
	// NodeLon is the longitude of that northbound equator crossing.
	NodeLon float64

	Midpoint        Point
	MidpointAzimuth float64
}

// Solve computes the great circle through p1 and p2 and the midpoint of the
// arc joining them.
//
// Coincident points yield p1 with azimuths of 0, following atan2(0, 0) = 0.
// Antipodal points do not define a unique circle and are not detected here;
// see Degenerate. When p1 is exactly a pole the node longitude comes from
// atan2 of rounding residue, so the midpoint longitude may be off by a
// fraction of a degree; its latitude and azimuth are unaffected.
func Solve(p1, p2 Point) Arc {
	lat1 := degToRad(p1.Lat)
	lon1 := degToRad(p1.Lon)
	lat2 := degToRad(p2.Lat)
	lon2 := degToRad(p2.Lon)

	sinLat1, cosLat1 := math.Sincos(lat1)
	sinLat2, cosLat2 := math.Sincos(lat2)

	lon12 := wrapPi(lon2 - lon1)
	sinLon12, cosLon12 := math.Sincos(lon12)

	y := cosLat2 * sinLon12
	x := cosLat1*sinLat2 - sinLat1*cosLat2*cosLon12
	initialCourse := math.Atan2(y, x)
	central := math.Atan2(math.Sqrt(x*x+y*y), sinLat1*sinLat2+cosLat1*cosLat2*cosLon12)

	sinCourse, cosCourse := math.Sincos(initialCourse)
	nodeAzimuth := math.Atan2(
		sinCourse*cosLat1,
		math.Sqrt(cosCourse*cosCourse+math.Pow(sinCourse*sinLat1, 2)),
	)
	sinNode, cosNode := math.Sincos(nodeAzimuth)

	// Angular distances along the circle, measured from the node.
	angle01 := math.Atan2(math.Tan(lat1), cosCourse)
	angle02 := angle01 + central
	nodeLon := lon1 - math.Atan2(sinNode*math.Sin(angle01), math.Cos(angle01))

	midAngle := (angle01 + angle02) / 2
	sinMid, cosMid := math.Sincos(midAngle)

	midLat := math.Atan2(
		cosNode*sinMid,
		math.Sqrt(cosMid*cosMid+math.Pow(sinNode*sinMid, 2)),
	)
	midLon := wrapPi(nodeLon + math.Atan2(sinNode*sinMid, cosMid))
	midAzimuth := math.Atan2(math.Tan(nodeAzimuth), cosMid)

	return Arc{
		InitialCourse:   radToDeg(initialCourse),
		CentralAngle:    radToDeg(central),
		NodeAzimuth:     radToDeg(nodeAzimuth),
		NodeLon:         radToDeg(nodeLon),
		Midpoint:        Point{Lat: radToDeg(midLat), Lon: radToDeg(midLon)},
		MidpointAzimuth: radToDeg(midAzimuth),
	}
}

// Midpoint returns the latitude, longitude and azimuth, in degrees, of the
// midpoint of the great-circle arc between two points. The longitude is
// normalized to (-180, 180].
func Midpoint(lat1, lon1, lat2, lon2 float64) (lat, lon, azimuth float64) {
	arc := Solve(Point{Lat: lat1, Lon: lon1}, Point{Lat: lat2, Lon: lon2})
	return arc.Midpoint.Lat, arc.Midpoint.Lon, arc.MidpointAzimuth
}
