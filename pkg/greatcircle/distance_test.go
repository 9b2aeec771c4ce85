package greatcircle_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/USA-RedDragon/greatcircle/pkg/greatcircle"
)

type coords struct {
	lat float64
	lng float64
}

var (
	devonTower      = coords{35.4669626, -97.5280147}
	anthemBrewing   = coords{35.4674537, -97.5331325}
	willRogers      = coords{35.3954731, -97.6065239}
	ouCampus        = coords{35.3956022, -97.9258855}
	rocklahoma      = coords{36.3638353, -95.2886689}
	gatewayArch     = coords{38.6251432, -90.1970501}
	statueOfLiberty = coords{40.6892494, -74.0445004}
	reykjavik       = coords{64.1334904, -21.8524423}
	tokyo           = coords{35.5092405, 139.7698121}
)

type landmarkPair struct {
	name  string
	from  coords
	to    coords
	miles float64
}

var landmarkPairs = []landmarkPair{
	{"Devon Tower to Anthem Brewing", devonTower, anthemBrewing, 0.29},
	{"Devon Tower to Will Rogers", devonTower, willRogers, 6.64},
	{"OU Campus to Rocklahoma", ouCampus, rocklahoma, 162.26},
	{"Gateway Arch to Statue of Liberty", gatewayArch, statueOfLiberty, 870.64},
	{"Reykjavík to Tokyo", reykjavik, tokyo, 5485.41},
	{"Reykjavík to Gateway Arch", reykjavik, gatewayArch, 3221.30},
	{"Tokyo to Statue of Liberty", tokyo, statueOfLiberty, 6758.60},
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func TestDistanceScaler(t *testing.T) {
	t.Parallel()

	if got := roundCents(greatcircle.DistanceScaler); got != 3963.17 {
		t.Errorf("expected Earth radius of 3963.17 miles, got %f", greatcircle.DistanceScaler)
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	for _, tt := range landmarkPairs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dist := roundCents(greatcircle.Distance(tt.from.lat, tt.from.lng, tt.to.lat, tt.to.lng))
			if dist != tt.miles {
				t.Errorf("expected %.2f miles, got %f", tt.miles, dist)
			}

			// Reverse direction
			dist = roundCents(greatcircle.Distance(tt.to.lat, tt.to.lng, tt.from.lat, tt.from.lng))
			if dist != tt.miles {
				t.Errorf("expected %.2f miles in reverse, got %f", tt.miles, dist)
			}
		})
	}
}

func TestHaversine(t *testing.T) {
	t.Parallel()

	for _, tt := range landmarkPairs {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hav := greatcircle.Haversine(tt.from.lat, tt.from.lng, tt.to.lat, tt.to.lng)
			if roundCents(hav) != tt.miles {
				t.Errorf("expected %.2f miles, got %f", tt.miles, hav)
			}

			cosines := greatcircle.Distance(tt.from.lat, tt.from.lng, tt.to.lat, tt.to.lng)
			if math.Abs(hav-cosines) > 1e-6 {
				t.Errorf("haversine %f and law of cosines %f disagree", hav, cosines)
			}
		})
	}
}

func TestDistanceSamePoint(t *testing.T) {
	t.Parallel()

	points := []coords{
		devonTower, tokyo, reykjavik,
		{0, 0}, {10, 20}, {90, 0}, {-90, 45}, {-33.8688, 151.2093},
	}

	for _, p := range points {
		if dist := greatcircle.Distance(p.lat, p.lng, p.lat, p.lng); dist != 0 {
			t.Errorf("expected 0 miles from %v to itself, got %g", p, dist)
		}
	}
}

func TestDistanceNearlySamePoint(t *testing.T) {
	t.Parallel()

	// The law of cosines rounds past 1 for some of these pairs; the result
	// must stay a number.
	points := []coords{devonTower, tokyo, {10, 20}, {45.123, -93.456}, {89.9, 10}}
	for _, p := range points {
		for _, eps := range []float64{1e-15, 1e-12, 1e-9} {
			dist := greatcircle.Distance(p.lat, p.lng, p.lat+eps, p.lng-eps)
			if math.IsNaN(dist) {
				t.Errorf("expected a number for %v offset by %g, got NaN", p, eps)
			}
			if dist < 0 || dist > 1e-3 {
				t.Errorf("expected a tiny distance for %v offset by %g, got %g", p, eps, dist)
			}
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	t.Parallel()

	halfCircumference := math.Pi * greatcircle.DistanceScaler

	cases := [][4]float64{
		{0, 0, 0, 180},
		{0, -90, 0, 90},
		{90, 0, -90, 0},
		{45, 10, -45, -170},
	}
	// The law of cosines loses about half its digits next to an antipode.
	for _, c := range cases {
		dist := greatcircle.Distance(c[0], c[1], c[2], c[3])
		if math.Abs(dist-halfCircumference) > 1e-3 {
			t.Errorf("expected %f miles between antipodes %v, got %f", halfCircumference, c, dist)
		}
	}
}

func TestDistanceOutOfRangeLongitude(t *testing.T) {
	t.Parallel()

	want := greatcircle.Distance(tokyo.lat, tokyo.lng, reykjavik.lat, reykjavik.lng)
	got := greatcircle.Distance(tokyo.lat, tokyo.lng+360, reykjavik.lat, reykjavik.lng-720)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected longitudes to wrap, got %f want %f", got, want)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	t.Parallel()

	if dist := greatcircle.Distance(math.NaN(), 0, 0, 0); !math.IsNaN(dist) {
		t.Errorf("expected NaN, got %f", dist)
	}
}

func TestDistanceSymmetricAndBounded(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	limit := math.Pi * greatcircle.DistanceScaler

	for range 10000 {
		lat1, lon1 := rng.Float64()*180-90, rng.Float64()*360-180
		lat2, lon2 := rng.Float64()*180-90, rng.Float64()*360-180

		there := greatcircle.Distance(lat1, lon1, lat2, lon2)
		back := greatcircle.Distance(lat2, lon2, lat1, lon1)
		if math.Abs(there-back) > 1e-9 {
			t.Fatalf("distance not symmetric for (%f,%f) (%f,%f): %f != %f", lat1, lon1, lat2, lon2, there, back)
		}
		if there < 0 || there > limit+1e-9 {
			t.Fatalf("distance %f out of [0, %f] for (%f,%f) (%f,%f)", there, limit, lat1, lon1, lat2, lon2)
		}
	}
}
