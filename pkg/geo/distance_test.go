package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZero(t *testing.T) {
	if d := DistanceKm(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Errorf("distance from a point to itself = %v, want 0", d)
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(18.0735, -15.9582, 48.8566, 2.3522)
	b := DistanceKm(48.8566, 2.3522, 18.0735, -15.9582)
	if a != b {
		t.Errorf("distance not symmetric: %v != %v", a, b)
	}
	if a <= 0 {
		t.Errorf("distance between distinct points = %v, want > 0", a)
	}
}

func TestDistanceKmOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := DistanceKm(0, 0, 1, 0)
	want := 111.19
	if math.Abs(d-want)/want > 0.01 {
		t.Errorf("DistanceKm(0,0,1,0) = %v, want %v within 1%%", d, want)
	}
}

func TestRoundKm(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 0.1},
		{1.26, 1.3},
		{12.34, 12.3},
	}
	for _, c := range cases {
		if got := RoundKm(c.in); got != c.want {
			t.Errorf("RoundKm(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
