package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	// Jakarta Monas to Bandung Gedung Sate, roughly 118 km.
	d := DistanceKm(-6.1754, 106.8272, -6.9025, 107.6186)
	if d < 115 || d > 125 {
		t.Fatalf("Jakarta-Bandung = %.1f km, want roughly 118", d)
	}

	if d := DistanceKm(-6.2, 106.8, -6.2, 106.8); d != 0 {
		t.Fatalf("same point = %f, want 0", d)
	}

	// One degree of latitude is close to 111.19 km anywhere.
	d = DistanceKm(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.5 {
		t.Fatalf("one degree latitude = %.2f km, want about 111.19", d)
	}
}

func TestWithinKm(t *testing.T) {
	if !WithinKm(0, 0, 0.01, 0, 2) {
		t.Fatal("point about 1.1 km away not within 2 km")
	}
	if WithinKm(0, 0, 1, 0, 100) {
		t.Fatal("point about 111 km away within 100 km")
	}
	if WithinKm(0, 0, 0, 0, 0) {
		t.Fatal("zero radius should never match")
	}
}
