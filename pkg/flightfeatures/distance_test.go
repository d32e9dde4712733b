package flightfeatures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	syd = Airport{Name: "Sydney Kingsford Smith", IATA: "SYD", Latitude: -33.9461, Longitude: 151.1772, City: "Sydney"}
	mel = Airport{Name: "Melbourne", IATA: "MEL", Latitude: -37.6733, Longitude: 144.8433, City: "Melbourne"}
	lax = Airport{Name: "Los Angeles International", IATA: "LAX", Latitude: 33.9425, Longitude: -118.4081, City: "Los Angeles"}
	avv = Airport{Name: "Avalon", IATA: "AVV", Latitude: -38.0394, Longitude: 144.4694, City: "Melbourne"}
)

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Airport{{syd, mel}, {syd, lax}, {mel, lax}, {lax, avv}}
	for _, p := range pairs {
		ab := AirportDistance(p[0], p[1])
		ba := AirportDistance(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9, "%s-%s", p[0].IATA, p[1].IATA)
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	for _, a := range []Airport{syd, mel, lax, {Latitude: 90, Longitude: 180}} {
		assert.Zero(t, Distance(a.Latitude, a.Longitude, a.Latitude, a.Longitude))
	}
}

func TestDistance_QuarterGreatCircle(t *testing.T) {
	got := Distance(0, 0, 0, 90)
	assert.InDelta(t, 10007.5, got, 0.1)
}

func TestDistance_Antipodal(t *testing.T) {
	want := math.Pi * EarthRadiusKm

	got := Distance(0, 0, 0, 180)
	require.False(t, math.IsNaN(got))
	assert.InDelta(t, want, got, 1e-3)

	got = Distance(45, 30, -45, -150)
	require.False(t, math.IsNaN(got))
	assert.InDelta(t, want, got, 1e-3)
}

func TestDistance_NonNegative(t *testing.T) {
	coords := []float64{-90, -45.5, 0, 12.25, 89.9}
	for _, lat1 := range coords {
		for _, lat2 := range coords {
			d := Distance(lat1, -179.5, lat2, 179.5)
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-90, -180))
	assert.True(t, ValidCoordinates(90, 180))
	assert.False(t, ValidCoordinates(90.01, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}
