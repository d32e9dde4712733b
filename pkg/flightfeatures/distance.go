package flightfeatures

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between two points
// given in decimal degrees, using the haversine formula:
//
//	a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
//	c = 2 ⋅ atan2(√a, √(1−a))
//	d = R ⋅ c
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := degreesToRadians(lat1)
	phi2 := degreesToRadians(lat2)
	deltaPhi := degreesToRadians(lat2 - lat1)
	deltaLambda := degreesToRadians(lon2 - lon1)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// rounding can push a slightly outside [0,1] for antipodal points
	a = max(0, min(1, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// AirportDistance is Distance between two airports.
func AirportDistance(from, to Airport) float64 {
	return Distance(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

// ValidCoordinates reports whether lat is in [-90,90] and lon in [-180,180].
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
