package dto

// AirportRecord is one row of the airports feed. Coordinates arrive as
// numbers but some exports quote them, so both are accepted by the mapper.
type AirportRecord struct {
	Name      string    `json:"name"`
	IATA      string    `json:"iata"`
	Latitude  FlexFloat `json:"latitude"`
	Longitude FlexFloat `json:"longitude"`
	City      string    `json:"city"`
}

type AirlineRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
