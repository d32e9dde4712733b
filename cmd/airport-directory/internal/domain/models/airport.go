package models

import "github.com/flightforesight/flightforesight/pkg/flightfeatures"

type (
	Airport = flightfeatures.Airport
	Airline = flightfeatures.Airline
)

// AirportFilter selects a page of airports ordered by IATA code. Query
// matches IATA, name or city case-insensitively.
type AirportFilter struct {
	Limit int
	Query string
}

type SyncReport struct {
	AirportsImported int
	AirportsRejected int
	AirlinesImported int
	AirlinesRejected int
}
