package airportv1

type Airport struct {
	IATA      string  `json:"iata"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type GetAirportRequest struct {
	IATA string `json:"iata"`
}

func (r *GetAirportRequest) GetIATA() string {
	if r == nil {
		return ""
	}
	return r.IATA
}

type GetAirportResponse struct {
	Airport *Airport `json:"airport"`
}

func (r *GetAirportResponse) GetAirport() *Airport {
	if r == nil {
		return nil
	}
	return r.Airport
}

type ListAirportsRequest struct {
	Limit int32  `json:"limit"`
	Query string `json:"query,omitempty"`
}

type ListAirportsResponse struct {
	Airports []*Airport `json:"airports"`
}

type UpsertAirportRequest struct {
	Airport *Airport `json:"airport"`
}

type UpsertAirportResponse struct {
	Airport *Airport `json:"airport"`
}

type DeleteAirportRequest struct {
	IATA string `json:"iata"`
}

type DeleteAirportResponse struct{}

type ListAirlinesRequest struct{}

type ListAirlinesResponse struct {
	Airlines []*Airline `json:"airlines"`
}

type SyncReferenceDataRequest struct{}

type SyncReferenceDataResponse struct {
	AirportsImported int32 `json:"airports_imported"`
	AirportsRejected int32 `json:"airports_rejected"`
	AirlinesImported int32 `json:"airlines_imported"`
	AirlinesRejected int32 `json:"airlines_rejected"`
}
