package flightfeatures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	t, err := ParseTimestamp(value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAirTime(t *testing.T) {
	assert.InDelta(t, 60.0, AirTime(880, 880), 1e-9)
	assert.InDelta(t, 60.0, AirTime(880, 0), 1e-9)
	assert.InDelta(t, 30.0, AirTime(482.5, 965), 1e-9)
	assert.Zero(t, AirTime(0, 880))
}

func TestDepartureDelay(t *testing.T) {
	scheduled := at("2024-03-15T09:05")

	assert.Equal(t, 15, DepartureDelay(scheduled, at("2024-03-15T09:20")))
	assert.Equal(t, -10, DepartureDelay(scheduled, at("2024-03-15T08:55")))
	assert.Equal(t, 0, DepartureDelay(scheduled, scheduled))
	assert.Equal(t, -1, DepartureDelay(scheduled, scheduled.Add(-90*time.Second)))
	assert.Equal(t, 1, DepartureDelay(scheduled, scheduled.Add(119*time.Second)))
}

func TestValidIATACode(t *testing.T) {
	for _, code := range []string{"SYD", "MEL", "AAA", "ZZZ"} {
		assert.True(t, ValidIATACode(code), code)
	}
	for _, code := range []string{"sy1", "syd", "SY", "SYDN", " SYD", "SY D", "S1D", "", "ÅBC"} {
		assert.False(t, ValidIATACode(code), code)
	}
}

func TestValidate_Rejections(t *testing.T) {
	dep := at("2024-03-15T09:05")
	arr := at("2024-03-15T10:40")

	tests := []struct {
		name  string
		query FlightQuery
		want  error
	}{
		{
			name:  "same airport",
			query: FlightQuery{Origin: Airport{IATA: "SYD"}, Destination: Airport{IATA: "SYD"}, ScheduledDeparture: dep, ScheduledArrival: arr},
			want:  ErrSameAirport,
		},
		{
			name:  "arrival equals departure",
			query: FlightQuery{Origin: syd, Destination: mel, ScheduledDeparture: dep, ScheduledArrival: dep},
			want:  ErrInvalidOrdering,
		},
		{
			name:  "arrival before departure",
			query: FlightQuery{Origin: syd, Destination: mel, ScheduledDeparture: arr, ScheduledArrival: dep},
			want:  ErrInvalidOrdering,
		},
		{
			name:  "lowercase code with digit",
			query: FlightQuery{Origin: Airport{IATA: "sy1"}, Destination: mel, ScheduledDeparture: dep, ScheduledArrival: arr},
			want:  ErrInvalidAirportCode,
		},
		{
			name:  "invalid destination code",
			query: FlightQuery{Origin: syd, Destination: Airport{IATA: "ME"}, ScheduledDeparture: dep, ScheduledArrival: arr},
			want:  ErrInvalidAirportCode,
		},
		{
			name: "actual departure after scheduled arrival",
			query: func() FlightQuery {
				actual := arr.Add(time.Minute)
				return FlightQuery{Origin: syd, Destination: mel, ScheduledDeparture: dep, ScheduledArrival: arr, ActualDeparture: &actual}
			}(),
			want: ErrInvalidOrdering,
		},
		{
			name:  "latitude out of range",
			query: FlightQuery{Origin: Airport{IATA: "SYD", Latitude: -91}, Destination: mel, ScheduledDeparture: dep, ScheduledArrival: arr},
			want:  ErrInvalidCoordinates,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.query)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidationError(err))

			_, err = Derive(tc.query)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_CodesOnlyQuery(t *testing.T) {
	err := Validate(FlightQuery{
		Origin:             Airport{IATA: "SYD"},
		Destination:        Airport{IATA: "MEL"},
		ScheduledDeparture: at("2024-03-15T09:05"),
		ScheduledArrival:   at("2024-03-15T10:40"),
	})
	assert.NoError(t, err)
}

func TestDerive(t *testing.T) {
	actual := at("2024-03-15T09:20")
	q := FlightQuery{
		Origin:             syd,
		Destination:        mel,
		ScheduledDeparture: at("2024-03-15T09:05"),
		ScheduledArrival:   at("2024-03-15T10:40"),
		ActualDeparture:    &actual,
	}

	got, err := Derive(q)
	require.NoError(t, err)

	distance := AirportDistance(syd, mel)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, 15, got.Day)
	assert.Equal(t, 6, got.DayOfWeek)
	assert.Equal(t, 905, got.ScheduledDepartureHHMM)
	assert.Equal(t, 1040, got.ScheduledArrivalHHMM)
	assert.Equal(t, 15, got.DepartureDelayMinutes)
	assert.InDelta(t, distance, got.DistanceKm, 1e-9)
	assert.InDelta(t, 700, got.DistanceKm, 20)
	assert.InDelta(t, distance/DefaultCruiseSpeedKmh*60, got.AirTimeMinutes, 1e-9)
}

func TestDerive_WithoutActualDepartureHasZeroDelay(t *testing.T) {
	got, err := Derive(FlightQuery{
		Origin:             syd,
		Destination:        lax,
		ScheduledDeparture: at("2024-03-15T21:30"),
		ScheduledArrival:   at("2024-03-16T17:45"),
	})
	require.NoError(t, err)
	assert.Zero(t, got.DepartureDelayMinutes)
	assert.Equal(t, 2130, got.ScheduledDepartureHHMM)
	assert.Equal(t, 1745, got.ScheduledArrivalHHMM)
}

func TestDerive_WithCruiseSpeed(t *testing.T) {
	q := FlightQuery{
		Origin:             syd,
		Destination:        mel,
		ScheduledDeparture: at("2024-03-15T09:05"),
		ScheduledArrival:   at("2024-03-15T10:40"),
	}

	fast, err := Derive(q, WithCruiseSpeed(965))
	require.NoError(t, err)
	ignored, err := Derive(q, WithCruiseSpeed(-1))
	require.NoError(t, err)

	assert.InDelta(t, fast.DistanceKm/965*60, fast.AirTimeMinutes, 1e-9)
	assert.InDelta(t, ignored.DistanceKm/DefaultCruiseSpeedKmh*60, ignored.AirTimeMinutes, 1e-9)
}

func TestDerive_Idempotent(t *testing.T) {
	actual := at("2024-03-15T08:59")
	q := FlightQuery{
		Origin:             mel,
		Destination:        syd,
		ScheduledDeparture: at("2024-03-15T09:05"),
		ScheduledArrival:   at("2024-03-15T10:40"),
		ActualDeparture:    &actual,
	}

	first, err := Derive(q)
	require.NoError(t, err)
	second, err := Derive(q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, -6, first.DepartureDelayMinutes)
}
