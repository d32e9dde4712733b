// Package cli implements the offline feature derivation tool. It runs the
// same deriver as the prediction service without any network access.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/flightforesight/flightforesight/pkg/flightfeatures"
)

const usage = `usage: flightfeatures <delay|fare> [flags]

delay  derive delay model features from two airports and scheduled times
fare   derive fare model features from an itinerary
`

var errUsage = errors.New("usage")

type airportFlags struct {
	iata string
	city string
	lat  float64
	lon  float64
}

func (a *airportFlags) register(fs *flag.FlagSet, prefix, label string) {
	fs.StringVar(&a.iata, prefix, "", label+" IATA code")
	fs.StringVar(&a.city, prefix+"-city", "", label+" city")
	fs.Float64Var(&a.lat, prefix+"-lat", 0, label+" latitude in decimal degrees")
	fs.Float64Var(&a.lon, prefix+"-lon", 0, label+" longitude in decimal degrees")
}

func (a *airportFlags) airport() flightfeatures.Airport {
	return flightfeatures.Airport{
		IATA:      flightfeatures.NormalizeIATACode(a.iata),
		City:      strings.TrimSpace(a.city),
		Latitude:  a.lat,
		Longitude: a.lon,
	}
}

// Run executes the tool and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "delay":
		err = runDelay(args[1:], stdout, stderr)
	case "fare":
		err = runFare(args[1:], stdout, stderr, now)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		color.New(color.FgRed, color.Bold).Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func runDelay(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("delay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var origin, destination airportFlags
	origin.register(fs, "origin", "origin")
	destination.register(fs, "dest", "destination")
	departure := fs.String("departure", "", "scheduled departure, RFC 3339 or 2006-01-02T15:04")
	arrival := fs.String("arrival", "", "scheduled arrival")
	actual := fs.String("actual", "", "actual departure, optional")
	tz := fs.String("tz", "UTC", "time zone for timestamps without an offset")
	cruise := fs.Float64("cruise-speed", flightfeatures.DefaultCruiseSpeedKmh, "cruise speed in km/h")
	asJSON := fs.Bool("json", false, "print JSON instead of text")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return fmt.Errorf("load time zone %q: %w", *tz, err)
	}

	q := flightfeatures.FlightQuery{
		Origin:      origin.airport(),
		Destination: destination.airport(),
	}
	if q.ScheduledDeparture, err = flightfeatures.ParseTimestamp(*departure, loc); err != nil {
		return fmt.Errorf("departure: %w", err)
	}
	if q.ScheduledArrival, err = flightfeatures.ParseTimestamp(*arrival, loc); err != nil {
		return fmt.Errorf("arrival: %w", err)
	}
	if strings.TrimSpace(*actual) != "" {
		t, err := flightfeatures.ParseTimestamp(*actual, loc)
		if err != nil {
			return fmt.Errorf("actual departure: %w", err)
		}
		q.ActualDeparture = &t
	}

	features, err := flightfeatures.Derive(q, flightfeatures.WithCruiseSpeed(*cruise))
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(stdout, features)
	}

	p := newPrinter(stdout)
	p.title(fmt.Sprintf("%s -> %s", q.Origin.IATA, q.Destination.IATA))
	p.field("month", features.Month)
	p.field("day", features.Day)
	p.field("day of week", features.DayOfWeek)
	p.field("scheduled departure", features.ScheduledDepartureHHMM)
	p.field("scheduled arrival", features.ScheduledArrivalHHMM)
	p.field("departure delay (min)", features.DepartureDelayMinutes)
	p.field("distance (km)", fmt.Sprintf("%.2f", features.DistanceKm))
	p.field("air time (min)", fmt.Sprintf("%.2f", features.AirTimeMinutes))
	return nil
}

func runFare(args []string, stdout, stderr io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("fare", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var origin, destination airportFlags
	origin.register(fs, "origin", "origin")
	destination.register(fs, "dest", "destination")
	airline := fs.String("airline", "", "airline name")
	departure := fs.String("departure", "", "departure, RFC 3339 or 2006-01-02T15:04")
	arrival := fs.String("arrival", "", "arrival")
	stops := fs.Int("stops", 0, "number of stops")
	class := fs.String("class", "economy", "cabin class: economy or business")
	tz := fs.String("tz", "UTC", "time zone for timestamps without an offset")
	asJSON := fs.Bool("json", false, "print JSON instead of text")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return fmt.Errorf("load time zone %q: %w", *tz, err)
	}

	q := flightfeatures.FareQuery{
		Airline:     flightfeatures.Airline{Name: strings.TrimSpace(*airline)},
		Origin:      origin.airport(),
		Destination: destination.airport(),
		Stops:       *stops,
		Class:       flightfeatures.CabinClass(*class),
	}
	if q.Departure, err = flightfeatures.ParseTimestamp(*departure, loc); err != nil {
		return fmt.Errorf("departure: %w", err)
	}
	if q.Arrival, err = flightfeatures.ParseTimestamp(*arrival, loc); err != nil {
		return fmt.Errorf("arrival: %w", err)
	}

	features, err := flightfeatures.DeriveFare(q, now())
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(stdout, features)
	}

	p := newPrinter(stdout)
	p.title(fmt.Sprintf("%s: %s -> %s", features.Airline, features.SourceCity, features.DestinationCity))
	p.field("departure time", features.DepartureBucket)
	p.field("arrival time", features.ArrivalBucket)
	p.field("stops", features.Stops)
	p.field("class", features.Class)
	p.field("duration (h)", fmt.Sprintf("%.2f", features.DurationHours))
	p.field("days left", features.DaysLeft)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type printer struct {
	w     io.Writer
	head  *color.Color
	label *color.Color
	value *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		head:  color.New(color.FgCyan, color.Bold),
		label: color.New(color.FgHiBlack),
		value: color.New(color.FgGreen),
	}
}

func (p *printer) title(s string) {
	p.head.Fprintln(p.w, s)
}

func (p *printer) field(name string, v any) {
	p.label.Fprintf(p.w, "  %-22s", name)
	p.value.Fprintf(p.w, "%v\n", v)
}
