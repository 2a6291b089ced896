package flightstatus

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/utils"
)

// home route reported for lookups by flight number
const (
	HomeOrigin      = "DAC"
	HomeDestination = "LHR"
)

const (
	firstDepartureHour = 6
	lastDepartureHour  = 21

	minDelayMinutes = 15
	maxDelayMinutes = 60

	maxDurationHours = 12
	maxGate          = 30

	FlightPathPoints = 50
)

var (
	departureTerminals = []string{"1", "2", "3"}
	arrivalTerminals   = []string{"A", "B", "C", "D"}
)

// AirportLookup resolves airport codes against the content store.
type AirportLookup interface {
	Airport(code string) (dto.Airport, bool)
	AirportName(code string) string
}

type Generator struct {
	src      random.Source
	airports AirportLookup
}

func NewGenerator(src random.Source, airports AirportLookup) *Generator {
	return &Generator{src: src, airports: airports}
}

// Generate returns a fresh snapshot for the query. Two calls with the same
// query are not expected to agree.
func (g *Generator) Generate(req dto.FlightStatusRequest) (dto.FlightStatusSnapshot, error) {
	date, err := flight.ParseDate(req.Date)
	if err != nil {
		return dto.FlightStatusSnapshot{}, ErrInvalidStatusQuery.WithMessage("invalid date %s", req.Date)
	}

	number, origin, destination := req.FlightNumber, HomeOrigin, HomeDestination
	if req.Mode() == dto.SearchByRoute {
		if req.Origin == "" || req.Destination == "" {
			return dto.FlightStatusSnapshot{}, ErrInvalidStatusQuery.WithMessage("origin and destination are required")
		}
		number, origin, destination = flight.FlightNumber(g.src), req.Origin, req.Destination
	}

	status := random.Pick(g.src, dto.FlightStatuses)

	scheduled := random.Between(g.src, firstDepartureHour, lastDepartureHour)*60 + g.src.IntN(12)*5

	var delay int
	if status == dto.StatusDelayed {
		delay = minDelayMinutes + g.src.IntN((maxDelayMinutes-minDelayMinutes)/5+1)*5
	}
	actual := scheduled + delay

	duration := random.Between(g.src, 1, maxDurationHours)*60 + g.src.IntN(12)*5

	return dto.FlightStatusSnapshot{
		FlightNumber:       number,
		Status:             status,
		Origin:             origin,
		Destination:        destination,
		OriginAirport:      g.airports.AirportName(origin),
		DestinationAirport: g.airports.AirportName(destination),
		Date:               date.Format(flight.DateLayout),
		ScheduledDeparture: utils.FormatClock(scheduled),
		ActualDeparture:    utils.FormatClock(actual),
		ScheduledArrival:   utils.FormatClock(scheduled + duration),
		ActualArrival:      utils.FormatClock(actual + duration),
		IsNextDay:          scheduled+duration >= int(24*time.Hour/time.Minute),
		DelayMinutes:       delay,
		Aircraft:           random.Pick(g.src, flight.AircraftTypes),
		Duration:           utils.ConvertMinutesToDuration(int64(duration)),
		ProgressPercentage: Progress(g.src, status),
		DepartureTerminal:  random.Pick(g.src, departureTerminals),
		DepartureGate:      strconv.Itoa(random.Between(g.src, 1, maxGate)),
		ArrivalTerminal:    random.Pick(g.src, arrivalTerminals),
		ArrivalGate:        strconv.Itoa(random.Between(g.src, 1, maxGate)),
		FlightPath:         g.flightPath(origin, destination),
	}, nil
}

// nil when either airport has no known position
func (g *Generator) flightPath(origin, destination string) []dto.Coordinate {
	from, ok := g.airports.Airport(origin)
	if !ok {
		return nil
	}
	to, ok := g.airports.Airport(destination)
	if !ok {
		return nil
	}
	return FlightPath(from, to, FlightPathPoints)
}

// FlightPath returns points evenly spaced on the straight line between the two
// airports, both ends included.
func FlightPath(from, to dto.Airport, points int) []dto.Coordinate {
	if points < 2 {
		return nil
	}

	path := make([]dto.Coordinate, points)
	for i := range path {
		ratio := float64(i) / float64(points-1)
		path[i] = dto.Coordinate{
			Lat: from.Latitude + (to.Latitude-from.Latitude)*ratio,
			Lng: from.Longitude + (to.Longitude-from.Longitude)*ratio,
		}
	}
	return path
}

// Progress maps a status to how far along the flight is. Only in_air varies,
// within [30, 70).
func Progress(src random.Source, status dto.FlightStatus) int {
	switch status {
	case dto.StatusBoarding:
		return 10
	case dto.StatusInAir:
		return 30 + src.IntN(40)
	case dto.StatusLanded:
		return 90
	case dto.StatusArrived:
		return 100
	default:
		return 0
	}
}

// Describe is the one-line summary logged for a snapshot.
func Describe(s dto.FlightStatusSnapshot) string {
	return fmt.Sprintf("%s %s-%s %s %s", s.FlightNumber, s.Origin, s.Destination, s.Date, s.Status)
}
