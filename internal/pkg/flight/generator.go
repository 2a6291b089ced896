package flight

import (
	"fmt"
	"sort"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/utils"
)

const (
	CarrierPrefix = "BG"
	DateLayout    = "2006-01-02"

	MinFlightsPerDay = 3
	MaxFlightsPerDay = 8

	MinBaseFare = 150
	MaxBaseFare = 800

	MinSeatsAvailable = 5
	MaxSeatsAvailable = 100 // exclusive

	minutesPerDay = 24 * 60
)

var AircraftTypes = []string{"Boeing 787-8", "Boeing 787-9", "Boeing 777-300ER", "Boeing 737-800"}

// departure window of the day, departure hour is sampled in [start, end)
type window struct {
	start int
	end   int
}

var dayWindows = []window{
	{start: 6, end: 11},  // morning
	{start: 12, end: 17}, // afternoon
	{start: 18, end: 23}, // evening
}

// AirportLookup resolves airport codes against the content store.
type AirportLookup interface {
	Airport(code string) (dto.Airport, bool)
}

type Generator struct {
	src      random.Source
	airports AirportLookup
	now      func() time.Time
}

func NewGenerator(src random.Source, airports AirportLookup) *Generator {
	return &Generator{
		src:      src,
		airports: airports,
		now:      time.Now,
	}
}

// FlightNumber returns a carrier flight number. Numbers are not unique, two
// flights of the same listing may share one.
func FlightNumber(src random.Source) string {
	return fmt.Sprintf("%s%d", CarrierPrefix, 100+src.IntN(900))
}

// ParseDate parses a calendar date as midnight UTC.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.UTC)
}

// Search generates the outbound listing and, for round trips, the return listing
// flying the reverse route.
func (g *Generator) Search(criteria dto.SearchCriteria) ([]dto.FlightOffer, []dto.FlightOffer, error) {
	departure, ret, err := g.ValidateSearch(criteria)
	if err != nil {
		return nil, nil, err
	}

	outbound, err := g.Generate(criteria.Origin, criteria.Destination, departure)
	if err != nil {
		return nil, nil, fmt.Errorf("outbound: %w", err)
	}

	if !criteria.RoundTrip() {
		return outbound, nil, nil
	}

	inbound, err := g.Generate(criteria.Destination, criteria.Origin, ret)
	if err != nil {
		return nil, nil, fmt.Errorf("return: %w", err)
	}

	return outbound, inbound, nil
}

// ValidateSearch rejects missing or contradictory search parameters and returns
// the parsed departure and return dates.
func (g *Generator) ValidateSearch(criteria dto.SearchCriteria) (time.Time, time.Time, error) {
	if criteria.Origin == "" || criteria.Destination == "" {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("origin and destination are required")
	}

	if criteria.Origin == criteria.Destination {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("origin and destination must differ")
	}

	for _, code := range []string{criteria.Origin, criteria.Destination} {
		if _, ok := g.airports.Airport(code); !ok {
			return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("unknown airport %s", code)
		}
	}

	departure, err := ParseDate(criteria.DepartureDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("invalid departure date %s", criteria.DepartureDate)
	}

	today := g.now().UTC().Truncate(24 * time.Hour)
	if departure.Before(today) {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("departure date %s is in the past", criteria.DepartureDate)
	}

	if !criteria.RoundTrip() {
		return departure, time.Time{}, nil
	}

	ret, err := ParseDate(criteria.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("invalid return date %s", criteria.ReturnDate)
	}

	if ret.Before(departure) {
		return time.Time{}, time.Time{}, ErrInvalidSearchParameters.WithMessage("return date must not be before departure date")
	}

	return departure, ret, nil
}

// Generate returns 3 to 8 flights for the day sorted by departure time, with at
// least one flight in each of the morning, afternoon and evening windows.
func (g *Generator) Generate(origin, destination string, date time.Time) ([]dto.FlightOffer, error) {
	count := random.Between(g.src, MinFlightsPerDay, MaxFlightsPerDay)

	windows := make([]window, 0, count)
	windows = append(windows, dayWindows...)
	for len(windows) < count {
		windows = append(windows, random.Pick(g.src, dayWindows))
	}

	flights := make([]dto.FlightOffer, 0, count)
	for _, w := range windows {
		flights = append(flights, g.generateOffer(origin, destination, date, w))
	}

	if len(flights) == 0 {
		return nil, ErrNoAvailabilityFound
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].DepartureTimestamp < flights[j].DepartureTimestamp
	})

	return flights, nil
}

func (g *Generator) generateOffer(origin, destination string, date time.Time, w window) dto.FlightOffer {
	hour := w.start + g.src.IntN(w.end-w.start)
	minute := g.src.IntN(12) * 5

	// 1h to 7h55m
	durationMinutes := (1+g.src.IntN(7))*60 + g.src.IntN(12)*5

	departMinutes := hour*60 + minute
	arrivalMinutes := departMinutes + durationMinutes

	departure := date.Add(time.Duration(departMinutes) * time.Minute)
	arrival := departure.Add(time.Duration(durationMinutes) * time.Minute)

	base := random.Between(g.src, MinBaseFare, MaxBaseFare)

	return dto.FlightOffer{
		ID:                 FlightNumber(g.src),
		Origin:             origin,
		Destination:        destination,
		Date:               date.Format(DateLayout),
		DepartTime:         utils.FormatClock(departMinutes),
		ArrivalTime:        utils.FormatClock(arrivalMinutes),
		IsNextDay:          arrivalMinutes >= minutesPerDay,
		DurationMinutes:    durationMinutes,
		Duration:           utils.ConvertMinutesToDuration(int64(durationMinutes)),
		Aircraft:           random.Pick(g.src, AircraftTypes),
		Prices:             PricesFromBase(base),
		SeatsAvailable:     MinSeatsAvailable + g.src.IntN(MaxSeatsAvailable-MinSeatsAvailable),
		DepartureTimestamp: departure.Unix(),
		ArrivalTimestamp:   arrival.Unix(),
	}
}
