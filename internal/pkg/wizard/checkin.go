package wizard

import (
	"fmt"
	"maps"
	"strconv"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/seatmap"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/utils"
)

// add-on prices in USD
const (
	BaggagePricePerKg = 12
	SpecialMealPrice  = 12

	BoardingLeadMinutes = 30
)

var BaggageOptionsKg = []int{0, 5, 10, 15, 20, 25, 30}

// MealPrices lists the special meals, the standard meal needs no entry.
var MealPrices = map[string]int{
	"Vegetarian":  0,
	"Vegan":       SpecialMealPrice,
	"Halal":       SpecialMealPrice,
	"Diabetic":    SpecialMealPrice,
	"Gluten-free": SpecialMealPrice,
	"Kosher":      SpecialMealPrice,
}

var InsurancePrices = map[string]int{
	"basic":         25,
	"premium":       45,
	"comprehensive": 65,
}

type checkInEvent string

const (
	eventBookingLoaded checkInEvent = "booking_loaded"
	eventSeatsSelected checkInEvent = "seats_selected"
	eventCheckInDone   checkInEvent = "check_in_completed"
)

var checkInTransitions = map[dto.CheckInStep]map[checkInEvent]dto.CheckInStep{
	dto.CheckInRetrieveBooking: {
		eventBookingLoaded: dto.CheckInSelectSeats,
	},
	dto.CheckInSelectSeats: {
		eventSeatsSelected: dto.CheckInAddOns,
	},
	dto.CheckInAddOns: {
		eventCheckInDone: dto.CheckInCompleted,
	},
}

func fireCheckIn(s *dto.CheckInSession, event checkInEvent) error {
	next, ok := checkInTransitions[s.Step][event]
	if !ok {
		return ErrInvalidTransition.WithMessage("%s is not allowed at step %s", event, s.Step)
	}

	s.Step = next
	return nil
}

// AirportNamer resolves an airport code to its display name.
type AirportNamer interface {
	AirportName(code string) string
}

func NewCheckInSession(id string, now time.Time) dto.CheckInSession {
	return dto.CheckInSession{
		ID:              id,
		Step:            dto.CheckInRetrieveBooking,
		SeatAssignments: map[int]string{},
		AddOns:          map[int]dto.AddOns{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// GenerateBooking fabricates the booking found under reference. Any reference
// and last name resolve, to a two passenger economy trip DAC to LHR two days
// from now.
func GenerateBooking(src random.Source, airports AirportNamer, reference, lastName string,
	now time.Time) dto.RetrievedBooking {
	date := now.UTC().Truncate(24*time.Hour).AddDate(0, 0, 2)

	departure := random.Between(src, 6, 21)*60 + src.IntN(12)*5
	duration := random.Between(src, 1, 12)*60 + src.IntN(12)*5
	arrival := departure + duration

	origin, destination := "DAC", "LHR"

	return dto.RetrievedBooking{
		PNR:      reference,
		LastName: lastName,
		Status:   "confirmed",
		Flight: dto.CheckInFlight{
			Number:             flight.FlightNumber(src),
			Date:               date.Format(flight.DateLayout),
			Origin:             origin,
			Destination:        destination,
			OriginAirport:      airports.AirportName(origin),
			DestinationAirport: airports.AirportName(destination),
			DepartureTime:      utils.FormatClock(departure),
			ArrivalTime:        utils.FormatClock(arrival),
			IsNextDay:          arrival >= 24*60,
			Aircraft:           random.Pick(src, flight.AircraftTypes),
			Terminal:           "1",
			Gate:               "G" + strconv.Itoa(random.Between(src, 1, 30)),
			Duration:           utils.ConvertMinutesToDuration(int64(duration)),
			DepartureTimestamp: date.Add(time.Duration(departure) * time.Minute).Unix(),
		},
		Passengers: []dto.CheckInPassenger{
			{
				ID:             1,
				FirstName:      "John",
				LastName:       lastName,
				Gender:         "Male",
				DateOfBirth:    "1985-05-15",
				Nationality:    "Bangladesh",
				PassportNumber: "AB1234567",
				TicketNumber:   "123-4567890123",
				Class:          "Economy",
			},
			{
				ID:             2,
				FirstName:      "Sarah",
				LastName:       lastName,
				Gender:         "Female",
				DateOfBirth:    "1988-09-23",
				Nationality:    "Bangladesh",
				PassportNumber: "CD9876543",
				TicketNumber:   "123-4567890124",
				Class:          "Economy",
			},
		},
	}
}

// LoadBooking attaches the retrieved booking and its seat map and moves on to
// seat selection.
func LoadBooking(s dto.CheckInSession, booking dto.RetrievedBooking, seats dto.SeatMap,
	now time.Time) (dto.CheckInSession, error) {
	next := s
	if err := fireCheckIn(&next, eventBookingLoaded); err != nil {
		return s, err
	}

	next.Booking = booking
	next.SeatMap = seats
	next.SeatAssignments = map[int]string{}
	next.AddOns = map[int]dto.AddOns{}
	next.UpdatedAt = now
	return next, nil
}

// AssignSeat gives a passenger a seat, freeing the one they held before.
// A seat held by another passenger is rejected before anything is assigned.
func AssignSeat(s dto.CheckInSession, passengerID int, seatID string, now time.Time) (dto.CheckInSession, error) {
	if s.Step != dto.CheckInSelectSeats {
		return s, ErrInvalidTransition.WithMessage("seats cannot be assigned at step %s", s.Step)
	}

	if _, ok := findPassenger(s.Booking.Passengers, passengerID); !ok {
		return s, ErrPassengerNotFound.WithMessage("passenger %d not found", passengerID)
	}

	seat, ok := seatmap.Find(s.SeatMap, seatID)
	if !ok {
		return s, ErrSeatNotFound.WithMessage("seat %s does not exist", seatID)
	}

	if seat.Occupied {
		return s, ErrSeatOccupied.WithMessage("seat %s is occupied", seatID)
	}

	taken := make(map[string]int, len(s.SeatAssignments))
	for pid, sid := range s.SeatAssignments {
		taken[sid] = pid
	}

	if holder, held := taken[seatID]; held && holder != passengerID {
		return s, ErrSeatAlreadyTaken.WithMessage("seat %s is held by passenger %d", seatID, holder)
	}

	next := s
	next.SeatAssignments = cloneMap(s.SeatAssignments)
	next.SeatAssignments[passengerID] = seatID
	next.UpdatedAt = now
	return next, nil
}

// CompleteSeatSelection moves on to add-ons once every passenger has a seat.
func CompleteSeatSelection(s dto.CheckInSession, now time.Time) (dto.CheckInSession, error) {
	if s.Step != dto.CheckInSelectSeats {
		return s, ErrInvalidTransition.WithMessage("seat selection cannot complete at step %s", s.Step)
	}

	if len(s.SeatAssignments) != len(s.Booking.Passengers) {
		return s, ErrSeatSelectionIncomplete.WithMessage("%d of %d passengers have a seat",
			len(s.SeatAssignments), len(s.Booking.Passengers))
	}

	next := s
	if err := fireCheckIn(&next, eventSeatsSelected); err != nil {
		return s, err
	}

	next.UpdatedAt = now
	return next, nil
}

// ValidateAddOns checks the selection against the offered options.
func ValidateAddOns(a dto.AddOns) error {
	validBaggage := false
	for _, kg := range BaggageOptionsKg {
		if a.ExtraBaggageKg == kg {
			validBaggage = true
			break
		}
	}
	if !validBaggage {
		return ErrInvalidAddOn.WithMessage("extra baggage of %dkg is not offered", a.ExtraBaggageKg)
	}

	if _, ok := MealPrices[a.Meal]; a.Meal != "" && !ok {
		return ErrInvalidAddOn.WithMessage("meal %s is not offered", a.Meal)
	}

	if _, ok := InsurancePrices[a.Insurance]; a.Insurance != "" && !ok {
		return ErrInvalidAddOn.WithMessage("insurance %s is not offered", a.Insurance)
	}

	return nil
}

// SelectAddOns replaces a passenger's add-ons.
func SelectAddOns(s dto.CheckInSession, passengerID int, addOns dto.AddOns, now time.Time) (dto.CheckInSession, error) {
	if s.Step != dto.CheckInAddOns {
		return s, ErrInvalidTransition.WithMessage("add-ons cannot be selected at step %s", s.Step)
	}

	if _, ok := findPassenger(s.Booking.Passengers, passengerID); !ok {
		return s, ErrPassengerNotFound.WithMessage("passenger %d not found", passengerID)
	}

	if err := ValidateAddOns(addOns); err != nil {
		return s, err
	}

	next := s
	next.AddOns = cloneMap(s.AddOns)
	next.AddOns[passengerID] = addOns
	next.UpdatedAt = now
	return next, nil
}

// AddOnPrice is what one passenger's add-ons cost.
func AddOnPrice(a dto.AddOns) int {
	return a.ExtraBaggageKg*BaggagePricePerKg + MealPrices[a.Meal] + InsurancePrices[a.Insurance]
}

// AddOnTotal sums the add-ons of every passenger.
func AddOnTotal(s dto.CheckInSession) int {
	var total int
	for _, a := range s.AddOns {
		total += AddOnPrice(a)
	}
	return total
}

// Complete checks every passenger in and issues their boarding passes.
func Complete(s dto.CheckInSession, now time.Time) (dto.CheckInSession, error) {
	next := s
	if err := fireCheckIn(&next, eventCheckInDone); err != nil {
		return s, err
	}

	passengers := make([]dto.CheckInPassenger, len(s.Booking.Passengers))
	passes := make([]dto.BoardingPass, 0, len(s.Booking.Passengers))

	for i, p := range s.Booking.Passengers {
		p.Seat = s.SeatAssignments[p.ID]
		p.CheckedIn = true
		passengers[i] = p

		passes = append(passes, issueBoardingPass(s.Booking, p, i+1))
	}

	next.Booking.Passengers = passengers
	next.BoardingPasses = passes
	next.UpdatedAt = now
	return next, nil
}

// BoardingPass returns the pass issued to a passenger.
func BoardingPass(s dto.CheckInSession, passengerID int) (dto.BoardingPass, error) {
	if s.Step != dto.CheckInCompleted {
		return dto.BoardingPass{}, ErrBoardingPassNotFound.WithMessage("check-in %s is not completed", s.ID)
	}

	for _, pass := range s.BoardingPasses {
		if pass.PassengerID == passengerID {
			return pass, nil
		}
	}

	return dto.BoardingPass{}, ErrBoardingPassNotFound.WithMessage("no boarding pass for passenger %d", passengerID)
}

func issueBoardingPass(b dto.RetrievedBooking, p dto.CheckInPassenger, sequence int) dto.BoardingPass {
	return dto.BoardingPass{
		PassengerID:    p.ID,
		PassengerName:  p.FullName(),
		PNR:            b.PNR,
		FlightNumber:   b.Flight.Number,
		Origin:         b.Flight.Origin,
		Destination:    b.Flight.Destination,
		Date:           b.Flight.Date,
		DepartureTime:  b.Flight.DepartureTime,
		BoardingTime:   BoardingTime(b.Flight.DepartureTime),
		Seat:           p.Seat,
		Gate:           b.Flight.Gate,
		Terminal:       b.Flight.Terminal,
		Class:          p.Class,
		Group:          BoardingGroup(p.Seat),
		SequenceNumber: fmt.Sprintf("%03d", sequence),
	}
}

// BoardingTime is 30 minutes before the "15:04" departure, wrapping past midnight.
func BoardingTime(departure string) string {
	parsed, err := time.Parse("15:04", departure)
	if err != nil {
		return ""
	}

	return utils.FormatClock(parsed.Hour()*60 + parsed.Minute() - BoardingLeadMinutes)
}

// BoardingGroup boards the cabin from the back, rows 21-30 first.
func BoardingGroup(seatID string) string {
	row, err := strconv.Atoi(seatRow(seatID))
	if err != nil {
		return ""
	}

	switch {
	case row > 20:
		return "1"
	case row > 10:
		return "2"
	default:
		return "3"
	}
}

func seatRow(seatID string) string {
	for i, c := range seatID {
		if c < '0' || c > '9' {
			return seatID[:i]
		}
	}
	return seatID
}

func findPassenger(passengers []dto.CheckInPassenger, id int) (dto.CheckInPassenger, bool) {
	for _, p := range passengers {
		if p.ID == id {
			return p, true
		}
	}
	return dto.CheckInPassenger{}, false
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}
