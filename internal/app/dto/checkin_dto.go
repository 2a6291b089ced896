package dto

import (
	"net/http"
	"strings"
	"time"
)

// CheckInStep is a state of the check-in wizard.
type CheckInStep string

const (
	CheckInRetrieveBooking CheckInStep = "retrieve_booking"
	CheckInSelectSeats     CheckInStep = "select_seats"
	CheckInAddOns          CheckInStep = "add_ons"
	CheckInCompleted       CheckInStep = "completed"
)

func (s CheckInStep) Number() int {
	switch s {
	case CheckInRetrieveBooking:
		return 1
	case CheckInSelectSeats:
		return 2
	case CheckInAddOns:
		return 3
	case CheckInCompleted:
		return 4
	}
	return 0
}

type SeatKind string

const (
	SeatStandard SeatKind = "standard"
	SeatExit     SeatKind = "exit"
	SeatAisle    SeatKind = "aisle"
)

type SeatMapEntry struct {
	SeatID    string   `json:"seat_id,omitempty"`
	Row       int      `json:"row"`
	Column    string   `json:"column,omitempty"`
	Kind      SeatKind `json:"kind"`
	Occupied  bool     `json:"occupied"`
	Surcharge int      `json:"surcharge"`
}

// IsSeat reports whether the cell can be sat in, aisle spacers cannot.
func (e SeatMapEntry) IsSeat() bool {
	return e.Kind != SeatAisle
}

type SeatRow struct {
	Number int            `json:"number"`
	Cells  []SeatMapEntry `json:"cells"`
}

type SeatMap struct {
	Rows []SeatRow `json:"rows"`
}

type CheckInFlight struct {
	Number             string `json:"number"`
	Date               string `json:"date"`
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	OriginAirport      string `json:"origin_airport"`
	DestinationAirport string `json:"destination_airport"`
	DepartureTime      string `json:"departure_time"`
	ArrivalTime        string `json:"arrival_time"`
	IsNextDay          bool   `json:"is_next_day"`
	Aircraft           string `json:"aircraft"`
	Terminal           string `json:"terminal"`
	Gate               string `json:"gate"`
	Duration           string `json:"duration"`
	DepartureTimestamp int64  `json:"departure_timestamp"`
}

type CheckInPassenger struct {
	ID             int    `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Gender         string `json:"gender"`
	DateOfBirth    string `json:"date_of_birth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
	TicketNumber   string `json:"ticket_number"`
	Class          string `json:"class"`
	Seat           string `json:"seat,omitempty"`
	CheckedIn      bool   `json:"checked_in"`
}

func (p CheckInPassenger) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type RetrievedBooking struct {
	PNR        string             `json:"pnr"`
	LastName   string             `json:"last_name"`
	Status     string             `json:"status"`
	Flight     CheckInFlight      `json:"flight"`
	Passengers []CheckInPassenger `json:"passengers"`
}

type AddOns struct {
	ExtraBaggageKg int    `json:"extra_baggage_kg"`
	Meal           string `json:"meal,omitempty"`
	Insurance      string `json:"insurance,omitempty"`
}

type BoardingPass struct {
	PassengerID    int    `json:"passenger_id"`
	PassengerName  string `json:"passenger_name"`
	PNR            string `json:"pnr"`
	FlightNumber   string `json:"flight_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	DepartureTime  string `json:"departure_time"`
	BoardingTime   string `json:"boarding_time"`
	Seat           string `json:"seat"`
	Gate           string `json:"gate"`
	Terminal       string `json:"terminal"`
	Class          string `json:"class"`
	Group          string `json:"group"`
	SequenceNumber string `json:"sequence_number"`
}

type CheckInSession struct {
	ID              string           `json:"id"`
	Step            CheckInStep      `json:"step"`
	Booking         RetrievedBooking `json:"booking"`
	SeatMap         SeatMap          `json:"seat_map"`
	SeatAssignments map[int]string   `json:"seat_assignments"`
	AddOns          map[int]AddOns   `json:"add_ons"`
	BoardingPasses  []BoardingPass   `json:"boarding_passes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CheckInResponse struct {
	Session    CheckInSession `json:"session"`
	StepNumber int            `json:"step_number"`
	AddOnTotal int            `json:"add_on_total"`
}

type RetrieveBookingRequest struct {
	BookingReference string `json:"booking_reference" validate:"required,len=6,alphanum"`
	LastName         string `json:"last_name" validate:"required"`
}

func (r *RetrieveBookingRequest) Bind(_ *http.Request) error {
	r.BookingReference = strings.ToUpper(strings.TrimSpace(r.BookingReference))
	r.LastName = strings.TrimSpace(r.LastName)

	return validateRequest(r)
}

type AssignSeatRequest struct {
	SessionRef
	PassengerID int    `json:"passenger_id" validate:"required,min=1"`
	SeatID      string `json:"seat_id" validate:"required"`
}

func (a *AssignSeatRequest) Bind(_ *http.Request) error {
	a.SeatID = strings.ToUpper(strings.TrimSpace(a.SeatID))

	return validateRequest(a)
}

type AddOnsRequest struct {
	SessionRef
	PassengerID    int    `json:"passenger_id" validate:"required,min=1"`
	ExtraBaggageKg int    `json:"extra_baggage_kg" validate:"omitempty,oneof=5 10 15 20 25 30"`
	Meal           string `json:"meal,omitempty"`
	Insurance      string `json:"insurance,omitempty" validate:"omitempty,oneof=basic premium comprehensive"`
}

func (a *AddOnsRequest) Bind(_ *http.Request) error {
	return validateRequest(a)
}

type BoardingPassRequest struct {
	SessionRef
	PassengerID int `json:"-" validate:"required,min=1"`
}

func (b *BoardingPassRequest) Bind(_ *http.Request) error {
	return validateRequest(b)
}
