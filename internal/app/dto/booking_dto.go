package dto

import (
	"fmt"
	"net/http"
	"time"
)

// BookingStep is a state of the booking wizard.
type BookingStep string

const (
	BookingSelectFlights    BookingStep = "select_flights"
	BookingPassengerDetails BookingStep = "passenger_details"
	BookingPayment          BookingStep = "payment"
	BookingConfirmed        BookingStep = "confirmed"
)

// Number is the 1-based position shown in the step indicator, 0 once confirmed.
func (s BookingStep) Number() int {
	switch s {
	case BookingSelectFlights:
		return 1
	case BookingPassengerDetails:
		return 2
	case BookingPayment:
		return 3
	}
	return 0
}

type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionReturn   Direction = "return"
)

type Passenger struct {
	Type            string `json:"type" validate:"omitempty,oneof=adult child infant"`
	Title           string `json:"title"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Nationality     string `json:"nationality"`
	PassportNumber  string `json:"passport_number"`
	PassportExpiry  string `json:"passport_expiry" validate:"omitempty,datetime=2006-01-02"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// NewPassenger returns the blank adult record a passenger form starts from.
func NewPassenger() Passenger {
	return Passenger{Type: "adult", Title: "Mr"}
}

type BookingSession struct {
	ID               string         `json:"id"`
	Step             BookingStep    `json:"step"`
	Search           SearchCriteria `json:"search"`
	OutboundOffers   []FlightOffer  `json:"outbound_offers"`
	ReturnOffers     []FlightOffer  `json:"return_offers,omitempty"`
	Outbound         *FlightOffer   `json:"outbound,omitempty"`
	Return           *FlightOffer   `json:"return,omitempty"`
	FareTier         FareTier       `json:"fare_tier"`
	Passengers       []Passenger    `json:"passengers"`
	BookingReference string         `json:"booking_reference,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// PriceSummary is derived from a session at read time and never stored.
type PriceSummary struct {
	FareTier       FareTier `json:"fare_tier"`
	PassengerCount int      `json:"passenger_count"`
	OutboundFare   int      `json:"outbound_fare"`
	ReturnFare     int      `json:"return_fare"`
	Total          int      `json:"total"`
	Taxes          int      `json:"taxes"`
	GrandTotal     int      `json:"grand_total"`
	Formatted      string   `json:"formatted"`
}

type BookingResponse struct {
	Session    BookingSession `json:"session"`
	StepNumber int            `json:"step_number"`
	Price      PriceSummary   `json:"price"`
	FareTiers  []FareTierInfo `json:"fare_tiers"`
}

// BookingConfirmation is the receipt handed back once payment succeeds.
type BookingConfirmation struct {
	BookingReference string       `json:"booking_reference"`
	Outbound         FlightOffer  `json:"outbound"`
	Return           *FlightOffer `json:"return,omitempty"`
	Passengers       []Passenger  `json:"passengers"`
	FareTier         FareTier     `json:"fare_tier"`
	Price            PriceSummary `json:"price"`
	ConfirmedAt      time.Time    `json:"confirmed_at"`
}

type SelectFlightRequest struct {
	SessionRef
	Direction Direction `json:"direction" validate:"required,oneof=outbound return"`
	FlightID  string    `json:"flight_id" validate:"required"`
}

func (s *SelectFlightRequest) Bind(r *http.Request) error {
	return validateRequest(s)
}

type SelectFareRequest struct {
	SessionRef
	FareTier FareTier `json:"fare_tier" validate:"required,oneof=basic standard flex"`
}

func (s *SelectFareRequest) Bind(r *http.Request) error {
	return validateRequest(s)
}

type SubmitPassengersRequest struct {
	SessionRef
	Passengers []Passenger `json:"passengers" validate:"required,min=1,max=9,dive"`
}

func (s *SubmitPassengersRequest) Bind(r *http.Request) error {
	return validateRequest(s)
}

type PaymentRequest struct {
	SessionRef
	CardHolder string `json:"card_holder" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,credit_card"`
	Expiry     string `json:"expiry" validate:"required,datetime=01/06"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

func (p *PaymentRequest) Bind(r *http.Request) error {
	if err := validateRequest(p); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}
