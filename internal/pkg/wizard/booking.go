package wizard

import (
	"math"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/utils"
)

// TaxRate is charged on top of the fare total.
const TaxRate = 0.12

// BookingReferenceLength is the size of the confirmation code.
const BookingReferenceLength = 6

type bookingEvent string

const (
	eventFlightsSelected     bookingEvent = "flights_selected"
	eventPassengersSubmitted bookingEvent = "passengers_submitted"
	eventPaymentConfirmed    bookingEvent = "payment_confirmed"
)

var bookingTransitions = map[dto.BookingStep]map[bookingEvent]dto.BookingStep{
	dto.BookingSelectFlights: {
		eventFlightsSelected: dto.BookingPassengerDetails,
	},
	dto.BookingPassengerDetails: {
		eventPassengersSubmitted: dto.BookingPayment,
	},
	dto.BookingPayment: {
		eventPaymentConfirmed: dto.BookingConfirmed,
	},
}

func fireBooking(s *dto.BookingSession, event bookingEvent) error {
	next, ok := bookingTransitions[s.Step][event]
	if !ok {
		return ErrInvalidTransition.WithMessage("%s is not allowed at step %s", event, s.Step)
	}

	s.Step = next
	return nil
}

// NewBookingSession starts a booking on the select_flights step with one blank
// passenger per searched traveller.
func NewBookingSession(id string, criteria dto.SearchCriteria, outbound, ret []dto.FlightOffer,
	now time.Time) dto.BookingSession {
	passengers := make([]dto.Passenger, criteria.Passengers)
	for i := range passengers {
		passengers[i] = dto.NewPassenger()
	}

	return dto.BookingSession{
		ID:             id,
		Step:           dto.BookingSelectFlights,
		Search:         criteria,
		OutboundOffers: outbound,
		ReturnOffers:   ret,
		FareTier:       dto.FareStandard,
		Passengers:     passengers,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SelectFlight picks the flight of one direction. The session moves on to
// passenger details once every required direction has a flight.
// The input session is never modified, failures return it unchanged.
func SelectFlight(s dto.BookingSession, direction dto.Direction, flightID string,
	now time.Time) (dto.BookingSession, error) {
	if s.Step != dto.BookingSelectFlights {
		return s, ErrInvalidTransition.WithMessage("flights cannot be selected at step %s", s.Step)
	}

	offers := s.OutboundOffers
	switch direction {
	case dto.DirectionOutbound:
	case dto.DirectionReturn:
		if !s.Search.RoundTrip() {
			return s, ErrReturnNotRequested
		}
		offers = s.ReturnOffers
	default:
		return s, ErrFlightNotFound.WithMessage("unknown direction %s", direction)
	}

	offer, ok := findOffer(offers, flightID)
	if !ok {
		return s, ErrFlightNotFound.WithMessage("flight %s is not in the %s results", flightID, direction)
	}

	next := s
	if direction == dto.DirectionOutbound {
		next.Outbound = &offer
	} else {
		next.Return = &offer
	}

	if next.Outbound != nil && (!next.Search.RoundTrip() || next.Return != nil) {
		if err := fireBooking(&next, eventFlightsSelected); err != nil {
			return s, err
		}
	}

	next.UpdatedAt = now
	return next, nil
}

// SelectFareTier is allowed while flights or passengers are being chosen.
func SelectFareTier(s dto.BookingSession, tier dto.FareTier, now time.Time) (dto.BookingSession, error) {
	if s.Step != dto.BookingSelectFlights && s.Step != dto.BookingPassengerDetails {
		return s, ErrInvalidTransition.WithMessage("fare tier cannot change at step %s", s.Step)
	}

	if !tier.Valid() {
		return s, ErrInvalidFareTier.WithMessage("unknown fare tier %s", tier)
	}

	next := s
	next.FareTier = tier
	next.UpdatedAt = now
	return next, nil
}

// SubmitPassengers replaces the passenger list and moves on to payment.
func SubmitPassengers(s dto.BookingSession, passengers []dto.Passenger, now time.Time) (dto.BookingSession, error) {
	if s.Step != dto.BookingPassengerDetails {
		return s, ErrInvalidTransition.WithMessage("passengers cannot be submitted at step %s", s.Step)
	}

	if len(passengers) != s.Search.Passengers {
		return s, ErrPassengerCountMismatch.WithMessage("expected %d passengers, got %d",
			s.Search.Passengers, len(passengers))
	}

	for i, p := range passengers {
		if field := MissingPassengerField(p); field != "" {
			return s, ErrIncompletePassengerDetails.WithMessage("passenger %d: %s is required", i+1, field)
		}
	}

	next := s
	next.Passengers = append([]dto.Passenger(nil), passengers...)
	if err := fireBooking(&next, eventPassengersSubmitted); err != nil {
		return s, err
	}

	next.UpdatedAt = now
	return next, nil
}

// MissingPassengerField returns the json name of the first empty required
// field, empty when the passenger is complete.
func MissingPassengerField(p dto.Passenger) string {
	fields := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"first_name", p.FirstName},
		{"last_name", p.LastName},
		{"date_of_birth", p.DateOfBirth},
		{"nationality", p.Nationality},
		{"passport_number", p.PassportNumber},
		{"passport_expiry", p.PassportExpiry},
		{"email", p.Email},
		{"phone", p.Phone},
	}

	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}

	return ""
}

// ConfirmPayment records the booking reference once payment went through.
func ConfirmPayment(s dto.BookingSession, reference string, now time.Time) (dto.BookingSession, error) {
	if len(reference) != BookingReferenceLength {
		return s, ErrInvalidBookingReference.WithMessage("booking reference %q must have %d characters", reference, BookingReferenceLength)
	}

	next := s
	if err := fireBooking(&next, eventPaymentConfirmed); err != nil {
		return s, err
	}

	next.BookingReference = reference
	next.UpdatedAt = now
	return next, nil
}

// Confirmation builds the receipt of a confirmed booking.
func Confirmation(s dto.BookingSession, now time.Time) (dto.BookingConfirmation, error) {
	if s.Step != dto.BookingConfirmed || s.Outbound == nil {
		return dto.BookingConfirmation{}, ErrInvalidTransition.WithMessage("booking %s is not confirmed", s.ID)
	}

	return dto.BookingConfirmation{
		BookingReference: s.BookingReference,
		Outbound:         *s.Outbound,
		Return:           s.Return,
		Passengers:       s.Passengers,
		FareTier:         s.FareTier,
		Price:            Price(s),
		ConfirmedAt:      now,
	}, nil
}

// Price derives the fare summary, (outbound + return) per passenger times the
// passenger count, with taxes shown separately.
func Price(s dto.BookingSession) dto.PriceSummary {
	summary := dto.PriceSummary{
		FareTier:       s.FareTier,
		PassengerCount: s.Search.Passengers,
	}

	if s.Outbound != nil {
		summary.OutboundFare, _ = s.Outbound.Prices.For(s.FareTier)
	}
	if s.Return != nil {
		summary.ReturnFare, _ = s.Return.Prices.For(s.FareTier)
	}

	summary.Total = (summary.OutboundFare + summary.ReturnFare) * summary.PassengerCount
	summary.Taxes = int(math.Round(float64(summary.Total) * TaxRate))
	summary.GrandTotal = summary.Total + summary.Taxes
	summary.Formatted = utils.FormatUSD(int64(summary.GrandTotal))

	return summary
}

func findOffer(offers []dto.FlightOffer, id string) (dto.FlightOffer, bool) {
	for _, offer := range offers {
		if offer.ID == id {
			return offer, true
		}
	}
	return dto.FlightOffer{}, false
}
