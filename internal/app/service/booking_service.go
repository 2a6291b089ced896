package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/wizard"
)

type ListingProvider interface {
	Listing(ctx context.Context, req dto.SearchCriteria) (dto.Listing, dto.Metadata, error)
}

type BookingService struct {
	Search   ListingProvider
	Sessions SessionStore[dto.BookingSession]
	Payment  *simulator.Simulator
	Source   random.Source
	Now      func() time.Time
	NewID    func() string
}

func NewBookingService(search ListingProvider, sessions SessionStore[dto.BookingSession],
	payment *simulator.Simulator, src random.Source) *BookingService {
	return &BookingService{
		Search:   search,
		Sessions: sessions,
		Payment:  payment,
		Source:   src,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}

// CreateBooking starts a booking wizard on the flights of a search.
// CreateBooking godoc
// @Summary      Create booking
// @Tags         Bookings
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      201      {object}  dto.BookingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/bookings [post]
func (s *BookingService) CreateBooking(ctx context.Context, req dto.SearchCriteria) (dto.BookingResponse, error) {
	listing, _, err := s.Search.Listing(ctx, req)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	if len(listing.Outbound) == 0 || (req.RoundTrip() && len(listing.Return) == 0) {
		return dto.BookingResponse{}, ErrNoFlightsFound
	}

	session := wizard.NewBookingSession(s.NewID(), req, listing.Outbound, listing.Return, s.Now())
	if err := s.Sessions.Save(ctx, session.ID, session); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to save booking session: %w", err)
	}

	slog.InfoContext(ctx, "booking started", slog.String("booking_id", session.ID),
		slog.String("origin", req.Origin), slog.String("destination", req.Destination))

	return bookingResponse(session), nil
}

func (s *BookingService) GetBooking(ctx context.Context, req dto.SessionRef) (dto.BookingResponse, error) {
	session, err := s.Sessions.Load(ctx, req.SessionID)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	return bookingResponse(session), nil
}

// CancelBooking drops the session, nothing of it is kept.
func (s *BookingService) CancelBooking(ctx context.Context, req dto.SessionRef) error {
	return remove(ctx, s.Sessions, req.SessionID)
}

func (s *BookingService) SelectFlight(ctx context.Context, req dto.SelectFlightRequest) (dto.BookingResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(b dto.BookingSession) (dto.BookingSession, error) {
		return wizard.SelectFlight(b, req.Direction, req.FlightID, s.Now())
	})
	if err != nil {
		return dto.BookingResponse{}, err
	}

	return bookingResponse(session), nil
}

func (s *BookingService) SelectFare(ctx context.Context, req dto.SelectFareRequest) (dto.BookingResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(b dto.BookingSession) (dto.BookingSession, error) {
		return wizard.SelectFareTier(b, req.FareTier, s.Now())
	})
	if err != nil {
		return dto.BookingResponse{}, err
	}

	return bookingResponse(session), nil
}

func (s *BookingService) SubmitPassengers(ctx context.Context,
	req dto.SubmitPassengersRequest) (dto.BookingResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(b dto.BookingSession) (dto.BookingSession, error) {
		return wizard.SubmitPassengers(b, req.Passengers, s.Now())
	})
	if err != nil {
		return dto.BookingResponse{}, err
	}

	return bookingResponse(session), nil
}

// ConfirmPayment charges the simulated card and issues the booking reference.
// The session ends with the confirmation, a failed or abandoned payment keeps
// it on the payment step.
// ConfirmPayment godoc
// @Summary      Pay for a booking
// @Tags         Bookings
// @Param        id       path      string              true  "Booking session id"
// @Param        request  body      dto.PaymentRequest  true  "Card details"
// @Success      200      {object}  dto.BookingConfirmation
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{id}/payment [post]
func (s *BookingService) ConfirmPayment(ctx context.Context, req dto.PaymentRequest) (dto.BookingConfirmation, error) {
	unlock, err := s.Sessions.Lock(ctx, req.SessionID)
	if err != nil {
		return dto.BookingConfirmation{}, err
	}
	defer unlock()

	session, err := s.Sessions.Load(ctx, req.SessionID)
	if err != nil {
		return dto.BookingConfirmation{}, err
	}

	if session.Step != dto.BookingPayment {
		return dto.BookingConfirmation{}, wizard.ErrInvalidTransition.WithMessage(
			"payment is not allowed at step %s", session.Step)
	}

	task := simulator.Start(ctx, s.Payment, "payment", func() (string, error) {
		return random.Code(s.Source, wizard.BookingReferenceLength), nil
	})

	reference, err := task.Await(ctx)
	if err != nil {
		return dto.BookingConfirmation{}, fmt.Errorf("payment: %w", err)
	}

	now := s.Now()

	confirmed, err := wizard.ConfirmPayment(session, reference, now)
	if err != nil {
		return dto.BookingConfirmation{}, err
	}

	confirmation, err := wizard.Confirmation(confirmed, now)
	if err != nil {
		return dto.BookingConfirmation{}, err
	}

	if err := s.Sessions.Delete(ctx, req.SessionID); err != nil {
		// the payment went through, the session just expires on its own
		slog.WarnContext(ctx, "failed to delete confirmed booking session",
			slog.String("booking_id", req.SessionID), slog.Any("error", err))
	}

	slog.InfoContext(ctx, "booking confirmed", slog.String("booking_id", req.SessionID),
		slog.String("booking_reference", reference))

	return confirmation, nil
}

func bookingResponse(session dto.BookingSession) dto.BookingResponse {
	return dto.BookingResponse{
		Session:    session,
		StepNumber: session.Step.Number(),
		Price:      wizard.Price(session),
		FareTiers:  flight.FareTierInfos(),
	}
}
