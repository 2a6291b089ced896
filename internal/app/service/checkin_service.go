package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/boardingpass"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/seatmap"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/wizard"
)

type retrievedBooking struct {
	booking dto.RetrievedBooking
	seats   dto.SeatMap
}

type CheckInService struct {
	Airports  wizard.AirportNamer
	Sessions  SessionStore[dto.CheckInSession]
	Simulator *simulator.Simulator
	Source    random.Source
	Now       func() time.Time
	NewID     func() string
}

func NewCheckInService(airports wizard.AirportNamer, sessions SessionStore[dto.CheckInSession],
	sim *simulator.Simulator, src random.Source) *CheckInService {
	return &CheckInService{
		Airports:  airports,
		Sessions:  sessions,
		Simulator: sim,
		Source:    src,
		Now:       time.Now,
		NewID:     uuid.NewString,
	}
}

// StartCheckIn retrieves the booking behind a reference and last name and
// opens seat selection on a freshly generated seat map.
// StartCheckIn godoc
// @Summary      Start check-in
// @Tags         Check-in
// @Param        request  body      dto.RetrieveBookingRequest  true  "Booking reference and last name"
// @Success      201      {object}  dto.CheckInResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/checkin [post]
func (s *CheckInService) StartCheckIn(ctx context.Context, req dto.RetrieveBookingRequest) (dto.CheckInResponse, error) {
	retrieved, err := simulator.Run(ctx, s.Simulator, "retrieve booking", func() (retrievedBooking, error) {
		return retrievedBooking{
			booking: wizard.GenerateBooking(s.Source, s.Airports, req.BookingReference, req.LastName, s.Now()),
			seats:   seatmap.Generate(s.Source),
		}, nil
	})
	if err != nil {
		return dto.CheckInResponse{}, fmt.Errorf("failed to retrieve booking: %w", err)
	}

	now := s.Now()

	session, err := wizard.LoadBooking(wizard.NewCheckInSession(s.NewID(), now), retrieved.booking, retrieved.seats, now)
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	if err := s.Sessions.Save(ctx, session.ID, session); err != nil {
		return dto.CheckInResponse{}, fmt.Errorf("failed to save check-in session: %w", err)
	}

	slog.InfoContext(ctx, "check-in started", slog.String("checkin_id", session.ID),
		slog.String("pnr", req.BookingReference))

	return checkInResponse(session), nil
}

func (s *CheckInService) GetCheckIn(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error) {
	session, err := s.Sessions.Load(ctx, req.SessionID)
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	return checkInResponse(session), nil
}

func (s *CheckInService) CancelCheckIn(ctx context.Context, req dto.SessionRef) error {
	return remove(ctx, s.Sessions, req.SessionID)
}

func (s *CheckInService) AssignSeat(ctx context.Context, req dto.AssignSeatRequest) (dto.CheckInResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(c dto.CheckInSession) (dto.CheckInSession, error) {
		return wizard.AssignSeat(c, req.PassengerID, req.SeatID, s.Now())
	})
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	return checkInResponse(session), nil
}

func (s *CheckInService) CompleteSeatSelection(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(c dto.CheckInSession) (dto.CheckInSession, error) {
		return wizard.CompleteSeatSelection(c, s.Now())
	})
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	return checkInResponse(session), nil
}

func (s *CheckInService) SelectAddOns(ctx context.Context, req dto.AddOnsRequest) (dto.CheckInResponse, error) {
	addOns := dto.AddOns{
		ExtraBaggageKg: req.ExtraBaggageKg,
		Meal:           req.Meal,
		Insurance:      req.Insurance,
	}

	session, err := mutate(ctx, s.Sessions, req.SessionID, func(c dto.CheckInSession) (dto.CheckInSession, error) {
		return wizard.SelectAddOns(c, req.PassengerID, addOns, s.Now())
	})
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	return checkInResponse(session), nil
}

// CompleteCheckIn submits the check-in and issues the boarding passes. The
// result is only stored when the simulated call finished while the caller
// was still waiting.
func (s *CheckInService) CompleteCheckIn(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error) {
	session, err := mutate(ctx, s.Sessions, req.SessionID, func(c dto.CheckInSession) (dto.CheckInSession, error) {
		if c.Step != dto.CheckInAddOns {
			return c, wizard.ErrInvalidTransition.WithMessage("check-in cannot be completed at step %s", c.Step)
		}

		task := simulator.Start(ctx, s.Simulator, "complete check-in", func() (dto.CheckInSession, error) {
			return wizard.Complete(c, s.Now())
		})

		return task.Await(ctx)
	})
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	slog.InfoContext(ctx, "check-in completed", slog.String("checkin_id", session.ID),
		slog.Int("boarding_passes", len(session.BoardingPasses)))

	return checkInResponse(session), nil
}

// BoardingPass renders one passenger's boarding pass as a PDF document.
// BoardingPass godoc
// @Summary      Download boarding pass
// @Tags         Check-in
// @Produce      application/pdf
// @Param        id            path  string  true  "Check-in session id"
// @Param        passenger_id  path  int     true  "Passenger id"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/checkin/{id}/boarding-passes/{passenger_id} [get]
func (s *CheckInService) BoardingPass(ctx context.Context, req dto.BoardingPassRequest) (dto.Document, error) {
	session, err := s.Sessions.Load(ctx, req.SessionID)
	if err != nil {
		return dto.Document{}, err
	}

	pass, err := wizard.BoardingPass(session, req.PassengerID)
	if err != nil {
		return dto.Document{}, err
	}

	doc, err := boardingpass.Render(pass)
	if err != nil {
		return dto.Document{}, fmt.Errorf("failed to render boarding pass: %w", err)
	}

	return doc, nil
}

func checkInResponse(session dto.CheckInSession) dto.CheckInResponse {
	return dto.CheckInResponse{
		Session:    session,
		StepNumber: session.Step.Number(),
		AddOnTotal: wizard.AddOnTotal(session),
	}
}
