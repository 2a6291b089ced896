package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
)

type StatusGenerator interface {
	Generate(req dto.FlightStatusRequest) (dto.FlightStatusSnapshot, error)
}

type RecentSearcher interface {
	List(ctx context.Context, clientID string) ([]dto.RecentSearch, error)
	Add(ctx context.Context, clientID string, search dto.RecentSearch) ([]dto.RecentSearch, error)
}

type FlightStatusService struct {
	Generator StatusGenerator
	Recent    RecentSearcher
	Simulator *simulator.Simulator
	Now       func() time.Time
}

func NewFlightStatusService(generator StatusGenerator, recent RecentSearcher,
	sim *simulator.Simulator) *FlightStatusService {
	return &FlightStatusService{
		Generator: generator,
		Recent:    recent,
		Simulator: sim,
		Now:       time.Now,
	}
}

// GetFlightStatus looks a flight up by number or route and remembers the
// lookup in the caller's recent searches.
// GetFlightStatus godoc
// @Summary      Flight status
// @Tags         Flight status
// @Param        request  body      dto.FlightStatusRequest  true  "Flight number or route, and date"
// @Success      200      {object}  dto.FlightStatusResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/flight-status [post]
func (s *FlightStatusService) GetFlightStatus(ctx context.Context,
	req dto.FlightStatusRequest) (dto.FlightStatusResponse, error) {
	snapshot, err := simulator.Run(ctx, s.Simulator, "flight status", func() (dto.FlightStatusSnapshot, error) {
		return s.Generator.Generate(req)
	})
	if err != nil {
		return dto.FlightStatusResponse{}, fmt.Errorf("failed to get flight status: %w", err)
	}

	search := dto.RecentSearch{
		Type:      req.Mode(),
		Date:      req.Date,
		Timestamp: s.Now().UTC(),
	}
	if search.Type == dto.SearchByFlightNumber {
		search.Value = req.FlightNumber
	} else {
		search.From, search.To = req.Origin, req.Destination
	}

	recent, err := s.Recent.Add(ctx, req.ClientID, search)
	if err != nil {
		// history is a convenience, the lookup itself succeeded
		slog.WarnContext(ctx, "failed to store recent search", slog.Any("error", err))
		recent = []dto.RecentSearch{}
	}

	return dto.FlightStatusResponse{
		Flight:         snapshot,
		RecentSearches: recent,
	}, nil
}

func (s *FlightStatusService) RecentSearches(ctx context.Context,
	req dto.ClientRef) (dto.RecentSearchesResponse, error) {
	searches, err := s.Recent.List(ctx, req.ClientID)
	if err != nil {
		return dto.RecentSearchesResponse{}, fmt.Errorf("failed to list recent searches: %w", err)
	}

	return dto.RecentSearchesResponse{Searches: searches}, nil
}
