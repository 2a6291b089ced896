package endpoints

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

type FlightStatusService interface {
	GetFlightStatus(ctx context.Context, req dto.FlightStatusRequest) (dto.FlightStatusResponse, error)
	RecentSearches(ctx context.Context, req dto.ClientRef) (dto.RecentSearchesResponse, error)
}

type FlightStatusEndpoint struct {
	GetFlightStatus endpoint.Endpoint
	RecentSearches  endpoint.Endpoint
}

func MakeFlightStatusEndpoint(service FlightStatusService) FlightStatusEndpoint {
	const name = "flight status service"

	return FlightStatusEndpoint{
		GetFlightStatus: makeEndpoint(name, service.GetFlightStatus),
		RecentSearches:  makeEndpoint(name, service.RecentSearches),
	}
}
