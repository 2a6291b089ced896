package endpoints

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

type CheckInService interface {
	StartCheckIn(ctx context.Context, req dto.RetrieveBookingRequest) (dto.CheckInResponse, error)
	GetCheckIn(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error)
	CancelCheckIn(ctx context.Context, req dto.SessionRef) error
	AssignSeat(ctx context.Context, req dto.AssignSeatRequest) (dto.CheckInResponse, error)
	CompleteSeatSelection(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error)
	SelectAddOns(ctx context.Context, req dto.AddOnsRequest) (dto.CheckInResponse, error)
	CompleteCheckIn(ctx context.Context, req dto.SessionRef) (dto.CheckInResponse, error)
	BoardingPass(ctx context.Context, req dto.BoardingPassRequest) (dto.Document, error)
}

type CheckInEndpoint struct {
	StartCheckIn          endpoint.Endpoint
	GetCheckIn            endpoint.Endpoint
	CancelCheckIn         endpoint.Endpoint
	AssignSeat            endpoint.Endpoint
	CompleteSeatSelection endpoint.Endpoint
	SelectAddOns          endpoint.Endpoint
	CompleteCheckIn       endpoint.Endpoint
	BoardingPass          endpoint.Endpoint
}

func MakeCheckInEndpoint(service CheckInService) CheckInEndpoint {
	const name = "check-in service"

	return CheckInEndpoint{
		StartCheckIn:          makeEndpoint(name, service.StartCheckIn),
		GetCheckIn:            makeEndpoint(name, service.GetCheckIn),
		CancelCheckIn:         makeCommandEndpoint(name, service.CancelCheckIn),
		AssignSeat:            makeEndpoint(name, service.AssignSeat),
		CompleteSeatSelection: makeEndpoint(name, service.CompleteSeatSelection),
		SelectAddOns:          makeEndpoint(name, service.SelectAddOns),
		CompleteCheckIn:       makeEndpoint(name, service.CompleteCheckIn),
		BoardingPass:          makeEndpoint(name, service.BoardingPass),
	}
}
