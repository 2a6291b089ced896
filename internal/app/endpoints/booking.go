package endpoints

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req dto.SearchCriteria) (dto.BookingResponse, error)
	GetBooking(ctx context.Context, req dto.SessionRef) (dto.BookingResponse, error)
	CancelBooking(ctx context.Context, req dto.SessionRef) error
	SelectFlight(ctx context.Context, req dto.SelectFlightRequest) (dto.BookingResponse, error)
	SelectFare(ctx context.Context, req dto.SelectFareRequest) (dto.BookingResponse, error)
	SubmitPassengers(ctx context.Context, req dto.SubmitPassengersRequest) (dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, req dto.PaymentRequest) (dto.BookingConfirmation, error)
}

type BookingEndpoint struct {
	CreateBooking    endpoint.Endpoint
	GetBooking       endpoint.Endpoint
	CancelBooking    endpoint.Endpoint
	SelectFlight     endpoint.Endpoint
	SelectFare       endpoint.Endpoint
	SubmitPassengers endpoint.Endpoint
	ConfirmPayment   endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	const name = "booking service"

	return BookingEndpoint{
		CreateBooking:    makeEndpoint(name, service.CreateBooking),
		GetBooking:       makeEndpoint(name, service.GetBooking),
		CancelBooking:    makeCommandEndpoint(name, service.CancelBooking),
		SelectFlight:     makeEndpoint(name, service.SelectFlight),
		SelectFare:       makeEndpoint(name, service.SelectFare),
		SubmitPassengers: makeEndpoint(name, service.SubmitPassengers),
		ConfirmPayment:   makeEndpoint(name, service.ConfirmPayment),
	}
}
