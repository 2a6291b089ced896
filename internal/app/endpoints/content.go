package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

type ContentService interface {
	Airports(ctx context.Context) (dto.AirportsResponse, error)
	Destinations(ctx context.Context) (dto.DestinationsResponse, error)
	Offers(ctx context.Context) (dto.OffersResponse, error)
}

type ContentEndpoint struct {
	Airports     endpoint.Endpoint
	Destinations endpoint.Endpoint
	Offers       endpoint.Endpoint
}

func MakeContentEndpoint(service ContentService) ContentEndpoint {
	return ContentEndpoint{
		Airports:     makeListEndpoint(service.Airports),
		Destinations: makeListEndpoint(service.Destinations),
		Offers:       makeListEndpoint(service.Offers),
	}
}

// content lists take no input, the decoded request is ignored
func makeListEndpoint[Resp any](fn func(context.Context) (Resp, error)) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		resp, err := fn(ctx)
		if err != nil {
			return nil, fmt.Errorf("content service: %w", err)
		}

		return resp, nil
	}
}
