package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
)

var errInvalidType = errors.New("invalid type")

// Endpoints groups the endpoints of every service.
type Endpoints struct {
	SearchEndpoint       SearchEndpoint
	BookingEndpoint      BookingEndpoint
	CheckInEndpoint      CheckInEndpoint
	FlightStatusEndpoint FlightStatusEndpoint
	ContentEndpoint      ContentEndpoint
}

// makeEndpoint adapts a service method taking *Req as decoded by the transport.
func makeEndpoint[Req, Resp any](name string, fn func(context.Context, Req) (Resp, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*Req)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := fn(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return resp, nil
	}
}

// makeCommandEndpoint is makeEndpoint for methods without a response body.
func makeCommandEndpoint[Req any](name string, fn func(context.Context, Req) error) endpoint.Endpoint {
	return makeEndpoint(name, func(ctx context.Context, req Req) (interface{}, error) {
		return nil, fn(ctx, req)
	})
}
