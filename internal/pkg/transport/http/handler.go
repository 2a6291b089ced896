package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/logger"
)

// SessionIDParam is the URL parameter holding a wizard session id.
const SessionIDParam = "id"

// MakeHandlerFunc serves a go-kit endpoint, errors are written by ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

type sessionBinder interface {
	render.Binder
	SetSessionID(id string)
}

type clientBinder interface {
	render.Binder
	SetClientID(id string)
}

// DecodeRequest decodes the JSON body into T and validates it.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := bind(r, req); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodeSessionRequest decodes the JSON body of a request addressed to the
// session in the URL.
func DecodeSessionRequest[T any, PT interface {
	*T
	sessionBinder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))
	req.SetSessionID(chi.URLParam(r, SessionIDParam))

	if err := bind(r, req); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodePathRequest builds a request that has no body, only the session id
// in the URL.
func DecodePathRequest[T any, PT interface {
	*T
	sessionBinder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))
	req.SetSessionID(chi.URLParam(r, SessionIDParam))

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodeClientRequest decodes the JSON body and attaches the caller's client id.
func DecodeClientRequest[T any, PT interface {
	*T
	clientBinder
}](ctx context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := bind(r, req); err != nil {
		return nil, err
	}

	req.SetClientID(ClientIDFromContext(ctx))

	return req, nil
}

// DecodeClientOnly builds a bodyless request carrying the caller's client id.
func DecodeClientOnly(ctx context.Context, _ *http.Request) (interface{}, error) {
	return &dto.ClientRef{ClientID: ClientIDFromContext(ctx)}, nil
}

// DecodeEmpty is used by endpoints without input.
func DecodeEmpty(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

func bind(r *http.Request, req render.Binder) error {
	if err := render.Bind(r, req); err != nil {
		if errors.Is(err, io.EOF) {
			return dto.ErrInvalidRequest.WithMessage("request body is required")
		}

		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return err
		}

		return dto.ErrInvalidRequest.WithMessage("malformed request body").WithCause(fmt.Errorf("decode: %w", err))
	}

	return nil
}

// ClientIDFromContext returns the id set by the ClientID middleware.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(logger.ClientIDKey).(string)
	return id
}
