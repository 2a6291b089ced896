package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/config"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/airline-booking-simulator/internal/pkg/transport/http"
)

const passengerIDParam = "passenger_id"

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.Limiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.ClientID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
			httptransport.RateLimit(limiter, cfg.RateLimit.RPS),
		)

		router.Route("/content", func(router chi.Router) {
			router.Get("/airports", httptransport.MakeHandlerFunc(
				endpts.ContentEndpoint.Airports,
				httptransport.DecodeEmpty,
				httptransport.ResponseWithBody,
			))
			router.Get("/destinations", httptransport.MakeHandlerFunc(
				endpts.ContentEndpoint.Destinations,
				httptransport.DecodeEmpty,
				httptransport.ResponseWithBody,
			))
			router.Get("/offers", httptransport.MakeHandlerFunc(
				endpts.ContentEndpoint.Offers,
				httptransport.DecodeEmpty,
				httptransport.ResponseWithBody,
			))
		})

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchCriteria],
			httptransport.ResponseWithBody,
		))

		router.Route("/bookings", func(router chi.Router) {
			booking := endpts.BookingEndpoint

			router.Post("/", httptransport.MakeHandlerFunc(
				booking.CreateBooking,
				httptransport.DecodeRequest[dto.SearchCriteria],
				httptransport.CreatedWithBody,
			))

			router.Route("/{id}", func(router chi.Router) {
				router.Get("/", httptransport.MakeHandlerFunc(
					booking.GetBooking,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.ResponseWithBody,
				))
				router.Delete("/", httptransport.MakeHandlerFunc(
					booking.CancelBooking,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.NoContentResponse,
				))
				router.Post("/flights", httptransport.MakeHandlerFunc(
					booking.SelectFlight,
					httptransport.DecodeSessionRequest[dto.SelectFlightRequest],
					httptransport.ResponseWithBody,
				))
				router.Put("/fare", httptransport.MakeHandlerFunc(
					booking.SelectFare,
					httptransport.DecodeSessionRequest[dto.SelectFareRequest],
					httptransport.ResponseWithBody,
				))
				router.Post("/passengers", httptransport.MakeHandlerFunc(
					booking.SubmitPassengers,
					httptransport.DecodeSessionRequest[dto.SubmitPassengersRequest],
					httptransport.ResponseWithBody,
				))
				router.Post("/payment", httptransport.MakeHandlerFunc(
					booking.ConfirmPayment,
					httptransport.DecodeSessionRequest[dto.PaymentRequest],
					httptransport.ResponseWithBody,
				))
			})
		})

		router.Route("/checkin", func(router chi.Router) {
			checkIn := endpts.CheckInEndpoint

			router.Post("/", httptransport.MakeHandlerFunc(
				checkIn.StartCheckIn,
				httptransport.DecodeRequest[dto.RetrieveBookingRequest],
				httptransport.CreatedWithBody,
			))

			router.Route("/{id}", func(router chi.Router) {
				router.Get("/", httptransport.MakeHandlerFunc(
					checkIn.GetCheckIn,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.ResponseWithBody,
				))
				router.Delete("/", httptransport.MakeHandlerFunc(
					checkIn.CancelCheckIn,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.NoContentResponse,
				))
				router.Put("/seats", httptransport.MakeHandlerFunc(
					checkIn.AssignSeat,
					httptransport.DecodeSessionRequest[dto.AssignSeatRequest],
					httptransport.ResponseWithBody,
				))
				router.Post("/seats/complete", httptransport.MakeHandlerFunc(
					checkIn.CompleteSeatSelection,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.ResponseWithBody,
				))
				router.Put("/addons", httptransport.MakeHandlerFunc(
					checkIn.SelectAddOns,
					httptransport.DecodeSessionRequest[dto.AddOnsRequest],
					httptransport.ResponseWithBody,
				))
				router.Post("/complete", httptransport.MakeHandlerFunc(
					checkIn.CompleteCheckIn,
					httptransport.DecodePathRequest[dto.SessionRef],
					httptransport.ResponseWithBody,
				))
				router.Get("/boarding-passes/{passenger_id}", httptransport.MakeHandlerFunc(
					checkIn.BoardingPass,
					decodeBoardingPassRequest,
					httptransport.DocumentResponse,
				))
			})
		})

		router.Route("/flight-status", func(router chi.Router) {
			router.Post("/", httptransport.MakeHandlerFunc(
				endpts.FlightStatusEndpoint.GetFlightStatus,
				httptransport.DecodeClientRequest[dto.FlightStatusRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/recent", httptransport.MakeHandlerFunc(
				endpts.FlightStatusEndpoint.RecentSearches,
				httptransport.DecodeClientOnly,
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}

func decodeBoardingPassRequest(_ context.Context, r *http.Request) (interface{}, error) {
	passengerID, err := strconv.Atoi(chi.URLParam(r, passengerIDParam))
	if err != nil {
		return nil, dto.ErrInvalidRequest.WithMessage("passenger_id must be a number")
	}

	req := &dto.BoardingPassRequest{PassengerID: passengerID}
	req.SetSessionID(chi.URLParam(r, httptransport.SessionIDParam))

	if err := req.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}
