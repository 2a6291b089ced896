package wizard

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrInvalidTransition = exception.New("INVALID_TRANSITION",
	http.StatusConflict, "action is not allowed at the current step")

var ErrFlightNotFound = exception.New("FLIGHT_NOT_FOUND",
	http.StatusBadRequest, "flight is not part of the search results")

var ErrReturnNotRequested = exception.New("RETURN_NOT_REQUESTED",
	http.StatusBadRequest, "search has no return date")

var ErrInvalidFareTier = exception.New("INVALID_FARE_TIER",
	http.StatusBadRequest, "unknown fare tier")

var ErrInvalidBookingReference = exception.New("INVALID_BOOKING_REFERENCE",
	http.StatusBadRequest, "invalid booking reference")

var ErrPassengerCountMismatch = exception.New("PASSENGER_COUNT_MISMATCH",
	http.StatusBadRequest, "passenger count does not match the search")

var ErrIncompletePassengerDetails = exception.New("INCOMPLETE_PASSENGER_DETAILS",
	http.StatusBadRequest, "passenger details are incomplete")

var ErrPassengerNotFound = exception.New("PASSENGER_NOT_FOUND",
	http.StatusNotFound, "passenger not found on booking")

var ErrSeatNotFound = exception.New("SEAT_NOT_FOUND",
	http.StatusBadRequest, "seat does not exist")

var ErrSeatOccupied = exception.New("SEAT_OCCUPIED",
	http.StatusConflict, "seat is occupied")

var ErrSeatAlreadyTaken = exception.New("SEAT_ALREADY_TAKEN",
	http.StatusConflict, "seat is held by another passenger")

var ErrSeatSelectionIncomplete = exception.New("SEAT_SELECTION_INCOMPLETE",
	http.StatusConflict, "every passenger needs a seat")

var ErrInvalidAddOn = exception.New("INVALID_ADD_ON",
	http.StatusBadRequest, "invalid add-on")

var ErrBoardingPassNotFound = exception.New("BOARDING_PASS_NOT_FOUND",
	http.StatusNotFound, "boarding pass not found")
