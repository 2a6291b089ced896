package flight

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrInvalidSearchParameters = exception.New("INVALID_SEARCH_PARAMETERS",
	http.StatusBadRequest, "invalid search parameters")

var ErrNoAvailabilityFound = exception.New("NO_AVAILABILITY_FOUND",
	http.StatusNotFound, "no flights available for the selected date")
