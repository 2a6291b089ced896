package flightstatus

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrInvalidStatusQuery = exception.New("INVALID_STATUS_QUERY",
	http.StatusBadRequest, "invalid flight status query")
