package simulator

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrSimulatedServiceFailure = exception.New("SIMULATED_SERVICE_FAILURE",
	http.StatusServiceUnavailable, "service temporarily unavailable")

var ErrRetryExceeded = exception.New("RETRY_EXCEEDED",
	http.StatusServiceUnavailable, "retry exceeded")
