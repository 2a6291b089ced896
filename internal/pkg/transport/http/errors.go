package http

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrRateLimitExceeded = exception.New("RATE_LIMIT_EXCEEDED",
	http.StatusTooManyRequests, "too many requests, slow down")
