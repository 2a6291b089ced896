package service

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.New("NO_FLIGHTS_FOUND",
	http.StatusNotFound, "no flights found")
