package store

import (
	"net/http"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/exception"
)

var ErrSessionNotFound = exception.New("SESSION_NOT_FOUND",
	http.StatusNotFound, "session not found or expired")

var ErrSessionBusy = exception.New("SESSION_BUSY",
	http.StatusConflict, "session is being updated by another request")
