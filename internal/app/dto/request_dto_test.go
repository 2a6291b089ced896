package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightStatusRequest_Bind(t *testing.T) {
	require.NoError(t, InitValidator())

	bindRequest := func(req FlightStatusRequest, wantErr bool, wantMode string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, wantMode, req.Mode())
		}
	}

	t.Run("by_flight_number", bindRequest(FlightStatusRequest{
		FlightNumber: "bg201",
		Date:         "2026-11-01",
	}, false, SearchByFlightNumber))
	t.Run("by_route", bindRequest(FlightStatusRequest{
		Origin:      "dac",
		Destination: "cgp",
		Date:        "2026-11-01",
	}, false, SearchByRoute))
	t.Run("route_missing_destination", bindRequest(FlightStatusRequest{
		Origin: "DAC",
		Date:   "2026-11-01",
	}, true, ""))
	t.Run("missing_date", bindRequest(FlightStatusRequest{
		FlightNumber: "BG201",
	}, true, ""))
}

func TestRetrieveBookingRequest_Bind(t *testing.T) {
	require.NoError(t, InitValidator())

	req := RetrieveBookingRequest{BookingReference: " abc123 ", LastName: " Rahman "}
	require.NoError(t, req.Bind(nil))
	assert.Equal(t, "ABC123", req.BookingReference)
	assert.Equal(t, "Rahman", req.LastName)

	short := RetrieveBookingRequest{BookingReference: "AB12", LastName: "Rahman"}
	assert.ErrorIs(t, short.Bind(nil), ErrInvalidRequest)

	noName := RetrieveBookingRequest{BookingReference: "ABC123"}
	assert.ErrorIs(t, noName.Bind(nil), ErrInvalidRequest)
}

func TestSessionRef_Bind(t *testing.T) {
	require.NoError(t, InitValidator())

	req := AssignSeatRequest{PassengerID: 1, SeatID: "12a"}
	req.SetSessionID("8f14e45f-ceea-467f-a2b2-1c1e6f3e0b7d")
	require.NoError(t, req.Bind(nil))
	assert.Equal(t, "12A", req.SeatID)

	bad := AssignSeatRequest{PassengerID: 1, SeatID: "12A"}
	bad.SetSessionID("not-a-uuid")
	assert.ErrorIs(t, bad.Bind(nil), ErrInvalidRequest)
}

func TestRecentSearch_Key(t *testing.T) {
	byNumber := RecentSearch{Type: SearchByFlightNumber, Value: "BG201", Date: "2026-11-01"}
	byRoute := RecentSearch{Type: SearchByRoute, From: "DAC", To: "CGP", Date: "2026-11-01"}

	assert.Equal(t, "flight_number:BG201:2026-11-01", byNumber.Key())
	assert.Equal(t, "route:DAC:CGP:2026-11-01", byRoute.Key())
}

func TestStepNumbers(t *testing.T) {
	assert.Equal(t, 1, BookingSelectFlights.Number())
	assert.Equal(t, 3, BookingPayment.Number())
	assert.Equal(t, 0, BookingConfirmed.Number())
	assert.Equal(t, 2, CheckInSelectSeats.Number())
	assert.Equal(t, 4, CheckInCompleted.Number())
}
