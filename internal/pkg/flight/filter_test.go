package flight

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/stretchr/testify/assert"
)

func TestFilterFlights(t *testing.T) {
	dreamliner := "Boeing 787-8"
	maxPrice := 400
	minSeats := 20
	maxDuration := 180
	morningStart, morningEnd := "06:00", "11:59"

	flights := []dto.FlightOffer{
		{
			ID:              "BG101",
			DepartTime:      "07:15",
			DurationMinutes: 120,
			Aircraft:        "Boeing 787-8",
			Prices:          PricesFromBase(300),
			SeatsAvailable:  50,
		},
		{
			ID:              "BG202",
			DepartTime:      "19:40",
			DurationMinutes: 300,
			Aircraft:        "Boeing 737-800",
			Prices:          PricesFromBase(700),
			SeatsAvailable:  8,
		},
	}

	filterRequest := func(flights []dto.FlightOffer, opts *dto.FilterOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterFlights(context.Background(), flights, opts)
			gotIDs := make([]string, len(got))
			for i, f := range got {
				gotIDs[i] = f.ID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("FilterFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("nil_filter", filterRequest(flights, nil, []string{"BG101", "BG202"}))
	t.Run("filter_by_aircraft", filterRequest(flights, &dto.FilterOption{Aircraft: &dreamliner}, []string{"BG101"}))
	t.Run("filter_by_max_price", filterRequest(flights, &dto.FilterOption{MaxPrice: &maxPrice}, []string{"BG101"}))
	t.Run("filter_by_min_seats", filterRequest(flights, &dto.FilterOption{MinSeats: &minSeats}, []string{"BG101"}))
	t.Run("filter_by_duration", filterRequest(flights, &dto.FilterOption{MaxDurationMinutes: &maxDuration}, []string{"BG101"}))
	t.Run("filter_by_departure_window", filterRequest(flights,
		&dto.FilterOption{DepartureTimeStart: &morningStart, DepartureTimeEnd: &morningEnd}, []string{"BG101"}))
	t.Run("no_match", filterRequest(flights, &dto.FilterOption{MaxPrice: func() *int { p := 100; return &p }()}, []string{}))
}

func TestIsWithinTimeRange_Closure(t *testing.T) {
	timeRangeRequest := func(target, start, end string, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			got := isWithinTimeRange(context.Background(), target, start, end)
			assert.Equal(t, want, got)
		}
	}

	t.Run("within_range", timeRangeRequest("14:30", "12:00", "16:00", true))
	t.Run("on_boundary", timeRangeRequest("16:00", "12:00", "16:00", true))
	t.Run("outside_range", timeRangeRequest("10:00", "12:00", "16:00", false))
	t.Run("invalid_format", timeRangeRequest("invalid", "12:00", "16:00", false))
}
