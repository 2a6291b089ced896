//go:build unit

package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

func TestSortFlights_Closure(t *testing.T) {
	flights := []dto.FlightOffer{
		{ID: "BG100", Prices: dto.Prices{Standard: 600}, DurationMinutes: 90, DepartureTimestamp: 300, Score: 0.8},
		{ID: "BG200", Prices: dto.Prices{Standard: 250}, DurationMinutes: 400, DepartureTimestamp: 100, Score: 0.1},
		{ID: "BG300", Prices: dto.Prices{Standard: 400}, DurationMinutes: 200, DepartureTimestamp: 200, Score: 0.5},
	}

	sortRequest := func(flights []dto.FlightOffer, opt *dto.SortOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			// Copy to avoid shared state
			fCopy := make([]dto.FlightOffer, len(flights))
			copy(fCopy, flights)

			got := SortFlights(fCopy, opt)
			gotIDs := make([]string, len(got))
			for i, f := range got {
				gotIDs[i] = f.ID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("SortFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("default_sort_departure_asc", sortRequest(flights, nil, []string{"BG200", "BG300", "BG100"}))
	t.Run("price_asc", sortRequest(flights, &dto.SortOption{Field: "price", Order: "asc"}, []string{"BG200", "BG300", "BG100"}))
	t.Run("price_desc", sortRequest(flights, &dto.SortOption{Field: "price", Order: "desc"}, []string{"BG100", "BG300", "BG200"}))
	t.Run("duration_asc", sortRequest(flights, &dto.SortOption{Field: "duration"}, []string{"BG100", "BG300", "BG200"}))
	t.Run("best_asc", sortRequest(flights, &dto.SortOption{Field: "best", Order: "asc"}, []string{"BG200", "BG300", "BG100"}))
}
