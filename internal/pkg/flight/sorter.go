package flight

import (
	"sort"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

// SortFlights orders a listing, by departure time ascending when no option is given.
func SortFlights(flights []dto.FlightOffer, sortOption *dto.SortOption) []dto.FlightOffer {
	var (
		option = "departure_time"
		order  = "asc"
	)
	if sortOption != nil {
		option = sortOption.Field
		if sortOption.Order != "" {
			order = sortOption.Order
		}
	}

	var key func(f dto.FlightOffer) float64
	switch option {
	case "price":
		key = func(f dto.FlightOffer) float64 { return float64(f.Prices.Standard) }
	case "duration":
		key = func(f dto.FlightOffer) float64 { return float64(f.DurationMinutes) }
	case "best":
		key = func(f dto.FlightOffer) float64 { return f.Score }
	default:
		key = func(f dto.FlightOffer) float64 { return float64(f.DepartureTimestamp) }
	}

	sort.SliceStable(flights, func(i, j int) bool {
		if order == "desc" {
			return key(flights[i]) > key(flights[j])
		}
		return key(flights[i]) < key(flights[j])
	})

	return flights
}
