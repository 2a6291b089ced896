package flight

import (
	"math"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

// weighted scoring using normalization
// ref: https://www.1000minds.com/decision-making/what-is-mcdm-mcda

// weights for each criteria
const (
	WeightPrice             = 0.6
	WeightDurationInMinutes = 0.3
	WeightSeatsAvailable    = 0.1
)

// RankFlights ranks the flights on standard fare, duration and seat availability
// score is calculated using weighted scoring using normalization
// 0 indicates the best flight and 1 indicates the worst flight
func RankFlights(flights []dto.FlightOffer) []dto.FlightOffer {
	priceMin, priceMax := findRange(flights, func(f dto.FlightOffer) int { return f.Prices.Standard })
	durationMin, durationMax := findRange(flights, func(f dto.FlightOffer) int { return f.DurationMinutes })
	seatsMin, seatsMax := findRange(flights, func(f dto.FlightOffer) int { return f.SeatsAvailable })

	for i, flight := range flights {
		priceScore := normalizeValue(float64(flight.Prices.Standard), float64(priceMin), float64(priceMax))
		durationScore := normalizeValue(float64(flight.DurationMinutes),
			float64(durationMin), float64(durationMax))

		// invert seats score because more seats left is better
		seatsScore := 1 - normalizeValue(float64(flight.SeatsAvailable),
			float64(seatsMin), float64(seatsMax))

		flights[i].Score = WeightPrice*priceScore +
			WeightDurationInMinutes*durationScore +
			WeightSeatsAvailable*seatsScore
	}

	return flights
}

func findRange(flights []dto.FlightOffer, value func(dto.FlightOffer) int) (int, int) {
	if len(flights) == 0 {
		return 0, 0
	}

	minValue := math.MaxInt
	maxValue := math.MinInt
	for _, flight := range flights {
		v := value(flight)
		if v < minValue {
			minValue = v
		}
		if v > maxValue {
			maxValue = v
		}
	}
	return minValue, maxValue
}

func normalizeValue(value float64, min float64, max float64) float64 {
	if max == min {
		return 0
	}

	return (value - min) / (max - min)
}
