package flight

import (
	"context"
	"log/slog"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

// FilterFlights narrows a listing, prices compare against the standard fare.
func FilterFlights(ctx context.Context, flights []dto.FlightOffer, filterOpts *dto.FilterOption) []dto.FlightOffer {
	if filterOpts == nil {
		return flights
	}

	results := make([]dto.FlightOffer, 0, len(flights))

	for _, flight := range flights {
		if filterOpts.Aircraft != nil && *filterOpts.Aircraft != flight.Aircraft {
			continue
		}

		if filterOpts.MaxPrice != nil && flight.Prices.Standard > *filterOpts.MaxPrice {
			continue
		}

		if filterOpts.MinPrice != nil && flight.Prices.Standard < *filterOpts.MinPrice {
			continue
		}

		if filterOpts.MinSeats != nil && flight.SeatsAvailable < *filterOpts.MinSeats {
			continue
		}

		if filterOpts.MaxDurationMinutes != nil && flight.DurationMinutes > *filterOpts.MaxDurationMinutes {
			continue
		}

		if filterOpts.DepartureTimeStart != nil && filterOpts.DepartureTimeEnd != nil {
			if !isWithinTimeRange(ctx, flight.DepartTime, *filterOpts.DepartureTimeStart, *filterOpts.DepartureTimeEnd) {
				continue
			}
		}

		results = append(results, flight)
	}

	return results
}

// all three values are wall clock "15:04", the range is inclusive on both ends
func isWithinTimeRange(ctx context.Context, targetTime string, startTime string, endTime string) bool {
	targetTimeParsed, err := time.Parse("15:04", targetTime)
	if err != nil {
		return false
	}

	startTimeParsed, err := time.Parse("15:04", startTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse start time", slog.String("time", startTime), slog.Any("error", err))
		return false
	}

	endTimeParsed, err := time.Parse("15:04", endTime)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse end time", slog.String("time", endTime), slog.Any("error", err))
		return false
	}

	return !targetTimeParsed.Before(startTimeParsed) && !targetTimeParsed.After(endTimeParsed)
}
