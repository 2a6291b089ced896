//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSimulator(failureRate float64) *simulator.Simulator {
	return simulator.New("test", simulator.Config{FailureRate: failureRate}, random.New(1))
}

func offerIDs(flights []dto.FlightOffer) []string {
	ids := make([]string, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestSearchService_SearchFlights(t *testing.T) {
	type mockField struct {
		cache     *MockListingCacher
		generator *MockFlightSearcher
	}

	type want struct {
		outbound []string
		ret      []string
		metadata dto.Metadata
	}

	searchFlightRequest := func(
		criteria dto.SearchCriteria,
		failureRate float64,
		setupMock func(m mockField),
		want want,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				cache:     NewMockListingCacher(t),
				generator: NewMockFlightSearcher(t),
			}
			setupMock(m)

			s := NewSearchService(m.generator, m.cache, newTestSimulator(failureRate),
				10*time.Minute, 5*time.Second)

			got, err := s.SearchFlights(context.Background(), criteria)

			if wantErr != nil {
				assert.Error(t, err)
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			assert.NoError(t, err)
			got.Metadata.SearchTimeMs = 0

			if diff := cmp.Diff(want.metadata, got.Metadata); diff != "" {
				t.Fatalf("SearchFlights() metadata mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, want.outbound, offerIDs(got.Outbound))
			if want.ret != nil {
				assert.Equal(t, want.ret, offerIDs(got.Return))
			}
			assert.Len(t, got.FareTiers, 3)
			assert.Equal(t, criteria, got.SearchCriteria)
		}
	}

	criteria := dto.SearchCriteria{
		Origin:        "DAC",
		Destination:   "LHR",
		DepartureDate: "2026-04-10",
		Passengers:    1,
		CabinClass:    "economy",
	}

	outbound := []dto.FlightOffer{
		{ID: "BG201", Prices: flight.PricesFromBase(500), DepartureTimestamp: 200},
		{ID: "BG101", Prices: flight.PricesFromBase(300), DepartureTimestamp: 100},
	}
	listing := dto.Listing{Outbound: outbound}

	cacheKeys := func(m mockField, c dto.SearchCriteria) {
		m.generator.On("ValidateSearch", c).Return(time.Time{}, time.Time{}, nil)
		m.cache.On("GetCacheKey", c).Return("cache-key")
		m.cache.On("GetLockKey", c).Return("lock-key")
	}

	t.Run("cache_hit", searchFlightRequest(
		criteria, 0,
		func(m mockField) {
			cacheKeys(m, criteria)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(listing, nil)
		},
		want{
			outbound: []string{"BG101", "BG201"},
			metadata: dto.Metadata{TotalResults: 2, CacheHit: true},
		},
		nil,
	))

	t.Run("cache_miss_success", searchFlightRequest(
		criteria, 0,
		func(m mockField) {
			cacheKeys(m, criteria)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(dto.Listing{}, errors.New("miss"))
			m.generator.On("Search", criteria).Return(outbound, nil, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
			m.cache.On("SetListing", mock.Anything, "cache-key", mock.Anything, 10*time.Minute).Return(nil)
			m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
		},
		want{
			outbound: []string{"BG101", "BG201"},
			metadata: dto.Metadata{TotalResults: 2},
		},
		nil,
	))

	t.Run("cache_miss_lock_held", searchFlightRequest(
		criteria, 0,
		func(m mockField) {
			cacheKeys(m, criteria)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(dto.Listing{}, errors.New("miss"))
			m.generator.On("Search", criteria).Return(outbound, nil, nil)
			m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, nil)
		},
		want{
			outbound: []string{"BG101", "BG201"},
			metadata: dto.Metadata{TotalResults: 2},
		},
		nil,
	))

	roundTrip := criteria
	roundTrip.ReturnDate = "2026-04-20"
	roundTrip.SortOption = &dto.SortOption{Field: "price", Order: "desc"}

	t.Run("round_trip_sorted", searchFlightRequest(
		roundTrip, 0,
		func(m mockField) {
			cacheKeys(m, roundTrip)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(dto.Listing{
				Outbound: outbound,
				Return: []dto.FlightOffer{
					{ID: "BG301", Prices: flight.PricesFromBase(250)},
					{ID: "BG401", Prices: flight.PricesFromBase(650)},
				},
			}, nil)
		},
		want{
			outbound: []string{"BG201", "BG101"},
			ret:      []string{"BG401", "BG301"},
			metadata: dto.Metadata{TotalResults: 2, ReturnResults: 2, CacheHit: true},
		},
		nil,
	))

	maxPrice := 100
	filtered := criteria
	filtered.FilterOption = &dto.FilterOption{MaxPrice: &maxPrice}

	t.Run("no_flights_found", searchFlightRequest(
		filtered, 0,
		func(m mockField) {
			cacheKeys(m, filtered)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(listing, nil)
		},
		want{},
		ErrNoFlightsFound,
	))

	t.Run("invalid_search", searchFlightRequest(
		criteria, 0,
		func(m mockField) {
			m.generator.On("ValidateSearch", criteria).Return(time.Time{}, time.Time{},
				flight.ErrInvalidSearchParameters.WithMessage("unknown airport ZZZ"))
		},
		want{},
		flight.ErrInvalidSearchParameters,
	))

	t.Run("simulated_failure", searchFlightRequest(
		criteria, 1,
		func(m mockField) {
			cacheKeys(m, criteria)
			m.cache.On("GetListing", mock.Anything, "cache-key").Return(dto.Listing{}, errors.New("miss"))
		},
		want{},
		simulator.ErrRetryExceeded,
	))
}
