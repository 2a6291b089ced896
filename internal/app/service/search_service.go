package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
)

type ListingCacher interface {
	GetLockKey(req dto.SearchCriteria) string
	GetCacheKey(req dto.SearchCriteria) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetListing(ctx context.Context, key string) (dto.Listing, error)
	SetListing(ctx context.Context,
		key string,
		listing dto.Listing,
		expiration time.Duration,
	) error
}

type FlightSearcher interface {
	ValidateSearch(criteria dto.SearchCriteria) (time.Time, time.Time, error)
	Search(criteria dto.SearchCriteria) ([]dto.FlightOffer, []dto.FlightOffer, error)
}

type SearchService struct {
	Generator              FlightSearcher
	Cache                  ListingCacher
	Simulator              *simulator.Simulator
	ListingCacheExpiration time.Duration
	ListingLockTimeout     time.Duration
}

func NewSearchService(generator FlightSearcher,
	cache ListingCacher, sim *simulator.Simulator,
	listingCacheExpiration time.Duration,
	listingLockTimeout time.Duration) *SearchService {
	return &SearchService{
		Generator:              generator,
		Cache:                  cache,
		Simulator:              sim,
		ListingCacheExpiration: listingCacheExpiration,
		ListingLockTimeout:     listingLockTimeout,
	}
}

// SearchFlights returns the outbound and, for round trips, return flights of
// the search after applying its filter, rank and sort options.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Generate the flights of a route and date
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      503      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *SearchService) SearchFlights(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.SearchFlightResponse, error) {
	listing, metadata, err := s.Listing(ctx, req)
	if err != nil {
		return dto.SearchFlightResponse{}, err
	}

	if len(listing.Outbound) == 0 {
		return dto.SearchFlightResponse{}, ErrNoFlightsFound
	}

	return dto.SearchFlightResponse{
		SearchCriteria: req,
		Metadata:       metadata,
		Outbound:       listing.Outbound,
		Return:         listing.Return,
		FareTiers:      flight.FareTierInfos(),
	}, nil
}

// Listing returns the processed flights of a search. Generated flights are
// cached per search so a repeated search, or a booking made from it, sees the
// same flights.
func (s *SearchService) Listing(ctx context.Context, req dto.SearchCriteria) (dto.Listing, dto.Metadata, error) {
	startTime := time.Now()
	cacheHit := false

	if _, _, err := s.Generator.ValidateSearch(req); err != nil {
		return dto.Listing{}, dto.Metadata{}, err
	}

	cacheKey := s.Cache.GetCacheKey(req)
	lockKey := s.Cache.GetLockKey(req)

	listing, err := s.Cache.GetListing(ctx, cacheKey)
	if err == nil {
		cacheHit = true
	} else {
		slog.WarnContext(ctx, "failed to get listing from cache", slog.String("error", err.Error()))
	}

	if !cacheHit {
		listing, err = simulator.Run(ctx, s.Simulator, "search", func() (dto.Listing, error) {
			outbound, ret, err := s.Generator.Search(req)
			if err != nil {
				return dto.Listing{}, err
			}
			return dto.Listing{Outbound: outbound, Return: ret}, nil
		})
		if err != nil {
			return dto.Listing{}, dto.Metadata{}, fmt.Errorf("failed to generate flights: %w", err)
		}

		// concurrent searches with the same criteria race for the lock, only the
		// winner stores its flights, the others answer with what they generated
		acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.ListingLockTimeout)
		if err != nil {
			return dto.Listing{}, dto.Metadata{}, fmt.Errorf("failed to acquire lock: %w", err)
		}

		if acquired {
			defer s.Cache.ReleaseLock(context.WithoutCancel(ctx), lockKey)

			err = s.Cache.SetListing(ctx, cacheKey, listing, s.ListingCacheExpiration)
			if err != nil {
				return dto.Listing{}, dto.Metadata{}, fmt.Errorf("failed to set listing to cache: %w", err)
			}
		}
	}

	listing.Outbound = process(ctx, listing.Outbound, req)
	listing.Return = process(ctx, listing.Return, req)

	metadata := dto.Metadata{
		TotalResults:  len(listing.Outbound),
		ReturnResults: len(listing.Return),
		SearchTimeMs:  int(time.Since(startTime).Milliseconds()),
		CacheHit:      cacheHit,
	}

	return listing, metadata, nil
}

func process(ctx context.Context, flights []dto.FlightOffer, req dto.SearchCriteria) []dto.FlightOffer {
	if flights == nil {
		return nil
	}

	filteredFlights := flight.FilterFlights(ctx, flights, req.FilterOption)
	rankedFlights := flight.RankFlights(filteredFlights)
	return flight.SortFlights(rankedFlights, req.SortOption)
}
