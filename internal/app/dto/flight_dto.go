package dto

import (
	"fmt"
	"net/http"
	"strings"
)

type FareTier string

const (
	FareBasic    FareTier = "basic"
	FareStandard FareTier = "standard"
	FareFlex     FareTier = "flex"
)

// FareTiers lists the tiers from cheapest to most flexible.
var FareTiers = []FareTier{FareBasic, FareStandard, FareFlex}

func (t FareTier) Valid() bool {
	switch t {
	case FareBasic, FareStandard, FareFlex:
		return true
	}
	return false
}

// FareTierInfo describes what a fare tier bundles.
type FareTierInfo struct {
	Tier       FareTier `json:"tier"`
	Name       string   `json:"name"`
	Multiplier float64  `json:"multiplier"`
	Features   []string `json:"features"`
}

// Prices holds the per-passenger fare of one flight for every tier.
type Prices struct {
	Basic    int `json:"basic"`
	Standard int `json:"standard"`
	Flex     int `json:"flex"`
}

// For returns the fare of tier, false when tier is unknown.
func (p Prices) For(tier FareTier) (int, bool) {
	switch tier {
	case FareBasic:
		return p.Basic, true
	case FareStandard:
		return p.Standard, true
	case FareFlex:
		return p.Flex, true
	}
	return 0, false
}

type FlightOffer struct {
	ID                 string  `json:"id"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	Date               string  `json:"date"`
	DepartTime         string  `json:"depart_time"`
	ArrivalTime        string  `json:"arrival_time"`
	IsNextDay          bool    `json:"is_next_day"`
	DurationMinutes    int     `json:"duration_minutes"`
	Duration           string  `json:"duration"`
	Aircraft           string  `json:"aircraft"`
	Prices             Prices  `json:"prices"`
	SeatsAvailable     int     `json:"seats_available"`
	DepartureTimestamp int64   `json:"departure_timestamp"`
	ArrivalTimestamp   int64   `json:"arrival_timestamp"`
	Score              float64 `json:"score"`
}

type SearchCriteria struct {
	Origin        string        `json:"origin" validate:"required,len=3,alpha"`
	Destination   string        `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string        `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string        `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Passengers    int           `json:"passengers" validate:"required,min=1,max=9"`
	CabinClass    string        `json:"cabin_class" validate:"required,oneof=economy business first"`
	PromoCode     string        `json:"promo_code,omitempty"`
	SortOption    *SortOption   `json:"sort_option,omitempty"`
	FilterOption  *FilterOption `json:"filter_option,omitempty"`
}

// RoundTrip reports whether a return leg was requested.
func (s SearchCriteria) RoundTrip() bool {
	return s.ReturnDate != ""
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.CabinClass = strings.ToLower(strings.TrimSpace(s.CabinClass))

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := validateRequest(s); err != nil {
		return err
	}

	if s.SortOption != nil {
		if !AllowedSortField[s.SortOption.Field] {
			return ErrInvalidRequest.WithMessage("Invalid sort field %s", s.SortOption.Field)
		}
		if s.SortOption.Order != "" && s.SortOption.Order != "asc" && s.SortOption.Order != "desc" {
			return ErrInvalidRequest.WithMessage("Invalid sort order %s", s.SortOption.Order)
		}
	}

	if s.FilterOption != nil {
		if s.FilterOption.MinPrice != nil && s.FilterOption.MaxPrice != nil &&
			*s.FilterOption.MaxPrice <= *s.FilterOption.MinPrice {
			return ErrInvalidRequest.WithMessage("max_price must be greater than min_price")
		}

		if (s.FilterOption.DepartureTimeStart == nil) != (s.FilterOption.DepartureTimeEnd == nil) {
			return ErrInvalidRequest.WithMessage("departure_time_start and departure_time_end must be set together")
		}
	}

	return nil
}

type FilterOption struct {
	MinPrice           *int    `json:"min_price,omitempty" validate:"omitempty,gt=0"`
	MaxPrice           *int    `json:"max_price,omitempty" validate:"omitempty,gt=0"`
	MinSeats           *int    `json:"min_seats,omitempty" validate:"omitempty,gte=0"`
	MaxDurationMinutes *int    `json:"max_duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Aircraft           *string `json:"aircraft,omitempty"`
	DepartureTimeStart *string `json:"departure_time_start,omitempty" validate:"omitempty,datetime=15:04"`
	DepartureTimeEnd   *string `json:"departure_time_end,omitempty" validate:"omitempty,datetime=15:04"`
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

var AllowedSortField = map[string]bool{
	"departure_time": true,
	"price":          true,
	"duration":       true,
	"best":           true,
}

type Metadata struct {
	TotalResults  int  `json:"total_results"`
	ReturnResults int  `json:"return_results"`
	SearchTimeMs  int  `json:"search_time_ms"`
	CacheHit      bool `json:"cache_hit"`
}

// Listing is the unfiltered result of one search, cached so that a booking
// started from it sees the same flights.
type Listing struct {
	Outbound []FlightOffer `json:"outbound"`
	Return   []FlightOffer `json:"return,omitempty"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Outbound       []FlightOffer  `json:"outbound"`
	Return         []FlightOffer  `json:"return,omitempty"`
	FareTiers      []FareTierInfo `json:"fare_tiers"`
}
