package content

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

//go:embed data.json
var defaultDocument []byte

type document struct {
	Airports     []dto.Airport     `json:"airports"`
	Destinations []dto.Destination `json:"destinations"`
	Offers       []dto.Offer       `json:"offers"`
}

// Store is the read-only content lookup loaded once at startup.
type Store struct {
	airports     []dto.Airport
	airportIndex map[string]dto.Airport
	destinations []dto.Destination
	offers       []dto.Offer
}

// NewDefaultStore loads the content bundled with the binary.
func NewDefaultStore() (*Store, error) {
	return NewStore(defaultDocument)
}

// NewStore parses a content document.
func NewStore(data []byte) (*Store, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content document: %w", err)
	}

	index := make(map[string]dto.Airport, len(doc.Airports))
	for _, airport := range doc.Airports {
		if _, ok := index[airport.Code]; ok {
			return nil, fmt.Errorf("duplicate airport code %s", airport.Code)
		}
		index[airport.Code] = airport
	}

	return &Store{
		airports:     doc.Airports,
		airportIndex: index,
		destinations: doc.Destinations,
		offers:       doc.Offers,
	}, nil
}

func (s *Store) Airport(code string) (dto.Airport, bool) {
	airport, ok := s.airportIndex[code]
	return airport, ok
}

// AirportName returns the airport's full name, the code itself when unknown.
func (s *Store) AirportName(code string) string {
	if airport, ok := s.airportIndex[code]; ok {
		return airport.Name
	}
	return code
}

func (s *Store) Airports() []dto.Airport {
	return append([]dto.Airport(nil), s.airports...)
}

func (s *Store) Destinations() []dto.Destination {
	return append([]dto.Destination(nil), s.destinations...)
}

func (s *Store) Offers() []dto.Offer {
	return append([]dto.Offer(nil), s.offers...)
}
