package service

import (
	"context"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
)

type ContentStore interface {
	Airports() []dto.Airport
	Destinations() []dto.Destination
	Offers() []dto.Offer
}

type ContentService struct {
	Content ContentStore
}

func NewContentService(content ContentStore) *ContentService {
	return &ContentService{Content: content}
}

func (s *ContentService) Airports(_ context.Context) (dto.AirportsResponse, error) {
	return dto.AirportsResponse{Airports: s.Content.Airports()}, nil
}

func (s *ContentService) Destinations(_ context.Context) (dto.DestinationsResponse, error) {
	return dto.DestinationsResponse{Destinations: s.Content.Destinations()}, nil
}

func (s *ContentService) Offers(_ context.Context) (dto.OffersResponse, error) {
	return dto.OffersResponse{Offers: s.Content.Offers()}, nil
}
