//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flightstatus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFlightStatusService_GetFlightStatus(t *testing.T) {
	type mockField struct {
		generator *MockStatusGenerator
		recent    *MockRecentSearcher
	}

	snapshot := dto.FlightStatusSnapshot{FlightNumber: "BG147", Status: dto.StatusBoarding, ProgressPercentage: 10}

	getFlightStatusRequest := func(
		req dto.FlightStatusRequest,
		setupMock func(m mockField),
		want dto.FlightStatusResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				generator: NewMockStatusGenerator(t),
				recent:    NewMockRecentSearcher(t),
			}
			setupMock(m)

			s := NewFlightStatusService(m.generator, m.recent, newTestSimulator(0))
			s.Now = func() time.Time { return testNow }

			got, err := s.GetFlightStatus(context.Background(), req)

			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Fatalf("expected error %v, got %v", wantErr, err)
				}
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetFlightStatus() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	byNumber := dto.FlightStatusRequest{
		ClientRef:    dto.ClientRef{ClientID: "client-1"},
		FlightNumber: "BG147",
		Date:         "2026-04-02",
	}
	numberSearch := dto.RecentSearch{Type: dto.SearchByFlightNumber, Value: "BG147", Date: "2026-04-02", Timestamp: testNow}

	t.Run("by_flight_number", getFlightStatusRequest(
		byNumber,
		func(m mockField) {
			m.generator.On("Generate", byNumber).Return(snapshot, nil)
			m.recent.On("Add", mock.Anything, "client-1", numberSearch).Return([]dto.RecentSearch{numberSearch}, nil)
		},
		dto.FlightStatusResponse{Flight: snapshot, RecentSearches: []dto.RecentSearch{numberSearch}},
		nil,
	))

	byRoute := dto.FlightStatusRequest{
		ClientRef:   dto.ClientRef{ClientID: "client-1"},
		Origin:      "DAC",
		Destination: "DXB",
		Date:        "2026-04-02",
	}
	routeSearch := dto.RecentSearch{Type: dto.SearchByRoute, From: "DAC", To: "DXB", Date: "2026-04-02", Timestamp: testNow}

	t.Run("by_route", getFlightStatusRequest(
		byRoute,
		func(m mockField) {
			m.generator.On("Generate", byRoute).Return(snapshot, nil)
			m.recent.On("Add", mock.Anything, "client-1", routeSearch).
				Return([]dto.RecentSearch{routeSearch, numberSearch}, nil)
		},
		dto.FlightStatusResponse{Flight: snapshot, RecentSearches: []dto.RecentSearch{routeSearch, numberSearch}},
		nil,
	))

	t.Run("history_unavailable", getFlightStatusRequest(
		byNumber,
		func(m mockField) {
			m.generator.On("Generate", byNumber).Return(snapshot, nil)
			m.recent.On("Add", mock.Anything, "client-1", numberSearch).Return(nil, errors.New("connection refused"))
		},
		dto.FlightStatusResponse{Flight: snapshot, RecentSearches: []dto.RecentSearch{}},
		nil,
	))

	t.Run("invalid_query", getFlightStatusRequest(
		byNumber,
		func(m mockField) {
			m.generator.On("Generate", byNumber).Return(dto.FlightStatusSnapshot{},
				flightstatus.ErrInvalidStatusQuery)
		},
		dto.FlightStatusResponse{},
		flightstatus.ErrInvalidStatusQuery,
	))
}

func TestFlightStatusService_RecentSearches(t *testing.T) {
	recent := NewMockRecentSearcher(t)
	searches := []dto.RecentSearch{{Type: dto.SearchByFlightNumber, Value: "BG147", Date: "2026-04-02"}}
	recent.On("List", mock.Anything, "client-1").Return(searches, nil)

	got, err := NewFlightStatusService(NewMockStatusGenerator(t), recent, newTestSimulator(0)).
		RecentSearches(context.Background(), dto.ClientRef{ClientID: "client-1"})

	require.NoError(t, err)
	assert.Equal(t, searches, got.Searches)
}
