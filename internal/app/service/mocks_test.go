package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// MockListingCacher is a mock type for the ListingCacher type
type MockListingCacher struct {
	mock.Mock
}

// AcquireLock provides a mock function with given fields: ctx, key, timeout
func (_m *MockListingCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	ret := _m.Called(ctx, key, timeout)

	return ret.Bool(0), ret.Error(1)
}

// GetCacheKey provides a mock function with given fields: req
func (_m *MockListingCacher) GetCacheKey(req dto.SearchCriteria) string {
	ret := _m.Called(req)

	return ret.String(0)
}

// GetListing provides a mock function with given fields: ctx, key
func (_m *MockListingCacher) GetListing(ctx context.Context, key string) (dto.Listing, error) {
	ret := _m.Called(ctx, key)

	var r0 dto.Listing
	if rf, ok := ret.Get(0).(func(context.Context, string) dto.Listing); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(dto.Listing)
	}

	return r0, ret.Error(1)
}

// GetLockKey provides a mock function with given fields: req
func (_m *MockListingCacher) GetLockKey(req dto.SearchCriteria) string {
	ret := _m.Called(req)

	return ret.String(0)
}

// ReleaseLock provides a mock function with given fields: ctx, key
func (_m *MockListingCacher) ReleaseLock(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

// SetListing provides a mock function with given fields: ctx, key, listing, expiration
func (_m *MockListingCacher) SetListing(ctx context.Context, key string, listing dto.Listing, expiration time.Duration) error {
	ret := _m.Called(ctx, key, listing, expiration)

	return ret.Error(0)
}

// NewMockListingCacher creates a new instance of MockListingCacher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockListingCacher(t mockT) *MockListingCacher {
	m := &MockListingCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockFlightSearcher is a mock type for the FlightSearcher type
type MockFlightSearcher struct {
	mock.Mock
}

// Search provides a mock function with given fields: criteria
func (_m *MockFlightSearcher) Search(criteria dto.SearchCriteria) ([]dto.FlightOffer, []dto.FlightOffer, error) {
	ret := _m.Called(criteria)

	var r0, r1 []dto.FlightOffer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dto.FlightOffer)
	}
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]dto.FlightOffer)
	}

	return r0, r1, ret.Error(2)
}

// ValidateSearch provides a mock function with given fields: criteria
func (_m *MockFlightSearcher) ValidateSearch(criteria dto.SearchCriteria) (time.Time, time.Time, error) {
	ret := _m.Called(criteria)

	var r0, r1 time.Time
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Time)
	}
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(time.Time)
	}

	return r0, r1, ret.Error(2)
}

// NewMockFlightSearcher creates a new instance of MockFlightSearcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFlightSearcher(t mockT) *MockFlightSearcher {
	m := &MockFlightSearcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockListingProvider is a mock type for the ListingProvider type
type MockListingProvider struct {
	mock.Mock
}

// Listing provides a mock function with given fields: ctx, req
func (_m *MockListingProvider) Listing(ctx context.Context, req dto.SearchCriteria) (dto.Listing, dto.Metadata, error) {
	ret := _m.Called(ctx, req)

	return ret.Get(0).(dto.Listing), ret.Get(1).(dto.Metadata), ret.Error(2)
}

// NewMockListingProvider creates a new instance of MockListingProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockListingProvider(t mockT) *MockListingProvider {
	m := &MockListingProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockSessionStore is a mock type for the SessionStore type
type MockSessionStore[T any] struct {
	mock.Mock
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockSessionStore[T]) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// Load provides a mock function with given fields: ctx, id
func (_m *MockSessionStore[T]) Load(ctx context.Context, id string) (T, error) {
	ret := _m.Called(ctx, id)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}

	return r0, ret.Error(1)
}

// Lock provides a mock function with given fields: ctx, id
func (_m *MockSessionStore[T]) Lock(ctx context.Context, id string) (func(), error) {
	ret := _m.Called(ctx, id)

	var r0 func()
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(func())
	}

	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, id, session
func (_m *MockSessionStore[T]) Save(ctx context.Context, id string, session T) error {
	ret := _m.Called(ctx, id, session)

	return ret.Error(0)
}

// NewMockSessionStore creates a new instance of MockSessionStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSessionStore[T any](t mockT) *MockSessionStore[T] {
	m := &MockSessionStore[T]{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockStatusGenerator is a mock type for the StatusGenerator type
type MockStatusGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: req
func (_m *MockStatusGenerator) Generate(req dto.FlightStatusRequest) (dto.FlightStatusSnapshot, error) {
	ret := _m.Called(req)

	return ret.Get(0).(dto.FlightStatusSnapshot), ret.Error(1)
}

// NewMockStatusGenerator creates a new instance of MockStatusGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStatusGenerator(t mockT) *MockStatusGenerator {
	m := &MockStatusGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRecentSearcher is a mock type for the RecentSearcher type
type MockRecentSearcher struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, clientID, search
func (_m *MockRecentSearcher) Add(ctx context.Context, clientID string, search dto.RecentSearch) ([]dto.RecentSearch, error) {
	ret := _m.Called(ctx, clientID, search)

	var r0 []dto.RecentSearch
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dto.RecentSearch)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, clientID
func (_m *MockRecentSearcher) List(ctx context.Context, clientID string) ([]dto.RecentSearch, error) {
	ret := _m.Called(ctx, clientID)

	var r0 []dto.RecentSearch
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dto.RecentSearch)
	}

	return r0, ret.Error(1)
}

// NewMockRecentSearcher creates a new instance of MockRecentSearcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRecentSearcher(t mockT) *MockRecentSearcher {
	m := &MockRecentSearcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
