package dto

import (
	"net/http"
	"strings"
	"time"
)

type FlightStatus string

const (
	StatusOnTime   FlightStatus = "on_time"
	StatusDelayed  FlightStatus = "delayed"
	StatusBoarding FlightStatus = "boarding"
	StatusInAir    FlightStatus = "in_air"
	StatusLanded   FlightStatus = "landed"
	StatusArrived  FlightStatus = "arrived"
)

var FlightStatuses = []FlightStatus{
	StatusOnTime, StatusDelayed, StatusBoarding, StatusInAir, StatusLanded, StatusArrived,
}

type FlightStatusSnapshot struct {
	FlightNumber       string       `json:"flight_number"`
	Status             FlightStatus `json:"status"`
	Origin             string       `json:"origin"`
	Destination        string       `json:"destination"`
	OriginAirport      string       `json:"origin_airport"`
	DestinationAirport string       `json:"destination_airport"`
	Date               string       `json:"date"`
	ScheduledDeparture string       `json:"scheduled_departure"`
	ActualDeparture    string       `json:"actual_departure"`
	ScheduledArrival   string       `json:"scheduled_arrival"`
	ActualArrival      string       `json:"actual_arrival"`
	IsNextDay          bool         `json:"is_next_day"`
	DelayMinutes       int          `json:"delay_minutes"`
	Aircraft           string       `json:"aircraft"`
	Duration           string       `json:"duration"`
	ProgressPercentage int          `json:"progress_percentage"`
	DepartureTerminal  string       `json:"departure_terminal"`
	DepartureGate      string       `json:"departure_gate"`
	ArrivalTerminal    string       `json:"arrival_terminal"`
	ArrivalGate        string       `json:"arrival_gate"`
	FlightPath         []Coordinate `json:"flight_path,omitempty"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

const (
	SearchByFlightNumber = "flight_number"
	SearchByRoute        = "route"
)

type FlightStatusRequest struct {
	ClientRef
	FlightNumber string `json:"flight_number,omitempty" validate:"omitempty,alphanum,min=3,max=8"`
	Origin       string `json:"origin,omitempty" validate:"omitempty,len=3,alpha"`
	Destination  string `json:"destination,omitempty" validate:"omitempty,len=3,alpha"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Mode tells whether the lookup is by flight number or by route.
func (f FlightStatusRequest) Mode() string {
	if f.FlightNumber != "" {
		return SearchByFlightNumber
	}
	return SearchByRoute
}

func (f *FlightStatusRequest) Bind(_ *http.Request) error {
	f.FlightNumber = strings.ToUpper(strings.TrimSpace(f.FlightNumber))
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))

	if err := validateRequest(f); err != nil {
		return err
	}

	if f.FlightNumber == "" && (f.Origin == "" || f.Destination == "") {
		return ErrInvalidRequest.WithMessage("either flight_number or origin and destination is required")
	}

	return nil
}

// RecentSearch is one entry of a client's flight status history.
type RecentSearch struct {
	Type      string    `json:"type"`
	Value     string    `json:"value,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// Key identifies searches that replace each other in the history.
func (r RecentSearch) Key() string {
	if r.Type == SearchByFlightNumber {
		return r.Type + ":" + r.Value + ":" + r.Date
	}
	return r.Type + ":" + r.From + ":" + r.To + ":" + r.Date
}

type FlightStatusResponse struct {
	Flight         FlightStatusSnapshot `json:"flight"`
	RecentSearches []RecentSearch       `json:"recent_searches"`
}

type RecentSearchesResponse struct {
	Searches []RecentSearch `json:"searches"`
}
