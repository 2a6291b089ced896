package dto

type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Destination struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	PriceFrom   int    `json:"price_from"`
}

type Offer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Price       int    `json:"price"`
	ValidUntil  string `json:"valid_until"`
}

type AirportsResponse struct {
	Airports []Airport `json:"airports"`
}

type DestinationsResponse struct {
	Destinations []Destination `json:"destinations"`
}

type OffersResponse struct {
	Offers []Offer `json:"offers"`
}
