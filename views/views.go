package views

import "time"

// Error response body.
type ErrorView struct {
	Error string `json:"error"`
}

// Error response tagged with the offending input field.
type FieldErrorView struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type StationView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RouteView struct {
	ID          uint        `json:"id"`
	Source      StationView `json:"source"`
	Destination StationView `json:"destination"`
	Distance    int         `json:"distance"`
}

type TrainTypeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// List projection: train type flattened to its ID.
type TrainView struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	CargoNum      int    `json:"cargo_num"`
	PlacesInCargo int    `json:"places_in_cargo"`
	Capacity      int    `json:"capacity"`
	TrainType     uint   `json:"train_type"`
}

type TrainDetailView struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	CargoNum      int           `json:"cargo_num"`
	PlacesInCargo int           `json:"places_in_cargo"`
	Capacity      int           `json:"capacity"`
	TrainType     TrainTypeView `json:"train_type"`
}

type CrewView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// Write-echo projection returned by journey create/update.
type JourneyView struct {
	ID            uint      `json:"id"`
	Route         uint      `json:"route"`
	Train         uint      `json:"train"`
	Crews         []uint    `json:"crews"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// Reduced list projection: train fields flattened, crews as full names.
type JourneyListView struct {
	ID               uint      `json:"id"`
	Route            uint      `json:"route"`
	TrainName        string    `json:"train_name"`
	TrainType        string    `json:"train_type"`
	TrainCargoNum    int       `json:"train_cargo_num"`
	PlacesInCargo    int       `json:"places_in_cargo"`
	Crews            []string  `json:"crews"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

type SeatView struct {
	Cargo int `json:"cargo"`
	Seat  int `json:"seat"`
}

// Fully nested projection, including the seat map.
type JourneyDetailView struct {
	ID            uint            `json:"id"`
	Route         RouteView       `json:"route"`
	Train         TrainDetailView `json:"train"`
	Crews         []CrewView      `json:"crews"`
	TakenSeats    []SeatView      `json:"taken_seats"`
	DepartureTime time.Time       `json:"departure_time"`
	ArrivalTime   time.Time       `json:"arrival_time"`
}

type TicketView struct {
	ID      uint `json:"id"`
	Cargo   int  `json:"cargo"`
	Seat    int  `json:"seat"`
	Journey uint `json:"journey"`
}

// Order-list nesting: each ticket carries its journey list projection.
type TicketListView struct {
	ID      uint            `json:"id"`
	Cargo   int             `json:"cargo"`
	Seat    int             `json:"seat"`
	Journey JourneyListView `json:"journey"`
}

type OrderView struct {
	ID        uint         `json:"id"`
	Tickets   []TicketView `json:"tickets"`
	CreatedAt time.Time    `json:"created_at"`
}

type OrderListView struct {
	ID        uint             `json:"id"`
	Tickets   []TicketListView `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

// Page-number pagination envelope for order listing.
type OrderPageView struct {
	Count   int             `json:"count"`
	Results []OrderListView `json:"results"`
}
