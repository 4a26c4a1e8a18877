package forms

import (
	"errors"
	"time"
)

type StationForm struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RouteForm struct {
	Source      uint `json:"source" binding:"required"`
	Destination uint `json:"destination" binding:"required"`
	Distance    int  `json:"distance" binding:"required,gt=0"`
}

// A route between a station and itself is meaningless.
func (f RouteForm) Validate() error {
	if f.Source == f.Destination {
		return errors.New("source and destination stations must be different")
	}
	return nil
}

type TrainTypeForm struct {
	Name string `json:"name" binding:"required"`
}

type TrainForm struct {
	Name          string `json:"name" binding:"required"`
	CargoNum      int    `json:"cargo_num" binding:"required,gt=0"`
	PlacesInCargo int    `json:"places_in_cargo" binding:"required,gt=0"`
	TrainType     uint   `json:"train_type" binding:"required"`
}

type CrewForm struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type JourneyForm struct {
	Route         uint      `json:"route" binding:"required"`
	Train         uint      `json:"train" binding:"required"`
	Crews         []uint    `json:"crews"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
}

func (f JourneyForm) Validate() error {
	if !f.ArrivalTime.After(f.DepartureTime) {
		return errors.New("arrival_time must be after departure_time")
	}
	return nil
}

// Partial update: absent fields keep the stored values. A present crews
// field replaces the whole crew set.
type JourneyPatchForm struct {
	Route         *uint      `json:"route"`
	Train         *uint      `json:"train"`
	Crews         *[]uint    `json:"crews"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
}

type TicketSpecForm struct {
	Cargo   int  `json:"cargo"`
	Seat    int  `json:"seat"`
	Journey uint `json:"journey" binding:"required"`
}

type OrderForm struct {
	Tickets []TicketSpecForm `json:"tickets"`
}
