package controllers

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

// Journey list with computed availability and crew names.
func ListJourneys(db *sqlx.DB, filter models.JourneyFilter) ([]views.JourneyListView, error) {
	rows, err := models.ListJourneys(db, filter)
	if err != nil {
		return nil, fmt.Errorf("listJourneys: %w", err)
	}

	journeyIDs := make([]uint, len(rows))
	for i, row := range rows {
		journeyIDs[i] = row.ID
	}

	crewNames, err := models.CrewNamesByJourneyIDs(db, journeyIDs)
	if err != nil {
		return nil, fmt.Errorf("loadCrewNames: %w", err)
	}

	list := make([]views.JourneyListView, len(rows))
	for i, row := range rows {
		list[i] = journeyListView(row, crewNames[row.ID])
	}
	return list, nil
}

func journeyListView(row models.JourneyRow, crewNames []string) views.JourneyListView {
	if crewNames == nil {
		crewNames = []string{}
	}
	return views.JourneyListView{
		ID:               row.ID,
		Route:            row.RouteID,
		TrainName:        row.TrainName,
		TrainType:        row.TrainType,
		TrainCargoNum:    row.TrainCargoNum,
		PlacesInCargo:    row.PlacesInCargo,
		Crews:            crewNames,
		DepartureTime:    row.DepartureTime,
		ArrivalTime:      row.ArrivalTime,
		TicketsAvailable: row.TicketsAvailable,
	}
}

// Fully nested journey detail, including the taken-seat map.
func GetJourneyDetail(db *sqlx.DB, id uint) (views.JourneyDetailView, error) {
	journey, err := models.GetJourneyByID(db, id)
	if err != nil {
		return views.JourneyDetailView{}, err
	}

	route, err := models.GetRouteByID(db, journey.RouteID)
	if err != nil {
		return views.JourneyDetailView{}, fmt.Errorf("loadRoute: %w", err)
	}

	train, err := models.GetTrainByID(db, journey.TrainID)
	if err != nil {
		return views.JourneyDetailView{}, fmt.Errorf("loadTrain: %w", err)
	}

	crews, err := models.CrewsByJourneyID(db, journey.ID)
	if err != nil {
		return views.JourneyDetailView{}, fmt.Errorf("loadCrews: %w", err)
	}

	takenSeats, err := models.TakenSeatsByJourneyID(db, journey.ID)
	if err != nil {
		return views.JourneyDetailView{}, fmt.Errorf("loadTakenSeats: %w", err)
	}

	crewViews := make([]views.CrewView, len(crews))
	for i, crew := range crews {
		crewViews[i] = views.CrewView{
			ID:        crew.ID,
			FirstName: crew.FirstName,
			LastName:  crew.LastName,
			FullName:  crew.FullName(),
		}
	}

	seatViews := make([]views.SeatView, len(takenSeats))
	for i, seat := range takenSeats {
		seatViews[i] = views.SeatView(seat)
	}

	return views.JourneyDetailView{
		ID:    journey.ID,
		Route: RouteView(route),
		Train: views.TrainDetailView{
			ID:            train.ID,
			Name:          train.Name,
			CargoNum:      train.CargoNum,
			PlacesInCargo: train.PlacesInCargo,
			Capacity:      train.Capacity(),
			TrainType: views.TrainTypeView{
				ID:   train.TrainTypeID,
				Name: train.TrainTypeName,
			},
		},
		Crews:         crewViews,
		TakenSeats:    seatViews,
		DepartureTime: journey.DepartureTime,
		ArrivalTime:   journey.ArrivalTime,
	}, nil
}

func RouteView(route models.Route) views.RouteView {
	return views.RouteView{
		ID:          route.ID,
		Source:      views.StationView(route.Source),
		Destination: views.StationView(route.Destination),
		Distance:    route.Distance,
	}
}
