package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

// Creates an order with its tickets atomically. Every spec is validated
// against the train layout before the first write; the unique index on
// (journey, cargo, seat) is the final arbiter under concurrent bookings,
// and a violation rolls the whole order back as DuplicateSeatError.
// userID always comes from the authenticated caller, never from the body.
func CreateOrder(ctx context.Context, db *sqlx.DB, userID uint, specs []forms.TicketSpecForm) (views.OrderView, error) {
	if len(specs) == 0 {
		return views.OrderView{}, models.ErrEmptyOrder
	}

	trains := make(map[uint]models.Train, len(specs))
	for _, spec := range specs {
		if _, ok := trains[spec.Journey]; ok {
			continue
		}
		train, err := models.GetTrainByJourneyID(db, spec.Journey)
		if err != nil {
			return views.OrderView{}, err
		}
		trains[spec.Journey] = train
	}

	for _, spec := range specs {
		if err := models.ValidateTicket(spec.Cargo, spec.Seat, trains[spec.Journey]); err != nil {
			return views.OrderView{}, err
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return views.OrderView{}, fmt.Errorf("beginTx: %w", err)
	}

	order := models.Order{CreatedAt: time.Now().UTC(), UserID: userID}
	if err := models.InsertOrder(tx, &order); err != nil {
		tx.Rollback()
		return views.OrderView{}, err
	}

	ticketViews := make([]views.TicketView, 0, len(specs))
	for _, spec := range specs {
		ticket := models.Ticket{
			Cargo:     spec.Cargo,
			Seat:      spec.Seat,
			JourneyID: spec.Journey,
			OrderID:   order.ID,
		}
		if err := models.InsertTicket(tx, &ticket); err != nil {
			tx.Rollback()
			return views.OrderView{}, err
		}
		ticketViews = append(ticketViews, views.TicketView{
			ID:      ticket.ID,
			Cargo:   ticket.Cargo,
			Seat:    ticket.Seat,
			Journey: ticket.JourneyID,
		})
	}

	if err := tx.Commit(); err != nil {
		return views.OrderView{}, fmt.Errorf("commitTx: %w", err)
	}

	return views.OrderView{
		ID:        order.ID,
		Tickets:   ticketViews,
		CreatedAt: order.CreatedAt,
	}, nil
}

// One page of the caller's orders with tickets and their journey list
// projections nested.
func ListOrders(db *sqlx.DB, userID uint, limit, offset int) (views.OrderPageView, error) {
	count, err := models.CountOrdersByUser(db, userID)
	if err != nil {
		return views.OrderPageView{}, fmt.Errorf("countOrders: %w", err)
	}

	orders, err := models.ListOrdersByUser(db, userID, limit, offset)
	if err != nil {
		return views.OrderPageView{}, fmt.Errorf("listOrders: %w", err)
	}

	orderIDs := make([]uint, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	ticketsByOrder, err := models.TicketsByOrderIDs(db, orderIDs)
	if err != nil {
		return views.OrderPageView{}, fmt.Errorf("loadTickets: %w", err)
	}

	journeyIDSet := make(map[uint]struct{})
	for _, tickets := range ticketsByOrder {
		for _, ticket := range tickets {
			journeyIDSet[ticket.JourneyID] = struct{}{}
		}
	}
	journeyIDs := make([]uint, 0, len(journeyIDSet))
	for id := range journeyIDSet {
		journeyIDs = append(journeyIDs, id)
	}

	journeyRows, err := models.JourneyRowsByIDs(db, journeyIDs)
	if err != nil {
		return views.OrderPageView{}, fmt.Errorf("loadJourneys: %w", err)
	}

	crewNames, err := models.CrewNamesByJourneyIDs(db, journeyIDs)
	if err != nil {
		return views.OrderPageView{}, fmt.Errorf("loadCrewNames: %w", err)
	}

	journeyViews := make(map[uint]views.JourneyListView, len(journeyRows))
	for _, row := range journeyRows {
		journeyViews[row.ID] = journeyListView(row, crewNames[row.ID])
	}

	results := make([]views.OrderListView, len(orders))
	for i, order := range orders {
		tickets := ticketsByOrder[order.ID]
		ticketViews := make([]views.TicketListView, len(tickets))
		for j, ticket := range tickets {
			ticketViews[j] = views.TicketListView{
				ID:      ticket.ID,
				Cargo:   ticket.Cargo,
				Seat:    ticket.Seat,
				Journey: journeyViews[ticket.JourneyID],
			}
		}
		results[i] = views.OrderListView{
			ID:        order.ID,
			Tickets:   ticketViews,
			CreatedAt: order.CreatedAt,
		}
	}

	return views.OrderPageView{Count: count, Results: results}, nil
}
