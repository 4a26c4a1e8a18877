package models

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Ticket struct {
	ID        uint `db:"id"`
	Cargo     int  `db:"cargo"`
	Seat      int  `db:"seat"`
	JourneyID uint `db:"journey_id"`
	OrderID   uint `db:"order_id"`
}

// A booked (cargo, seat) pair, for the journey seat map.
type SeatRef struct {
	Cargo int `db:"cargo"`
	Seat  int `db:"seat"`
}

// Checks the pair against the physical layout of the train. Runs before
// every ticket write, standalone or inside an order.
func ValidateTicket(cargo, seat int, train Train) error {
	for _, check := range []struct {
		value     int
		field     string
		trainAttr string
		limit     int
	}{
		{cargo, "cargo", "cargo_num", train.CargoNum},
		{seat, "seat", "places_in_cargo", train.PlacesInCargo},
	} {
		if check.value < 1 || check.value > check.limit {
			return &RangeError{
				Field:     check.field,
				TrainAttr: check.trainAttr,
				Min:       1,
				Max:       check.limit,
			}
		}
	}
	return nil
}

// Insert inside an open transaction. A duplicate-key failure on the
// (journey, cargo, seat) unique index comes back as DuplicateSeatError.
func InsertTicket(tx *sqlx.Tx, ticket *Ticket) error {
	res, err := tx.Exec(
		`INSERT INTO tickets (cargo, seat, journey_id, order_id) VALUES (?, ?, ?, ?)`,
		ticket.Cargo, ticket.Seat, ticket.JourneyID, ticket.OrderID,
	)
	if err != nil {
		if IsDuplicateKey(err) {
			return &DuplicateSeatError{
				JourneyID: ticket.JourneyID,
				Cargo:     ticket.Cargo,
				Seat:      ticket.Seat,
			}
		}
		return fmt.Errorf("insertTicket: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	ticket.ID = uint(id)
	return nil
}

// Standalone save: validates against the journey's train, then inserts in
// its own transaction.
func CreateTicket(db *sqlx.DB, ticket *Ticket) error {
	train, err := GetTrainByJourneyID(db, ticket.JourneyID)
	if err != nil {
		return err
	}
	if err := ValidateTicket(ticket.Cargo, ticket.Seat, train); err != nil {
		return err
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("beginTx: %w", err)
	}
	if err := InsertTicket(tx, ticket); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Booked seats of a journey, ordered (cargo, seat).
func TakenSeatsByJourneyID(db *sqlx.DB, journeyID uint) ([]SeatRef, error) {
	seats := make([]SeatRef, 0, 10)
	err := db.Select(&seats,
		`SELECT cargo, seat FROM tickets WHERE journey_id = ? ORDER BY cargo, seat`,
		journeyID,
	)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return seats, nil
}

// Tickets keyed by order ID, ordered (cargo, seat) within each order.
func TicketsByOrderIDs(db *sqlx.DB, orderIDs []uint) (map[uint][]Ticket, error) {
	tickets := make(map[uint][]Ticket, len(orderIDs))
	if len(orderIDs) == 0 {
		return tickets, nil
	}

	query, args, err := sqlx.In(`
SELECT id, cargo, seat, journey_id, order_id
FROM tickets
WHERE order_id IN (?)
ORDER BY order_id, cargo, seat
`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("buildQuery: %w", err)
	}

	rows := make([]Ticket, 0, len(orderIDs))
	if err := db.Select(&rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}

	for _, ticket := range rows {
		tickets[ticket.OrderID] = append(tickets[ticket.OrderID], ticket)
	}
	return tickets, nil
}
