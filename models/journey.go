package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

type Journey struct {
	ID            uint      `db:"id"`
	RouteID       uint      `db:"route_id"`
	TrainID       uint      `db:"train_id"`
	DepartureTime time.Time `db:"departure_time"`
	ArrivalTime   time.Time `db:"arrival_time"`
}

// One row of the journey list projection: train fields flattened and the
// seat availability aggregate computed at query time.
type JourneyRow struct {
	Journey
	TrainName        string `db:"train_name"`
	TrainType        string `db:"train_type"`
	TrainCargoNum    int    `db:"train_cargo_num"`
	PlacesInCargo    int    `db:"places_in_cargo"`
	TicketsAvailable int    `db:"tickets_available"`
}

// Optional journey search filters, combined with AND. Nil means no
// constraint.
type JourneyFilter struct {
	Date    *time.Time
	TrainID *uint
	RouteID *uint
}

const journeyRowSelect = `
SELECT j.id, j.route_id, j.train_id, j.departure_time, j.arrival_time,
	t.name AS train_name, tt.name AS train_type,
	t.cargo_num AS train_cargo_num, t.places_in_cargo,
	t.cargo_num * t.places_in_cargo - COUNT(tk.id) AS tickets_available
FROM journeys j
INNER JOIN trains t ON t.id = j.train_id
INNER JOIN train_types tt ON tt.id = t.train_type_id
LEFT JOIN tickets tk ON tk.journey_id = j.id
`

const journeyRowSuffix = `GROUP BY j.id
ORDER BY j.departure_time DESC, j.id ASC`

func ListJourneys(db *sqlx.DB, filter JourneyFilter) ([]JourneyRow, error) {
	conds := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Date != nil {
		conds = append(conds, "DATE(j.departure_time) = ?")
		args = append(args, filter.Date.Format("2006-01-02"))
	}
	if filter.TrainID != nil {
		conds = append(conds, "j.train_id = ?")
		args = append(args, *filter.TrainID)
	}
	if filter.RouteID != nil {
		conds = append(conds, "j.route_id = ?")
		args = append(args, *filter.RouteID)
	}

	query := journeyRowSelect
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += journeyRowSuffix

	rows := make([]JourneyRow, 0, 10)
	if err := db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return rows, nil
}

// Same projection restricted to the given IDs, for nesting journeys under
// order tickets. Result keeps the departure-descending order.
func JourneyRowsByIDs(db *sqlx.DB, ids []uint) ([]JourneyRow, error) {
	if len(ids) == 0 {
		return []JourneyRow{}, nil
	}

	query, args, err := sqlx.In(
		journeyRowSelect+"WHERE j.id IN (?)\n"+journeyRowSuffix, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("buildQuery: %w", err)
	}

	rows := make([]JourneyRow, 0, len(ids))
	if err := db.Select(&rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return rows, nil
}

func GetJourneyByID(db *sqlx.DB, id uint) (Journey, error) {
	var journey Journey
	err := db.Get(&journey, `
SELECT id, route_id, train_id, departure_time, arrival_time
FROM journeys WHERE id = ?
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Journey{}, ErrNotFound
	}
	return journey, err
}

func CreateJourney(db *sqlx.DB, journey *Journey, crewIDs []uint) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("beginTx: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO journeys (route_id, train_id, departure_time, arrival_time) VALUES (?, ?, ?, ?)`,
		journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insertJourney: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("lastInsertID: %w", err)
	}
	journey.ID = uint(id)

	if err := replaceJourneyCrews(tx, journey.ID, crewIDs); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Full update. crewIDs nil keeps the stored crew set (PATCH without a
// crews field); non-nil replaces it.
func UpdateJourney(db *sqlx.DB, journey Journey, crewIDs []uint) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("beginTx: %w", err)
	}

	res, err := tx.Exec(
		`UPDATE journeys SET route_id = ?, train_id = ?, departure_time = ?, arrival_time = ? WHERE id = ?`,
		journey.RouteID, journey.TrainID, journey.DepartureTime, journey.ArrivalTime, journey.ID,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("updateJourney: %w", err)
	}
	if _, err := res.RowsAffected(); err != nil {
		tx.Rollback()
		return fmt.Errorf("rowsAffected: %w", err)
	}

	if crewIDs != nil {
		if _, err := tx.Exec(`DELETE FROM journey_crews WHERE journey_id = ?`, journey.ID); err != nil {
			tx.Rollback()
			return fmt.Errorf("deleteJourneyCrews: %w", err)
		}
		if err := replaceJourneyCrews(tx, journey.ID, crewIDs); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func replaceJourneyCrews(tx *sqlx.Tx, journeyID uint, crewIDs []uint) error {
	for _, crewID := range uniqueIDs(crewIDs) {
		_, err := tx.Exec(
			`INSERT INTO journey_crews (journey_id, crew_id) VALUES (?, ?)`,
			journeyID, crewID,
		)
		if err != nil {
			return fmt.Errorf("insertJourneyCrew: %w", err)
		}
	}
	return nil
}

func DeleteJourney(db *sqlx.DB, id uint) error {
	res, err := db.Exec(`DELETE FROM journeys WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleteJourney: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rowsAffected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
