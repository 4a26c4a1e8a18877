package models

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Train struct {
	ID            uint   `db:"id"`
	Name          string `db:"name"`
	CargoNum      int    `db:"cargo_num"`
	PlacesInCargo int    `db:"places_in_cargo"`
	TrainTypeID   uint   `db:"train_type_id"`
	TrainTypeName string `db:"train_type_name"`
}

// Total seat count over all cargos. Derived, never stored.
func (t Train) Capacity() int {
	return t.CargoNum * t.PlacesInCargo
}

const trainSelect = `
SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id,
	tt.name AS train_type_name
FROM trains t
INNER JOIN train_types tt ON tt.id = t.train_type_id
`

func GetTrainByID(db *sqlx.DB, id uint) (Train, error) {
	var train Train
	err := db.Get(&train, trainSelect+`WHERE t.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Train{}, ErrNotFound
	}
	return train, err
}

// The train operating the given journey. ErrNotFound covers a missing
// journey ID as well.
func GetTrainByJourneyID(db *sqlx.DB, journeyID uint) (Train, error) {
	var train Train
	err := db.Get(&train, `
SELECT t.id, t.name, t.cargo_num, t.places_in_cargo, t.train_type_id,
	tt.name AS train_type_name
FROM journeys j
INNER JOIN trains t ON t.id = j.train_id
INNER JOIN train_types tt ON tt.id = t.train_type_id
WHERE j.id = ?
`, journeyID)
	if errors.Is(err, sql.ErrNoRows) {
		return Train{}, ErrNotFound
	}
	return train, err
}

func ListTrains(db *sqlx.DB) ([]Train, error) {
	trains := make([]Train, 0, 10)
	if err := db.Select(&trains, trainSelect+`ORDER BY t.name, t.id`); err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return trains, nil
}

func CreateTrain(db *sqlx.DB, train *Train) error {
	res, err := db.Exec(
		`INSERT INTO trains (name, cargo_num, places_in_cargo, train_type_id) VALUES (?, ?, ?, ?)`,
		train.Name, train.CargoNum, train.PlacesInCargo, train.TrainTypeID,
	)
	if err != nil {
		return fmt.Errorf("insertTrain: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	train.ID = uint(id)
	return nil
}

func CheckExistsTrainID(db *sqlx.DB, id uint) error {
	var exists bool
	err := db.QueryRow(`SELECT COUNT(*) = 1 FROM trains WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
