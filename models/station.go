package models

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Station struct {
	ID        uint    `db:"id"`
	Name      string  `db:"name"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

func ListStations(db *sqlx.DB) ([]Station, error) {
	stations := make([]Station, 0, 10)
	err := db.Select(&stations,
		`SELECT id, name, latitude, longitude FROM stations ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return stations, nil
}

func CreateStation(db *sqlx.DB, station *Station) error {
	res, err := db.Exec(
		`INSERT INTO stations (name, latitude, longitude) VALUES (?, ?, ?)`,
		station.Name, station.Latitude, station.Longitude,
	)
	if err != nil {
		return fmt.Errorf("insertStation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	station.ID = uint(id)
	return nil
}

// Both IDs must reference existing stations.
func CheckExistsStationIDs(db *sqlx.DB, sourceID, destinationID uint) error {
	var result bool
	err := db.QueryRow(
		`SELECT COUNT(*) = 2 FROM stations WHERE id IN (?, ?)`,
		sourceID, destinationID,
	).Scan(&result)
	if err != nil {
		return err
	}

	if !result {
		return ErrNotFound
	}
	return nil
}
