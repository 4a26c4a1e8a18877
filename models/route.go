package models

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Route struct {
	ID            uint    `db:"id"`
	SourceID      uint    `db:"source_id"`
	DestinationID uint    `db:"destination_id"`
	Distance      int     `db:"distance"`
	Source        Station `db:"source"`
	Destination   Station `db:"destination"`
}

const routeSelect = `
SELECT r.id, r.source_id, r.destination_id, r.distance,
	src.id AS "source.id", src.name AS "source.name",
	src.latitude AS "source.latitude", src.longitude AS "source.longitude",
	dst.id AS "destination.id", dst.name AS "destination.name",
	dst.latitude AS "destination.latitude", dst.longitude AS "destination.longitude"
FROM routes r
INNER JOIN stations src ON src.id = r.source_id
INNER JOIN stations dst ON dst.id = r.destination_id
`

func GetRouteByID(db *sqlx.DB, id uint) (Route, error) {
	var route Route
	err := db.Get(&route, routeSelect+`WHERE r.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Route{}, ErrNotFound
	}
	return route, err
}

func ListRoutes(db *sqlx.DB) ([]Route, error) {
	routes := make([]Route, 0, 10)
	if err := db.Select(&routes, routeSelect+`ORDER BY r.id`); err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return routes, nil
}

func CreateRoute(db *sqlx.DB, route *Route) error {
	res, err := db.Exec(
		`INSERT INTO routes (source_id, destination_id, distance) VALUES (?, ?, ?)`,
		route.SourceID, route.DestinationID, route.Distance,
	)
	if err != nil {
		return fmt.Errorf("insertRoute: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	route.ID = uint(id)
	return nil
}

func CheckExistsRouteID(db *sqlx.DB, id uint) error {
	var exists bool
	err := db.QueryRow(`SELECT COUNT(*) = 1 FROM routes WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
