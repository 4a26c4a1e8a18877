package models

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Crew struct {
	ID        uint   `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

func ListCrews(db *sqlx.DB) ([]Crew, error) {
	crews := make([]Crew, 0, 10)
	err := db.Select(&crews, `SELECT id, first_name, last_name FROM crews ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return crews, nil
}

func CreateCrew(db *sqlx.DB, crew *Crew) error {
	res, err := db.Exec(
		`INSERT INTO crews (first_name, last_name) VALUES (?, ?)`,
		crew.FirstName, crew.LastName,
	)
	if err != nil {
		return fmt.Errorf("insertCrew: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	crew.ID = uint(id)
	return nil
}

// All IDs must reference existing crew members. Repeated IDs count once.
func CheckExistsCrewIDs(db *sqlx.DB, ids []uint) error {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`SELECT COUNT(*) FROM crews WHERE id IN (?)`, unique)
	if err != nil {
		return fmt.Errorf("buildQuery: %w", err)
	}

	var count int
	if err := db.QueryRow(db.Rebind(query), args...).Scan(&count); err != nil {
		return err
	}
	if count != len(unique) {
		return ErrNotFound
	}
	return nil
}

// Order-preserving dedupe.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// Crew rows for a journey, linked through journey_crews.
func CrewsByJourneyID(db *sqlx.DB, journeyID uint) ([]Crew, error) {
	crews := make([]Crew, 0, 5)
	err := db.Select(&crews, `
SELECT c.id, c.first_name, c.last_name
FROM journey_crews jc
INNER JOIN crews c ON c.id = jc.crew_id
WHERE jc.journey_id = ?
ORDER BY c.id
`, journeyID)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return crews, nil
}

// Crew full names keyed by journey ID, for the journey list projection.
func CrewNamesByJourneyIDs(db *sqlx.DB, journeyIDs []uint) (map[uint][]string, error) {
	names := make(map[uint][]string, len(journeyIDs))
	if len(journeyIDs) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In(`
SELECT jc.journey_id, c.first_name, c.last_name
FROM journey_crews jc
INNER JOIN crews c ON c.id = jc.crew_id
WHERE jc.journey_id IN (?)
ORDER BY jc.journey_id, c.id
`, journeyIDs)
	if err != nil {
		return nil, fmt.Errorf("buildQuery: %w", err)
	}

	rows, err := db.Query(db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			journeyID uint
			crew      Crew
		)
		if err := rows.Scan(&journeyID, &crew.FirstName, &crew.LastName); err != nil {
			return nil, fmt.Errorf("scanRecord: %w", err)
		}
		names[journeyID] = append(names[journeyID], crew.FullName())
	}

	return names, rows.Err()
}
