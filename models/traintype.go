package models

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TrainType struct {
	ID   uint   `db:"id"`
	Name string `db:"name"`
}

func ListTrainTypes(db *sqlx.DB) ([]TrainType, error) {
	types := make([]TrainType, 0, 10)
	err := db.Select(&types, `SELECT id, name FROM train_types ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return types, nil
}

func CreateTrainType(db *sqlx.DB, trainType *TrainType) error {
	res, err := db.Exec(`INSERT INTO train_types (name) VALUES (?)`, trainType.Name)
	if err != nil {
		return fmt.Errorf("insertTrainType: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	trainType.ID = uint(id)
	return nil
}

func CheckExistsTrainTypeID(db *sqlx.DB, id uint) error {
	var exists bool
	err := db.QueryRow(`SELECT COUNT(*) = 1 FROM train_types WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}
