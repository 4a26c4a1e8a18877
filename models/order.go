package models

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Order struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UserID    uint      `db:"user_id"`
}

func InsertOrder(tx *sqlx.Tx, order *Order) error {
	res, err := tx.Exec(
		`INSERT INTO orders (created_at, user_id) VALUES (?, ?)`,
		order.CreatedAt, order.UserID,
	)
	if err != nil {
		return fmt.Errorf("insertOrder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("lastInsertID: %w", err)
	}
	order.ID = uint(id)
	return nil
}

// One page of the caller's orders, newest first.
func ListOrdersByUser(db *sqlx.DB, userID uint, limit, offset int) ([]Order, error) {
	orders := make([]Order, 0, limit)
	err := db.Select(&orders, `
SELECT id, created_at, user_id
FROM orders
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?
`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("executeQuery: %w", err)
	}
	return orders, nil
}

func CountOrdersByUser(db *sqlx.DB, userID uint) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM orders WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("executeQuery: %w", err)
	}
	return count, nil
}
