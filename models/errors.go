package models

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmptyOrder = errors.New("order must contain at least one ticket")
)

// Ticket attribute outside the range allowed by the train layout.
type RangeError struct {
	Field     string
	TrainAttr string
	Min       int
	Max       int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"%s number must be in available range: (%d, %s): (%d, %d)",
		e.Field, e.Min, e.TrainAttr, e.Min, e.Max,
	)
}

// Seat already taken on the journey: the (journey, cargo, seat) unique key
// rejected the insert.
type DuplicateSeatError struct {
	JourneyID uint
	Cargo     int
	Seat      int
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf(
		"seat %d in cargo %d is already taken on journey %d",
		e.Seat, e.Cargo, e.JourneyID,
	)
}

const mysqlDuplicateEntry = 1062

func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
