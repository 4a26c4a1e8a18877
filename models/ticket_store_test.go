package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trainColumns = []string{
	"id", "name", "cargo_num", "places_in_cargo", "train_type_id", "train_type_name",
}

func TestCreateTicketValidatesAgainstJourneyTrain(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))

	ticket := Ticket{Cargo: 7, Seat: 1, JourneyID: 3, OrderID: 11}
	err := CreateTicket(db, &ticket)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "cargo", rangeErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTicketTranslatesDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(6, 50, uint(3), uint(11)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	ticket := Ticket{Cargo: 6, Seat: 50, JourneyID: 3, OrderID: 11}
	err := CreateTicket(db, &ticket)

	var duplicateErr *DuplicateSeatError
	require.ErrorAs(t, err, &duplicateErr)
	assert.Equal(t, uint(3), duplicateErr.JourneyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTicketCommits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(6, 50, uint(3), uint(11)).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	ticket := Ticket{Cargo: 6, Seat: 50, JourneyID: 3, OrderID: 11}
	require.NoError(t, CreateTicket(db, &ticket))
	assert.Equal(t, uint(21), ticket.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
