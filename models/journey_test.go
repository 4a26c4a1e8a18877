package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "mysql"), mock
}

var journeyRowColumns = []string{
	"id", "route_id", "train_id", "departure_time", "arrival_time",
	"train_name", "train_type", "train_cargo_num", "places_in_cargo",
	"tickets_available",
}

func TestListJourneysWithoutFilters(t *testing.T) {
	db, mock := newMockDB(t)

	departure := time.Date(2023, 11, 11, 10, 0, 0, 0, time.UTC)
	arrival := departure.Add(4 * time.Hour)

	// No filters means no WHERE clause between the joins and the grouping.
	mock.ExpectQuery(regexp.QuoteMeta("tk.journey_id = j.id\nGROUP BY j.id")).
		WillReturnRows(sqlmock.NewRows(journeyRowColumns).
			AddRow(2, 1, 1, departure, arrival, "Express", "Type1", 6, 50, 298).
			AddRow(1, 1, 1, departure.Add(-24*time.Hour), arrival.Add(-24*time.Hour), "Express", "Type1", 6, 50, 300))

	rows, err := ListJourneys(db, JourneyFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint(2), rows[0].ID)
	assert.Equal(t, 298, rows[0].TicketsAvailable)
	assert.Equal(t, "Express", rows[0].TrainName)
	assert.Equal(t, 300, rows[1].TicketsAvailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJourneysCombinesFiltersWithAND(t *testing.T) {
	db, mock := newMockDB(t)

	date := time.Date(2023, 11, 11, 0, 0, 0, 0, time.UTC)
	trainID := uint(5)
	routeID := uint(7)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE DATE(j.departure_time) = ? AND j.train_id = ? AND j.route_id = ?",
	)).
		WithArgs("2023-11-11", trainID, routeID).
		WillReturnRows(sqlmock.NewRows(journeyRowColumns))

	rows, err := ListJourneys(db, JourneyFilter{Date: &date, TrainID: &trainID, RouteID: &routeID})
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJourneysSingleFilter(t *testing.T) {
	db, mock := newMockDB(t)

	routeID := uint(3)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE j.route_id = ?")).
		WithArgs(routeID).
		WillReturnRows(sqlmock.NewRows(journeyRowColumns))

	_, err := ListJourneys(db, JourneyFilter{RouteID: &routeID})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJourneysOrdersByDepartureDescending(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY j.departure_time DESC, j.id ASC")).
		WillReturnRows(sqlmock.NewRows(journeyRowColumns))

	_, err := ListJourneys(db, JourneyFilter{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteJourneyNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journeys WHERE id = ?")).
		WithArgs(uint(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := DeleteJourney(db, 9)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
