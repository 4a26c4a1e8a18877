package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osvyd/train-station-api/views"
)

var trainColumns = []string{
	"id", "name", "cargo_num", "places_in_cargo", "train_type_id", "train_type_name",
}

func TestOrderCreateRequiresAuthentication(t *testing.T) {
	router, mock := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/orders/", "",
		`{"tickets": [{"cargo": 1, "seat": 1, "journey": 3}]}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateRejectsEmptyTicketList(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 1, false)

	recorder := doRequest(router, http.MethodPost, "/orders/", token, `{"tickets": []}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "at least one ticket")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreatePersistsNothingOnRangeError(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 1, false)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))

	// Second spec is out of range: the whole order must be rejected with
	// no transaction ever opened.
	recorder := doRequest(router, http.MethodPost, "/orders/", token,
		`{"tickets": [{"cargo": 6, "seat": 50, "journey": 3}, {"cargo": 7, "seat": 1, "journey": 3}]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body views.FieldErrorView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "cargo", body.Field)
	assert.Contains(t, body.Error, "cargo_num")
	assert.Contains(t, body.Error, "(1, 6)")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateReportsDuplicateSeat(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 1, false)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), uint(1)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(6, 50, uint(3), uint(11)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	recorder := doRequest(router, http.MethodPost, "/orders/", token,
		`{"tickets": [{"cargo": 6, "seat": 50, "journey": 3}]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already taken")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateSucceeds(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 9, false)

	mock.ExpectQuery("FROM journeys j").
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows(trainColumns).
			AddRow(1, "Express", 6, 50, 1, "Type1"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), uint(9)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(6, 50, uint(3), uint(11)).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	recorder := doRequest(router, http.MethodPost, "/orders/", token,
		`{"tickets": [{"cargo": 6, "seat": 50, "journey": 3}]}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body views.OrderView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, uint(11), body.ID)
	require.Len(t, body.Tickets, 1)
	assert.Equal(t, 6, body.Tickets[0].Cargo)
	assert.Equal(t, 50, body.Tickets[0].Seat)
	assert.Equal(t, uint(3), body.Tickets[0].Journey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderListScopedToCaller(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 7, false)

	created := time.Date(2023, 11, 11, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders WHERE user_id = ?")).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("FROM orders").
		WithArgs(uint(7), 5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id"}).
			AddRow(2, created, 7).
			AddRow(1, created.Add(-time.Hour), 7))
	mock.ExpectQuery("FROM tickets").
		WithArgs(uint(2), uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cargo", "seat", "journey_id", "order_id"}))

	recorder := doRequest(router, http.MethodGet, "/orders/", token, "")

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body views.OrderPageView
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Results, 2)
	assert.Equal(t, uint(2), body.Results[0].ID)
	assert.Equal(t, uint(1), body.Results[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderListCapsPageSize(t *testing.T) {
	router, mock := newTestRouter(t)
	token := makeToken(t, 7, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders WHERE user_id = ?")).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM orders").
		WithArgs(uint(7), 50, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "user_id"}))

	recorder := doRequest(router, http.MethodGet, "/orders/?page=3&page_size=500", token, "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Forged staff claims signed with the wrong key must not authenticate.
func TestForgedTokenIsAnonymous(t *testing.T) {
	router, mock := newTestRouter(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "1",
		"is_staff": true,
	})
	signed, err := forged.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/orders/", signed,
		`{"tickets": [{"cargo": 1, "seat": 1, "journey": 3}]}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
