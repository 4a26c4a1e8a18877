package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/auth"
	"github.com/osvyd/train-station-api/controllers"
	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

const (
	defaultPageSize = 5
	maxPageSize     = 50
)

// Listing is always scoped to the caller's own orders.
func ListOrders(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		caller := auth.CallerFrom(ctx)

		page, pageSize, ok := parsePagination(ctx)
		if !ok {
			return
		}

		result, err := controllers.ListOrders(db, caller.ID, pageSize, (page-1)*pageSize)
		if err != nil {
			log.Printf("Error listing orders: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func parsePagination(ctx *gin.Context) (page, pageSize int, ok bool) {
	page = 1
	if raw := ctx.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "page must be a positive integer"})
			return 0, 0, false
		}
		page = parsed
	}

	pageSize = defaultPageSize
	if raw := ctx.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "page_size must be a positive integer"})
			return 0, 0, false
		}
		pageSize = min(parsed, maxPageSize)
	}

	return page, pageSize, true
}

// The order's user always comes from the verified token, so one caller
// cannot book on behalf of another.
func CreateOrder(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		caller := auth.CallerFrom(ctx)

		var form forms.OrderForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		order, err := controllers.CreateOrder(ctx.Request.Context(), db, caller.ID, form.Tickets)
		if err != nil {
			abortOrderCreate(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, order)
	}
}

func abortOrderCreate(ctx *gin.Context, err error) {
	var rangeErr *models.RangeError
	var duplicateErr *models.DuplicateSeatError

	switch {
	case errors.Is(err, models.ErrEmptyOrder):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: models.ErrEmptyOrder.Error()})
	case errors.Is(err, models.ErrNotFound):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "journey not found"})
	case errors.As(err, &rangeErr):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.FieldErrorView{
			Field: rangeErr.Field,
			Error: rangeErr.Error(),
		})
	case errors.As(err, &duplicateErr):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: duplicateErr.Error()})
	default:
		log.Printf("Error creating order: %v", err)
		ctx.AbortWithStatus(http.StatusInternalServerError)
	}
}
