package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/controllers"
	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

func ListRoutes(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		routes, err := models.ListRoutes(db)
		if err != nil {
			log.Printf("Error listing routes: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		routeViews := make([]views.RouteView, len(routes))
		for i, route := range routes {
			routeViews[i] = controllers.RouteView(route)
		}
		ctx.JSON(http.StatusOK, routeViews)
	}
}

func CreateRoute(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.RouteForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}
		if err := form.Validate(); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: err.Error()})
			return
		}

		if err := models.CheckExistsStationIDs(db, form.Source, form.Destination); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "station not found"})
				return
			}
			log.Printf("Error checking stations: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		route := models.Route{
			SourceID:      form.Source,
			DestinationID: form.Destination,
			Distance:      form.Distance,
		}
		if err := models.CreateRoute(db, &route); err != nil {
			log.Printf("Error creating route: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		created, err := models.GetRouteByID(db, route.ID)
		if err != nil {
			log.Printf("Error loading created route: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusCreated, controllers.RouteView(created))
	}
}
