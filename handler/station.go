package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

func ListStations(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		stations, err := models.ListStations(db)
		if err != nil {
			log.Printf("Error listing stations: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		stationViews := make([]views.StationView, len(stations))
		for i, station := range stations {
			stationViews[i] = views.StationView(station)
		}
		ctx.JSON(http.StatusOK, stationViews)
	}
}

func CreateStation(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.StationForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		station := models.Station{
			Name:      form.Name,
			Latitude:  form.Latitude,
			Longitude: form.Longitude,
		}
		if err := models.CreateStation(db, &station); err != nil {
			if models.IsDuplicateKey(err) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "station name already exists"})
				return
			}
			log.Printf("Error creating station: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusCreated, views.StationView(station))
	}
}
