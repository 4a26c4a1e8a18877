package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

func trainView(train models.Train) views.TrainView {
	return views.TrainView{
		ID:            train.ID,
		Name:          train.Name,
		CargoNum:      train.CargoNum,
		PlacesInCargo: train.PlacesInCargo,
		Capacity:      train.Capacity(),
		TrainType:     train.TrainTypeID,
	}
}

func ListTrains(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		trains, err := models.ListTrains(db)
		if err != nil {
			log.Printf("Error listing trains: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		trainViews := make([]views.TrainView, len(trains))
		for i, train := range trains {
			trainViews[i] = trainView(train)
		}
		ctx.JSON(http.StatusOK, trainViews)
	}
}

func CreateTrain(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.TrainForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		if err := models.CheckExistsTrainTypeID(db, form.TrainType); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "train type not found"})
				return
			}
			log.Printf("Error checking train type: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		train := models.Train{
			Name:          form.Name,
			CargoNum:      form.CargoNum,
			PlacesInCargo: form.PlacesInCargo,
			TrainTypeID:   form.TrainType,
		}
		if err := models.CreateTrain(db, &train); err != nil {
			log.Printf("Error creating train: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusCreated, trainView(train))
	}
}
