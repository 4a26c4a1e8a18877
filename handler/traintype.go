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

func ListTrainTypes(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		types, err := models.ListTrainTypes(db)
		if err != nil {
			log.Printf("Error listing train types: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		typeViews := make([]views.TrainTypeView, len(types))
		for i, trainType := range types {
			typeViews[i] = views.TrainTypeView(trainType)
		}
		ctx.JSON(http.StatusOK, typeViews)
	}
}

func CreateTrainType(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.TrainTypeForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		trainType := models.TrainType{Name: form.Name}
		if err := models.CreateTrainType(db, &trainType); err != nil {
			log.Printf("Error creating train type: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusCreated, views.TrainTypeView(trainType))
	}
}
