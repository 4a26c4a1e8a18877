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

func crewView(crew models.Crew) views.CrewView {
	return views.CrewView{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

func ListCrews(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		crews, err := models.ListCrews(db)
		if err != nil {
			log.Printf("Error listing crews: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		crewViews := make([]views.CrewView, len(crews))
		for i, crew := range crews {
			crewViews[i] = crewView(crew)
		}
		ctx.JSON(http.StatusOK, crewViews)
	}
}

func CreateCrew(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.CrewForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		crew := models.Crew{FirstName: form.FirstName, LastName: form.LastName}
		if err := models.CreateCrew(db, &crew); err != nil {
			log.Printf("Error creating crew: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusCreated, crewView(crew))
	}
}
