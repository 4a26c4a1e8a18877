package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/controllers"
	"github.com/osvyd/train-station-api/forms"
	"github.com/osvyd/train-station-api/models"
	"github.com/osvyd/train-station-api/views"
)

// Query params: date (YYYY-MM-DD), train, route. All optional, ANDed.
func ListJourneys(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		filter, ok := parseJourneyFilter(ctx)
		if !ok {
			return
		}

		list, err := controllers.ListJourneys(db, filter)
		if err != nil {
			log.Printf("Error listing journeys: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, list)
	}
}

func parseJourneyFilter(ctx *gin.Context) (models.JourneyFilter, bool) {
	var filter models.JourneyFilter

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "date must be formatted as YYYY-MM-DD"})
			return models.JourneyFilter{}, false
		}
		filter.Date = &date
	}
	if raw := ctx.Query("train"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "train must be an ID"})
			return models.JourneyFilter{}, false
		}
		trainID := uint(id)
		filter.TrainID = &trainID
	}
	if raw := ctx.Query("route"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "route must be an ID"})
			return models.JourneyFilter{}, false
		}
		routeID := uint(id)
		filter.RouteID = &routeID
	}

	return filter, true
}

func GetJourney(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		id, ok := parseIDParam(ctx)
		if !ok {
			return
		}

		detail, err := controllers.GetJourneyDetail(db, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusNotFound, views.ErrorView{Error: "journey not found"})
				return
			}
			log.Printf("Error loading journey: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.JSON(http.StatusOK, detail)
	}
}

func CreateJourney(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		var form forms.JourneyForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}
		if err := form.Validate(); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: err.Error()})
			return
		}
		if !checkJourneyRefs(ctx, db, form.Route, form.Train, form.Crews) {
			return
		}

		journey := models.Journey{
			RouteID:       form.Route,
			TrainID:       form.Train,
			DepartureTime: form.DepartureTime,
			ArrivalTime:   form.ArrivalTime,
		}
		if err := models.CreateJourney(db, &journey, form.Crews); err != nil {
			log.Printf("Error creating journey: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusCreated, journeyView(journey, form.Crews))
	}
}

func UpdateJourney(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		id, ok := parseIDParam(ctx)
		if !ok {
			return
		}

		var form forms.JourneyForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}
		if err := form.Validate(); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: err.Error()})
			return
		}

		if _, err := models.GetJourneyByID(db, id); err != nil {
			abortJourneyLoad(ctx, err)
			return
		}
		if !checkJourneyRefs(ctx, db, form.Route, form.Train, form.Crews) {
			return
		}

		journey := models.Journey{
			ID:            id,
			RouteID:       form.Route,
			TrainID:       form.Train,
			DepartureTime: form.DepartureTime,
			ArrivalTime:   form.ArrivalTime,
		}
		crews := form.Crews
		if crews == nil {
			crews = []uint{}
		}
		if err := models.UpdateJourney(db, journey, crews); err != nil {
			log.Printf("Error updating journey: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		ctx.JSON(http.StatusOK, journeyView(journey, crews))
	}
}

func PatchJourney(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		id, ok := parseIDParam(ctx)
		if !ok {
			return
		}

		var form forms.JourneyPatchForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "Parameters are missing."})
			return
		}

		journey, err := models.GetJourneyByID(db, id)
		if err != nil {
			abortJourneyLoad(ctx, err)
			return
		}

		if form.Route != nil {
			journey.RouteID = *form.Route
		}
		if form.Train != nil {
			journey.TrainID = *form.Train
		}
		if form.DepartureTime != nil {
			journey.DepartureTime = *form.DepartureTime
		}
		if form.ArrivalTime != nil {
			journey.ArrivalTime = *form.ArrivalTime
		}
		if !journey.ArrivalTime.After(journey.DepartureTime) {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "arrival_time must be after departure_time"})
			return
		}

		var crews []uint
		if form.Crews != nil {
			crews = *form.Crews
			if crews == nil {
				crews = []uint{}
			}
		}
		if !checkJourneyRefs(ctx, db, journey.RouteID, journey.TrainID, crews) {
			return
		}

		if err := models.UpdateJourney(db, journey, crews); err != nil {
			log.Printf("Error updating journey: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if crews == nil {
			storedCrews, err := models.CrewsByJourneyID(db, journey.ID)
			if err != nil {
				log.Printf("Error loading journey crews: %v", err)
				ctx.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			crews = make([]uint, len(storedCrews))
			for i, crew := range storedCrews {
				crews[i] = crew.ID
			}
		}

		ctx.JSON(http.StatusOK, journeyView(journey, crews))
	}
}

func DeleteJourney(db *sqlx.DB) func(*gin.Context) {
	return func(ctx *gin.Context) {
		id, ok := parseIDParam(ctx)
		if !ok {
			return
		}

		if err := models.DeleteJourney(db, id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusNotFound, views.ErrorView{Error: "journey not found"})
				return
			}
			log.Printf("Error deleting journey: %v", err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: "invalid Request."})
		return 0, false
	}
	return uint(id), true
}

func abortJourneyLoad(ctx *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, views.ErrorView{Error: "journey not found"})
		return
	}
	log.Printf("Error loading journey: %v", err)
	ctx.AbortWithStatus(http.StatusInternalServerError)
}

// Referenced route, train and crews must all exist before a journey write.
func checkJourneyRefs(ctx *gin.Context, db *sqlx.DB, routeID, trainID uint, crewIDs []uint) bool {
	if err := models.CheckExistsRouteID(db, routeID); err != nil {
		return abortRefCheck(ctx, err, "route not found")
	}
	if err := models.CheckExistsTrainID(db, trainID); err != nil {
		return abortRefCheck(ctx, err, "train not found")
	}
	if err := models.CheckExistsCrewIDs(db, crewIDs); err != nil {
		return abortRefCheck(ctx, err, "crew not found")
	}
	return true
}

func abortRefCheck(ctx *gin.Context, err error, message string) bool {
	if errors.Is(err, models.ErrNotFound) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, views.ErrorView{Error: message})
		return false
	}
	log.Printf("Error checking journey references: %v", err)
	ctx.AbortWithStatus(http.StatusInternalServerError)
	return false
}

func journeyView(journey models.Journey, crewIDs []uint) views.JourneyView {
	if crewIDs == nil {
		crewIDs = []uint{}
	}
	return views.JourneyView{
		ID:            journey.ID,
		Route:         journey.RouteID,
		Train:         journey.TrainID,
		Crews:         crewIDs,
		DepartureTime: journey.DepartureTime,
		ArrivalTime:   journey.ArrivalTime,
	}
}
