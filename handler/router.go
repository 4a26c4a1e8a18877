package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/auth"
)

// Wires every resource path with its permission check.
func NewRouter(db *sqlx.DB, jwtSecret []byte) *gin.Engine {
	engine := gin.Default()
	engine.Use(RequestID(), auth.Middleware(jwtSecret))

	engine.GET("/stations/", auth.Require(auth.ActionRead, auth.ResourceStation), ListStations(db))
	engine.POST("/stations/", auth.Require(auth.ActionWrite, auth.ResourceStation), CreateStation(db))

	engine.GET("/routes/", auth.Require(auth.ActionRead, auth.ResourceRoute), ListRoutes(db))
	engine.POST("/routes/", auth.Require(auth.ActionWrite, auth.ResourceRoute), CreateRoute(db))

	engine.GET("/train_types/", auth.Require(auth.ActionRead, auth.ResourceTrainType), ListTrainTypes(db))
	engine.POST("/train_types/", auth.Require(auth.ActionWrite, auth.ResourceTrainType), CreateTrainType(db))

	engine.GET("/trains/", auth.Require(auth.ActionRead, auth.ResourceTrain), ListTrains(db))
	engine.POST("/trains/", auth.Require(auth.ActionWrite, auth.ResourceTrain), CreateTrain(db))

	engine.GET("/crews/", auth.Require(auth.ActionRead, auth.ResourceCrew), ListCrews(db))
	engine.POST("/crews/", auth.Require(auth.ActionWrite, auth.ResourceCrew), CreateCrew(db))

	engine.GET("/journeys/", auth.Require(auth.ActionRead, auth.ResourceJourney), ListJourneys(db))
	engine.GET("/journeys/:id/", auth.Require(auth.ActionRead, auth.ResourceJourney), GetJourney(db))
	engine.POST("/journeys/", auth.Require(auth.ActionWrite, auth.ResourceJourney), CreateJourney(db))
	engine.PUT("/journeys/:id/", auth.Require(auth.ActionWrite, auth.ResourceJourney), UpdateJourney(db))
	engine.PATCH("/journeys/:id/", auth.Require(auth.ActionWrite, auth.ResourceJourney), PatchJourney(db))
	engine.DELETE("/journeys/:id/", auth.Require(auth.ActionWrite, auth.ResourceJourney), DeleteJourney(db))

	engine.GET("/orders/", auth.Require(auth.ActionRead, auth.ResourceOrder), ListOrders(db))
	engine.POST("/orders/", auth.Require(auth.ActionWrite, auth.ResourceOrder), CreateOrder(db))

	return engine
}
