package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osvyd/train-station-api/views"
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

type Resource int

const (
	ResourceStation Resource = iota
	ResourceRoute
	ResourceTrainType
	ResourceTrain
	ResourceCrew
	ResourceJourney
	ResourceOrder
)

// Pure permission check, independent of transport. Reference data is
// readable by any authenticated caller and writable by staff only. Orders
// are open to any authenticated caller; listing is scoped to the owner in
// the query itself, so no extra rule is needed here.
func CanPerform(caller *Caller, action Action, resource Resource) bool {
	if caller == nil {
		return false
	}
	if resource == ResourceOrder {
		return true
	}
	if action == ActionRead {
		return true
	}
	return caller.IsStaff
}

// Gin middleware enforcing CanPerform ahead of a handler. Anonymous
// callers get 401, authenticated callers without the required role 403.
func Require(action Action, resource Resource) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller := CallerFrom(ctx)
		if CanPerform(caller, action, resource) {
			ctx.Next()
			return
		}

		if caller == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, views.ErrorView{Error: "authentication required"})
			return
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, views.ErrorView{Error: "staff privileges required"})
	}
}
