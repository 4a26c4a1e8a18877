package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Tags every request with an ID for log correlation. An incoming ID is
// kept, otherwise a fresh one is generated.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}
