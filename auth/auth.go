package auth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity of the requesting user, as asserted by the external identity
// provider's token. Nil caller means anonymous.
type Caller struct {
	ID      uint
	IsStaff bool
}

const callerContextKey = "auth.caller"

// Verifies the Bearer token and stores the caller in the request context.
// Requests without a valid token pass through as anonymous; the permission
// middleware decides whether that is acceptable.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.Next()
			return
		}

		caller, err := parseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set(callerContextKey, caller)
		ctx.Next()
	}
}

func CallerFrom(ctx *gin.Context) *Caller {
	value, ok := ctx.Get(callerContextKey)
	if !ok {
		return nil
	}
	caller, ok := value.(*Caller)
	if !ok {
		return nil
	}
	return caller
}

func parseToken(tokenString string, secret []byte) (*Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parseToken: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, err
	}

	isStaff, _ := claims["is_staff"].(bool)
	return &Caller{ID: userID, IsStaff: isStaff}, nil
}

// The sub claim arrives as a string or a JSON number depending on the
// issuer.
func subjectID(claims jwt.MapClaims) (uint, error) {
	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parseSubject: %w", err)
		}
		return uint(id), nil
	case float64:
		if sub < 1 {
			return 0, fmt.Errorf("invalid subject %v", sub)
		}
		return uint(sub), nil
	default:
		return 0, fmt.Errorf("missing subject claim")
	}
}
