package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
	contextActor      = "actor"
)

var (
	errTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
	errInvalidClaims = apperror.New(apperror.CodeUnauthorized, "Token is missing employee_id or role", http.StatusUnauthorized)
)

// AuthMiddleware validates an HS256 access token from the Authorization header or
// the access_token cookie and stores the caller as a domain.Actor.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.AbortWithError(c, errTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortWithError(c, errTokenExpired)
				return
			}
			response.AbortWithError(c, errInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortWithError(c, errInvalidToken)
			return
		}

		employeeID, _ := claims["employee_id"].(string)
		role, _ := claims["role"].(string)

		actor, ok := domain.NewActor(employeeID, role)
		if !ok {
			response.AbortWithError(c, errInvalidClaims)
			return
		}

		c.Set(ContextEmployeeID, actor.EmployeeID.String())
		c.Set(ContextRole, string(actor.Role))
		c.Set(contextActor, actor)

		c.Next()
	}
}

// ActorFrom returns the caller stored by AuthMiddleware.
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(contextActor)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

// SetActor is used by handler tests to bypass token parsing.
func SetActor(c *gin.Context, actor domain.Actor) {
	c.Set(ContextEmployeeID, actor.EmployeeID.String())
	c.Set(ContextRole, string(actor.Role))
	c.Set(contextActor, actor)
}
