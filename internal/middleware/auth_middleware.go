package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gbenitez/multatrack/internal/helpers"
)

// SessionCookie carries the login token for browser clients; API clients use
// a bearer Authorization header instead.
const SessionCookie = "mt_session"

const currentUserKey = "current_user"

var errMissingSecret = errors.New("JWT_SECRET not configured")

// AuthContext is the authenticated caller attached to the request context.
// Absence means the request is anonymous; every mutating route requires it.
type AuthContext struct {
	Username string
	Role     string
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := Authenticate(c)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Unauthorized. Please log in.")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// Authenticate resolves the caller from the bearer header or session cookie.
// It never writes a response, so endpoints with optional auth can use it too.
func Authenticate(c *gin.Context) (AuthContext, bool) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return AuthContext{}, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			// Verifying against an empty key would quietly accept tokens
			// signed with one; misconfiguration must reject everything.
			return nil, errMissingSecret
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return AuthContext{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AuthContext{}, false
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return AuthContext{Username: username, Role: role}, true
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (AuthContext, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return AuthContext{}, false
	}
	user, ok := value.(AuthContext)
	return user, ok
}
