package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	authservice "github.com/medisuite/hospital-api/internal/service/auth"
	"github.com/medisuite/hospital-api/pkg/auth"
)

// Context keys set on authenticated requests.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// AuthMiddleware is the access gate: every resource operation behind
// it requires a valid session, with no storage access on rejection.
type AuthMiddleware struct {
	authSvc *authservice.Service
	claims  *gocache.Cache
}

func NewAuthMiddleware(authSvc *authservice.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authSvc: authSvc,
		// Validated claims are cached briefly so repeated calls with
		// the same token skip signature and session-store checks.
		claims: gocache.New(30*time.Second, time.Minute),
	}
}

// Authenticate verifies the session token and sets user info in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token := parts[1]

		var claims *auth.SessionClaims
		if cached, ok := m.claims.Get(token); ok {
			claims = cached.(*auth.SessionClaims)
		} else {
			validated, err := m.authSvc.ValidateSession(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			claims = validated
			m.claims.SetDefault(token, claims)
		}

		c.Set(ContextUserID, claims.UserID.String())
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
