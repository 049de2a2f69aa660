package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"markguard/internal/domain"
	"markguard/internal/service"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyEmail    = "email"
	ContextKeyIsAdmin  = "is_admin"
	ContextKeyIsClient = "is_client"
	ContextKeyDept     = "department"
	ContextKeyProfile  = "client_profile"
	ContextKeyClaims   = "claims"
)

// AuthMiddleware returns Gin middleware that validates JWT tokens and injects
// the caller's identity and role tuple into the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyIsAdmin, claims.IsAdmin)
		c.Set(ContextKeyIsClient, claims.IsClient)
		if claims.Department != nil {
			c.Set(ContextKeyDept, string(*claims.Department))
		}
		if claims.ClientProfile != nil {
			c.Set(ContextKeyProfile, string(*claims.ClientProfile))
		}
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireAdmin returns middleware that rejects non-admin callers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextKeyIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "admin access required"},
			})
			return
		}
		c.Next()
	}
}

// RequireInternal returns middleware that rejects client callers. Admins
// pass regardless of the client flag.
func RequireInternal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool(ContextKeyIsClient) && !c.GetBool(ContextKeyIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "internal access required"},
			})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the user ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}

// GetCaller rebuilds the caller identity from the Gin context.
func GetCaller(c *gin.Context) (domain.Caller, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return domain.Caller{}, err
	}

	caller := domain.Caller{
		ID:       userID,
		IsAdmin:  c.GetBool(ContextKeyIsAdmin),
		IsClient: c.GetBool(ContextKeyIsClient),
	}
	if dept := c.GetString(ContextKeyDept); dept != "" {
		caller.MainDepartment = domain.Department(dept)
	}
	if profile := c.GetString(ContextKeyProfile); profile != "" {
		caller.ClientProfile = domain.ClientProfile(profile)
	}
	return caller, nil
}
