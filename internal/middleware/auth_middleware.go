package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/internal/errors"
	"github.com/binzaridot/binzari-backend/pkg/util"
)

// Context keys for authenticated-caller information
const (
	UserIDKey    = "user_id"
	UserPhoneKey = "user_phone"
	AdminNameKey = "admin_name"
)

type AuthMiddleware struct {
	accessSecret  string
	refreshSecret string
}

func NewAuthMiddleware(accessSecret, refreshSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func setCallerContext(c *gin.Context, claims *util.Claims) {
	c.Set(UserIDKey, claims.ID)
	if claims.Phone != "" {
		c.Set(UserPhoneKey, claims.Phone)
	}
	if claims.Name != "" {
		c.Set(AdminNameKey, claims.Name)
	}
}

// Authenticate validates an access token (required).
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return m.require(m.accessSecret)
}

// AuthenticateRefresh validates a refresh token (required). Used only by the
// token-refresh endpoint, which reissues an access token from its claims.
func (m *AuthMiddleware) AuthenticateRefresh() gin.HandlerFunc {
	return m.require(m.refreshSecret)
}

func (m *AuthMiddleware) require(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token := bearerToken(c)
		if token == "" {
			log.Warn("Missing or malformed authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, errors.AuthNoToken, "토큰이 없습니다")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, secret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			errors.Unauthorized(c, errors.AuthTokenInvalid, "유효하지 않은 토큰입니다")
			c.Abort()
			return
		}

		setCallerContext(c, claims)

		log.Debug("Caller authenticated", map[string]interface{}{
			"user_id": claims.ID,
		})

		c.Next()
	}
}

// AuthenticateWhenPresent authenticates only when an Authorization header is
// sent. Absent header: the request continues as a guest. Present but invalid
// token: 401, same as Authenticate.
func (m *AuthMiddleware) AuthenticateWhenPresent() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		if c.GetHeader("Authorization") == "" {
			log.Debug("No authorization header, continuing as guest", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			errors.Unauthorized(c, errors.AuthTokenInvalid, "인증 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, m.accessSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			errors.Unauthorized(c, errors.AuthTokenInvalid, "유효하지 않은 토큰입니다")
			c.Abort()
			return
		}

		setCallerContext(c, claims)
		c.Next()
	}
}

// GetUserID extracts the authenticated caller's ID from context.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	return userID.(string), true
}

// GetUserPhone extracts the authenticated user's phone from context.
func GetUserPhone(c *gin.Context) (string, bool) {
	phone, exists := c.Get(UserPhoneKey)
	if !exists {
		return "", false
	}
	return phone.(string), true
}

// GetAdminName extracts the authenticated dashboard account's name from context.
func GetAdminName(c *gin.Context) (string, bool) {
	name, exists := c.Get(AdminNameKey)
	if !exists {
		return "", false
	}
	return name.(string), true
}
