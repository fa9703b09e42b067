package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextKeyChannel = "channel"
	ContextKeyClaims  = "claims"
)

// ChannelClaims are the JWT claims presented by an integrating sales channel.
type ChannelClaims struct {
	Channel string `json:"channel"`
	jwt.RegisteredClaims
}

// AuthMiddleware returns Gin middleware that validates shared-secret JWT
// tokens presented by integrating channels.
func AuthMiddleware(secret string) gin.HandlerFunc {
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
		claims := &ChannelClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyChannel, claims.Channel)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetChannel extracts the channel identifier from the Gin context.
func GetChannel(c *gin.Context) string {
	val, exists := c.Get(ContextKeyChannel)
	if !exists {
		return ""
	}
	return val.(string)
}
