package middlewares

import (
	"net/http"
	"strings"

	"treadmill/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth はトークン検証を行うミドルウェアです。
// Rejects the request with 401 unless the Authorization header carries a
// bearer token the gate still considers valid.
func Auth(gate *auth.Gate, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimPrefix(token, "Bearer ")
		}

		if token == "" || !gate.Verify(token) {
			logger.Warn("認証失敗", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
