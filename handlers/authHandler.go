package handlers

import (
	"errors"
	"net/http"

	"treadmill/auth"
	"treadmill/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Login はログインリクエストを処理し、ベアラートークンを発行します。
func Login(c *gin.Context, gate *auth.Gate, logger *zap.Logger) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := gate.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
