package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"treadmill/models"
	"treadmill/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListSessions returns every stored session, newest date first.
func ListSessions(c *gin.Context, s *store.Store, logger *zap.Logger) {
	sessions, err := s.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CreateSession persists a new workout record.
func CreateSession(c *gin.Context, s *store.Store, logger *zap.Logger) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Date == "" || req.Distance == nil || req.Duration == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	session, err := s.Insert(req.Date, *req.Distance, *req.Duration)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("session recorded",
		zap.String("date", session.Date),
		zap.Float64("distance", session.Distance),
	)
	c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session by id. Unknown ids still report
// success, matching the store's idempotent delete.
func DeleteSession(c *gin.Context, s *store.Store, logger *zap.Logger) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	if err := s.DeleteByID(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("session deleted", zap.Uint64("id", id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
