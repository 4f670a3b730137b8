// Package store owns the persisted sessions table.
package store

import (
	"errors"
	"fmt"

	"treadmill/models"
	"treadmill/stats"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrValidation marks a rejected insert: missing date, malformed date,
// or a non-positive distance/duration. Nothing is persisted.
var ErrValidation = errors.New("validation failed")

// Store serializes all access to the sessions table through one gorm
// handle. Single-operator write volume, no extra locking needed.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Insert validates and persists a new session, returning the stored
// record with its assigned id and created_at.
func (s *Store) Insert(date string, distance, duration float64) (*models.Session, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := stats.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if distance <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", ErrValidation)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	session := models.Session{Date: date, Distance: distance, Duration: duration}
	if err := s.db.Create(&session).Error; err != nil {
		s.logger.Error("failed to insert session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

// ListAll returns every session, newest date first. Ties within a date
// keep insertion order.
func (s *Store) ListAll() ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Order("date desc, id asc").Find(&sessions).Error; err != nil {
		s.logger.Error("failed to list sessions", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

// ListByDate returns the sessions recorded on an exact date.
func (s *Store) ListByDate(date string) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Where("date = ?", date).Order("date desc, id asc").Find(&sessions).Error; err != nil {
		s.logger.Error("failed to list sessions by date", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

// ListSince returns sessions dated on or after start. Dates are stored
// as YYYY-MM-DD text, so string comparison orders correctly.
func (s *Store) ListSince(start string) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.Where("date >= ?", start).Order("date desc, id asc").Find(&sessions).Error; err != nil {
		s.logger.Error("failed to list sessions since date", zap.String("start", start), zap.Error(err))
		return nil, err
	}
	return sessions, nil
}

// DeleteByID removes a session. Deleting an id that does not exist is a
// no-op, not an error.
func (s *Store) DeleteByID(id uint) error {
	result := s.db.Delete(&models.Session{}, id)
	if result.Error != nil {
		s.logger.Error("failed to delete session", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	return nil
}
