package store

import (
	"time"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

func (s *Store) CountAdmins() (int64, error) {
	var n int64
	err := s.db.Model(&models.Admin{}).Count(&n).Error
	return n, err
}

func (s *Store) GetAdmin(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &admin, nil
}

func (s *Store) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translateErr(err)
	}
	return &admin, nil
}

func (s *Store) CreateAdmin(admin *models.Admin) error {
	return s.db.Create(admin).Error
}

func (s *Store) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *Store) GetSession(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, translateErr(err)
	}
	return &session, nil
}

func (s *Store) DeleteSession(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpiredSessions clears rows whose expiry has passed. Called lazily
// from session validation, never from a background job.
func (s *Store) DeleteExpiredSessions(now time.Time) error {
	return s.db.Where("expires_at <= ?", now).Delete(&models.Session{}).Error
}
