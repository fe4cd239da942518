package auth

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zoramarket/zora-backend/pkg/db/models"
)

// SessionRepository persists the one-row-per-user session table.
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository constructs a session repo bound to the provided GORM DB.
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindByToken loads the session owning the given opaque token.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// UpsertForUser inserts the session, replacing the user's previous one if
// a row already exists. Each login therefore invalidates the prior token.
func (r *SessionRepository) UpsertForUser(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_token", "expires_at", "created_at"}),
	}).Create(session).Error
}

// DeleteForUser removes the user's session row, if any.
func (r *SessionRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
