package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/internal/users"
	"github.com/zoramarket/zora-backend/pkg/db/models"
	"github.com/zoramarket/zora-backend/pkg/enums"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

// Welcome bonus granted to every newly created account.
const (
	welcomeCredits       = 5.0
	welcomeLoyaltyPoints = 100
)

// Service defines the behavior needed by the auth controller and the
// session middleware.
type Service interface {
	ExchangeSession(ctx context.Context, sessionID string) (*ExchangeResult, error)
	ResolveIdentity(ctx context.Context, cookieToken, bearerToken string) (*models.User, error)
	Logout(ctx context.Context, userID string) error
	UpdateProfile(ctx context.Context, userID string, patch users.ProfilePatch) (*models.User, error)
}

// ExchangeResult carries everything the controller needs to answer a
// successful session exchange: the user plus the cookie material.
type ExchangeResult struct {
	User         *models.User
	SessionToken string
	ExpiresAt    time.Time
}

type userRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	ApplyPatch(ctx context.Context, id string, patch users.ProfilePatch) error
}

type sessionRepository interface {
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	UpsertForUser(ctx context.Context, session *models.Session) error
	DeleteForUser(ctx context.Context, userID string) error
}

type service struct {
	users      userRepository
	sessions   sessionRepository
	provider   Provider
	sessionTTL time.Duration
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo    userRepository
	SessionRepo sessionRepository
	Provider    Provider
	SessionTTL  time.Duration
}

// NewService constructs a session-exchange auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionRepo == nil {
		return nil, fmt.Errorf("session repository is required")
	}
	if params.Provider == nil {
		return nil, fmt.Errorf("auth provider is required")
	}
	if params.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &service{
		users:      params.UserRepo,
		sessions:   params.SessionRepo,
		provider:   params.Provider,
		sessionTTL: params.SessionTTL,
	}, nil
}

// ExchangeSession trades a one-time provider session id for a durable
// session token, creating the account on first sight of the email.
func (s *service) ExchangeSession(ctx context.Context, sessionID string) (*ExchangeResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	data, err := s.provider.FetchSessionData(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}
		user, err = s.createUser(ctx, data)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	session := &models.Session{
		UserID:       user.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
	}
	if err := s.sessions.UpsertForUser(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session")
	}

	return &ExchangeResult{
		User:         user,
		SessionToken: data.SessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// ResolveIdentity turns a cookie and/or bearer token into a user. The
// cookie wins when both are present. A nil user with a nil error means
// "no identity": unknown token, expired session, or orphaned session
// whose user is gone. Expired rows are left in place.
func (s *service) ResolveIdentity(ctx context.Context, cookieToken, bearerToken string) (*models.User, error) {
	token := cookieToken
	if token == "" {
		token = bearerToken
	}
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup session")
	}
	if session.ExpiresAt.UTC().Before(time.Now().UTC()) {
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	return user, nil
}

// Logout drops the user's session row. Idempotent.
func (s *service) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.DeleteForUser(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete session")
	}
	return nil
}

// UpdateProfile applies the patch and returns the fresh user row.
func (s *service) UpdateProfile(ctx context.Context, userID string, patch users.ProfilePatch) (*models.User, error) {
	if err := s.users.ApplyPatch(ctx, userID, patch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload user")
	}
	return user, nil
}

func (s *service) createUser(ctx context.Context, data *SessionData) (*models.User, error) {
	referral := newReferralCode()
	user := &models.User{
		ID:                newUserID(),
		Email:             data.Email,
		Name:              data.Name,
		Picture:           data.Picture,
		MembershipTier:    enums.MembershipTierBronze,
		ZoraCredits:       welcomeCredits,
		LoyaltyPoints:     welcomeLoyaltyPoints,
		ReferralCode:      &referral,
		CulturalInterests: []string{},
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}
	return created, nil
}

func newUserID() string {
	return "user_" + randomHex(12)
}

func newReferralCode() string {
	return "ZORA" + strings.ToUpper(randomHex(6))
}

func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return hex[:n]
}
