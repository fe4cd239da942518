package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/zoramarket/zora-backend/internal/users"
	"github.com/zoramarket/zora-backend/pkg/db/models"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

func TestExchangeSessionCreatesUserWithWelcomeBonus(t *testing.T) {
	provider := &stubProvider{data: &SessionData{
		ID:           "ext-123",
		Email:        "ada@example.com",
		Name:         "Ada",
		SessionToken: "tok-abc",
	}}
	userRepo := newStubUserRepo()
	sessionRepo := newStubSessionRepo()

	svc := buildTestService(t, userRepo, sessionRepo, provider)

	result, err := svc.ExchangeSession(context.Background(), "one-time-id")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if result.SessionToken != "tok-abc" {
		t.Fatalf("expected provider token, got %s", result.SessionToken)
	}

	user := result.User
	if user.ZoraCredits != 5.0 {
		t.Fatalf("expected welcome credits 5.0, got %v", user.ZoraCredits)
	}
	if user.LoyaltyPoints != 100 {
		t.Fatalf("expected welcome loyalty 100, got %d", user.LoyaltyPoints)
	}
	if !strings.HasPrefix(user.ID, "user_") || len(user.ID) != len("user_")+12 {
		t.Fatalf("unexpected user id format: %s", user.ID)
	}
	if user.ReferralCode == nil || !strings.HasPrefix(*user.ReferralCode, "ZORA") || len(*user.ReferralCode) != 10 {
		t.Fatalf("unexpected referral code: %v", user.ReferralCode)
	}

	session := sessionRepo.byToken["tok-abc"]
	if session == nil {
		t.Fatalf("expected session persisted under provider token")
	}
	if session.UserID != user.ID {
		t.Fatalf("session user mismatch: %s vs %s", session.UserID, user.ID)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Fatalf("expected roughly seven day expiry, got %s", ttl)
	}
}

func TestExchangeSessionReusesExistingUser(t *testing.T) {
	existing := &models.User{
		ID:            "user_existing1234",
		Email:         "ada@example.com",
		Name:          "Ada",
		ZoraCredits:   42.0,
		LoyaltyPoints: 900,
	}
	provider := &stubProvider{data: &SessionData{
		Email:        existing.Email,
		Name:         "Ada Renamed",
		SessionToken: "tok-next",
	}}
	userRepo := newStubUserRepo(existing)
	sessionRepo := newStubSessionRepo()

	svc := buildTestService(t, userRepo, sessionRepo, provider)

	result, err := svc.ExchangeSession(context.Background(), "one-time-id")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if result.User.ID != existing.ID {
		t.Fatalf("expected existing user, got %s", result.User.ID)
	}
	if result.User.ZoraCredits != 42.0 {
		t.Fatalf("balances must not be reset on repeat login")
	}
	if len(userRepo.created) != 0 {
		t.Fatalf("expected no user creation for known email")
	}
}

func TestExchangeSessionRequiresSessionID(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), newStubSessionRepo(), &stubProvider{})

	_, err := svc.ExchangeSession(context.Background(), "  ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveIdentityPrefersCookieOverBearer(t *testing.T) {
	cookieUser := &models.User{ID: "user_cookie000001", Email: "cookie@example.com"}
	bearerUser := &models.User{ID: "user_bearer000001", Email: "bearer@example.com"}
	userRepo := newStubUserRepo(cookieUser, bearerUser)
	sessionRepo := newStubSessionRepo(
		&models.Session{UserID: cookieUser.ID, SessionToken: "tok-cookie", ExpiresAt: time.Now().Add(time.Hour)},
		&models.Session{UserID: bearerUser.ID, SessionToken: "tok-bearer", ExpiresAt: time.Now().Add(time.Hour)},
	)

	svc := buildTestService(t, userRepo, sessionRepo, &stubProvider{})

	user, err := svc.ResolveIdentity(context.Background(), "tok-cookie", "tok-bearer")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user == nil || user.ID != cookieUser.ID {
		t.Fatalf("expected cookie identity to win, got %+v", user)
	}
}

func TestResolveIdentityExpiredSessionYieldsNoIdentity(t *testing.T) {
	owner := &models.User{ID: "user_expired00001", Email: "old@example.com"}
	sessionRepo := newStubSessionRepo(&models.Session{
		UserID:       owner.ID,
		SessionToken: "tok-stale",
		ExpiresAt:    time.Now().Add(-time.Second),
	})

	svc := buildTestService(t, newStubUserRepo(owner), sessionRepo, &stubProvider{})

	user, err := svc.ResolveIdentity(context.Background(), "tok-stale", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no identity for expired session")
	}
	if sessionRepo.deletes != 0 {
		t.Fatalf("expired rows must not be deleted during resolution")
	}
}

func TestResolveIdentityUnknownToken(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo(), newStubSessionRepo(), &stubProvider{})

	user, err := svc.ResolveIdentity(context.Background(), "", "tok-unknown")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no identity for unknown token")
	}
}

func TestResolveIdentityOrphanedSession(t *testing.T) {
	sessionRepo := newStubSessionRepo(&models.Session{
		UserID:       "user_gone00000001",
		SessionToken: "tok-orphan",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	svc := buildTestService(t, newStubUserRepo(), sessionRepo, &stubProvider{})

	user, err := svc.ResolveIdentity(context.Background(), "tok-orphan", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user != nil {
		t.Fatalf("expected no identity when session user is missing")
	}
}

func TestLogoutDeletesSessionRow(t *testing.T) {
	sessionRepo := newStubSessionRepo(&models.Session{
		UserID:       "user_logout000001",
		SessionToken: "tok-live",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	svc := buildTestService(t, newStubUserRepo(), sessionRepo, &stubProvider{})

	if err := svc.Logout(context.Background(), "user_logout000001"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessionRepo.deletes != 1 {
		t.Fatalf("expected one delete, got %d", sessionRepo.deletes)
	}
	if _, ok := sessionRepo.byToken["tok-live"]; ok {
		t.Fatalf("expected session removed")
	}
}

func buildTestService(t *testing.T, userRepo *stubUserRepo, sessionRepo *stubSessionRepo, provider Provider) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Provider:    provider,
		SessionTTL:  7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubProvider struct {
	data *SessionData
	err  error
}

func (p *stubProvider) FetchSessionData(_ context.Context, _ string) (*SessionData, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.data == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session id")
	}
	return p.data, nil
}

type stubUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	created []*models.User
}

func newStubUserRepo(seed ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[string]*models.User{},
	}
	for _, user := range seed {
		repo.byEmail[user.Email] = user
		repo.byID[user.ID] = user
	}
	return repo
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	r.created = append(r.created, user)
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ApplyPatch(_ context.Context, id string, patch users.ProfilePatch) error {
	user, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
	}
	if patch.CulturalInterests != nil {
		user.CulturalInterests = *patch.CulturalInterests
	}
	return nil
}

type stubSessionRepo struct {
	byToken map[string]*models.Session
	deletes int
}

func newStubSessionRepo(seed ...*models.Session) *stubSessionRepo {
	repo := &stubSessionRepo{byToken: map[string]*models.Session{}}
	for _, session := range seed {
		repo.byToken[session.SessionToken] = session
	}
	return repo
}

func (r *stubSessionRepo) FindByToken(_ context.Context, token string) (*models.Session, error) {
	if session, ok := r.byToken[token]; ok {
		return session, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSessionRepo) UpsertForUser(_ context.Context, session *models.Session) error {
	for token, existing := range r.byToken {
		if existing.UserID == session.UserID {
			delete(r.byToken, token)
		}
	}
	r.byToken[session.SessionToken] = session
	return nil
}

func (r *stubSessionRepo) DeleteForUser(_ context.Context, userID string) error {
	for token, existing := range r.byToken {
		if existing.UserID == userID {
			delete(r.byToken, token)
			r.deletes++
		}
	}
	return nil
}
