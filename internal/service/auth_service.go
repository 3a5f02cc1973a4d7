package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/config"
	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/repository"
)

// AdminSessionTTL is the fixed lifetime of an admin session. The expiry
// lives next to the stored token, not inside the token payload.
const AdminSessionTTL = 24 * time.Hour

// AuthService owns both authentication flows: stateful admin sessions
// backed by the credential store, and stateless client tokens for staff.
type AuthService struct {
	admins       repository.AdminRepository
	staff        repository.StaffRepository
	clientTokens *auth.ClientTokenManager
	secret       []byte
	salt         string
	now          func() time.Time
}

// AuthDependencies encapsulates repo requirements for the auth service.
type AuthDependencies struct {
	AdminRepo repository.AdminRepository
	StaffRepo repository.StaffRepository
}

// NewAuthService builds the service. Config is validated at load time, so a
// bad secret or lifetime here means the process never got this far.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) (*AuthService, error) {
	clientTokens, err := auth.NewClientTokenManager(cfg.TokenSecret, cfg.ClientTokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		admins:       deps.AdminRepo,
		staff:        deps.StaffRepo,
		clientTokens: clientTokens,
		secret:       []byte(cfg.TokenSecret),
		salt:         cfg.PasswordSalt,
		now:          time.Now,
	}, nil
}

// WithClock overrides the time source, for tests.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	s.clientTokens.WithClock(now)
	return s
}

// AdminLogin authenticates by username and salted password hash, signs a
// session token, and persists it to the credential row with a fresh expiry.
// A second login for the same account overwrites the row, so the previous
// token stops verifying immediately: one live session per account, last
// write wins. Whether the username or the password was wrong is not
// distinguished in the failure.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*domain.AdminIdentity, string, int64, error) {
	if username == "" || password == "" {
		return nil, "", 0, auth.ErrInvalidCredentials
	}

	hash := auth.HashPassword(password, s.salt)
	admin, err := s.admins.GetByUsernameAndHash(ctx, username, hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", 0, auth.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	token, err := auth.IssueAdminToken(admin.ID, admin.Username, s.now().Unix(), s.secret)
	if err != nil {
		return nil, "", 0, err
	}

	expiresAt := s.now().Add(AdminSessionTTL)
	if err := s.admins.UpdateToken(ctx, admin.ID, token, expiresAt); err != nil {
		return nil, "", 0, err
	}

	identity := &domain.AdminIdentity{ID: admin.ID, Username: admin.Username, Role: "admin"}
	return identity, token, AdminSessionTTL.Milliseconds(), nil
}

// VerifyAdminToken validates a session token by credential-row lookup alone:
// a token only exists in the store because this service put it there, so the
// live row is the trust boundary and the HMAC is not re-checked here.
// Revocation is the row being overwritten or its expiry lapsing.
func (s *AuthService) VerifyAdminToken(ctx context.Context, token string) (*domain.AdminIdentity, error) {
	admin, err := s.admins.GetByLiveToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return &domain.AdminIdentity{ID: admin.ID, Username: admin.Username, Role: "admin"}, nil
}

// IssueClientToken resolves a tracking id through the staff directory and
// signs a self-contained token embedding the identity and store memberships.
// Nothing is persisted; the token is valid until its embedded expiry.
func (s *AuthService) IssueClientToken(ctx context.Context, trackingID string) (string, auth.ClientClaims, error) {
	if trackingID == "" {
		return "", auth.ClientClaims{}, auth.ErrUnknownTrackingID
	}

	staff, err := s.staff.GetByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ClientClaims{}, auth.ErrUnknownTrackingID
		}
		return "", auth.ClientClaims{}, err
	}

	memberships, err := s.staff.GetStoreMemberships(ctx, staff.ID)
	if err != nil {
		return "", auth.ClientClaims{}, err
	}

	user := domain.ClientIdentity{
		ID:   staff.ID,
		Name: staff.Name,
		Role: domain.RoleFromCode(staff.RoleCode),
	}
	for _, m := range memberships {
		user.StoreIDs = append(user.StoreIDs, m.StoreID)
		user.StoreNames = append(user.StoreNames, m.StoreName)
	}

	return s.clientTokens.Issue(user)
}

// VerifyClientToken validates a stateless token and returns its identity.
func (s *AuthService) VerifyClientToken(token string) (*domain.ClientIdentity, error) {
	return s.clientTokens.Verify(token)
}
