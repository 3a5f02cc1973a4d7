package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salestrack/sales-service/internal/auth"
	"github.com/salestrack/sales-service/internal/config"
	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/repository"
	"github.com/salestrack/sales-service/internal/service"
)

type fakeAdminRepo struct {
	accounts map[string]*domain.AdminAccount // keyed by id
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{accounts: map[string]*domain.AdminAccount{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *domain.AdminAccount) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	r.accounts[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) GetByUsernameAndHash(_ context.Context, username, passwordHash string) (*domain.AdminAccount, error) {
	for _, admin := range r.accounts {
		if admin.Username == username && admin.PasswordHash == passwordHash {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAdminRepo) UpdateToken(_ context.Context, id, token string, expiresAt time.Time) error {
	admin, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.Token = &token
	admin.TokenExpires = &expiresAt
	return nil
}

func (r *fakeAdminRepo) GetByLiveToken(_ context.Context, token string, now time.Time) (*domain.AdminAccount, error) {
	for _, admin := range r.accounts {
		if admin.Token != nil && *admin.Token == token && admin.TokenExpires != nil && admin.TokenExpires.After(now) {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeStaffRepo struct {
	byTracking  map[string]*domain.StaffMember
	memberships map[string][]domain.StoreMembership
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		byTracking:  map[string]*domain.StaffMember{},
		memberships: map[string][]domain.StoreMembership{},
	}
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.StaffMember) error {
	r.byTracking[staff.TrackingID] = staff
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.StaffMember) error {
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.StaffMember, error) {
	for _, staff := range r.byTracking {
		if staff.ID == id {
			return staff, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStaffRepo) GetByTrackingID(_ context.Context, trackingID string) (*domain.StaffMember, error) {
	staff, ok := r.byTracking[trackingID]
	if !ok || !staff.Active {
		return nil, pgx.ErrNoRows
	}
	return staff, nil
}

func (r *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter) ([]domain.StaffMember, error) {
	return nil, nil
}

func (r *fakeStaffRepo) GetStoreMemberships(_ context.Context, staffID string) ([]domain.StoreMembership, error) {
	return r.memberships[staffID], nil
}

func (r *fakeStaffRepo) ReplaceStoreMemberships(_ context.Context, staffID string, storeIDs []string) error {
	var m []domain.StoreMembership
	for _, id := range storeIDs {
		m = append(m, domain.StoreMembership{StoreID: id})
	}
	r.memberships[staffID] = m
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:         "service-test-secret",
		PasswordSalt:        "NACL",
		ClientTokenTTLHours: 24,
	}
}

func newTestAuthService(t *testing.T, admins *fakeAdminRepo, staff *fakeStaffRepo) *service.AuthService {
	t.Helper()
	svc, err := service.NewAuthService(testAuthConfig(), service.AuthDependencies{
		AdminRepo: admins,
		StaffRepo: staff,
	})
	require.NoError(t, err)
	return svc
}

func seedAdmin(repo *fakeAdminRepo) {
	repo.accounts["admin-1"] = &domain.AdminAccount{
		ID:           "admin-1",
		Username:     "admin",
		PasswordHash: auth.HashPassword("secret123", "NACL"),
	}
}

func TestAdminLoginSuccess(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(admins)
	svc := newTestAuthService(t, admins, newFakeStaffRepo())

	identity, token, expiresIn, err := svc.AdminLogin(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "admin-1", identity.ID)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, "admin", identity.Role)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(86400000), expiresIn)

	// The token was persisted to the credential row.
	stored := admins.accounts["admin-1"]
	require.NotNil(t, stored.Token)
	assert.Equal(t, token, *stored.Token)
}

func TestAdminLoginFailuresCollapse(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(admins)
	svc := newTestAuthService(t, admins, newFakeStaffRepo())

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"nosuchuser", "secret123"},
		{"", "secret123"},
		{"admin", ""},
	}
	for _, tc := range cases {
		_, _, _, err := svc.AdminLogin(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "username=%q password=%q", tc.username, tc.password)
	}
}

func TestVerifyAdminTokenLifecycle(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(admins)

	now := time.Unix(1700000000, 0)
	svc := newTestAuthService(t, admins, newFakeStaffRepo()).WithClock(func() time.Time { return now })

	_, token, _, err := svc.AdminLogin(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	identity, err := svc.VerifyAdminToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", identity.ID)

	// Still live just before the stored expiry.
	now = now.Add(24*time.Hour - time.Second)
	_, err = svc.VerifyAdminToken(context.Background(), token)
	require.NoError(t, err)

	// Dead once the stored expiry passes.
	now = now.Add(2 * time.Second)
	_, err = svc.VerifyAdminToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAdminReloginRevokesPriorSession(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(admins)

	now := time.Unix(1700000000, 0)
	svc := newTestAuthService(t, admins, newFakeStaffRepo()).WithClock(func() time.Time { return now })

	_, first, _, err := svc.AdminLogin(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, second, _, err := svc.AdminLogin(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	_, err = svc.VerifyAdminToken(context.Background(), second)
	require.NoError(t, err)

	// The overwritten row no longer matches the first token.
	_, err = svc.VerifyAdminToken(context.Background(), first)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyAdminTokenNeverIssued(t *testing.T) {
	admins := newFakeAdminRepo()
	seedAdmin(admins)
	svc := newTestAuthService(t, admins, newFakeStaffRepo())

	_, err := svc.VerifyAdminToken(context.Background(), "whatever.token.value")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssueClientToken(t *testing.T) {
	staff := newFakeStaffRepo()
	staff.byTracking["T1"] = &domain.StaffMember{
		ID:         "staff-1",
		TrackingID: "T1",
		Name:       "李雷",
		RoleCode:   1,
		Active:     true,
	}
	staff.memberships["staff-1"] = []domain.StoreMembership{
		{StoreID: "store-1", StoreName: "Downtown"},
	}

	now := time.Unix(1700000000, 0)
	svc := newTestAuthService(t, newFakeAdminRepo(), staff).WithClock(func() time.Time { return now })

	token, claims, err := svc.IssueClientToken(context.Background(), "T1")
	require.NoError(t, err)

	assert.Equal(t, int64(86400), claims.ExpiresAt-claims.IssuedAt)
	assert.Equal(t, domain.StaffRoleManager, claims.User.Role)
	assert.Equal(t, "李雷", claims.User.Name)
	assert.Equal(t, []string{"store-1"}, claims.User.StoreIDs)
	assert.Equal(t, []string{"Downtown"}, claims.User.StoreNames)

	user, err := svc.VerifyClientToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.User, *user)
}

func TestIssueClientTokenUnknownTrackingID(t *testing.T) {
	svc := newTestAuthService(t, newFakeAdminRepo(), newFakeStaffRepo())

	_, _, err := svc.IssueClientToken(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, auth.ErrUnknownTrackingID)

	_, _, err = svc.IssueClientToken(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrUnknownTrackingID)
}

func TestIssueClientTokenInactiveStaff(t *testing.T) {
	staff := newFakeStaffRepo()
	staff.byTracking["T2"] = &domain.StaffMember{
		ID:         "staff-2",
		TrackingID: "T2",
		Name:       "Han",
		RoleCode:   2,
		Active:     false,
	}
	svc := newTestAuthService(t, newFakeAdminRepo(), staff)

	_, _, err := svc.IssueClientToken(context.Background(), "T2")
	assert.ErrorIs(t, err, auth.ErrUnknownTrackingID)
}
