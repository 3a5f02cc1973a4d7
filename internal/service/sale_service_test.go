package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salestrack/sales-service/internal/cache"
	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/events"
	"github.com/salestrack/sales-service/internal/idgen"
	"github.com/salestrack/sales-service/internal/repository"
	"github.com/salestrack/sales-service/internal/service"
	"github.com/salestrack/sales-service/internal/worker"
	util "github.com/salestrack/sales-service/pkg/util"
)

type fakeSaleRepo struct {
	created        []domain.Sale
	listCalls      int
	aggregateCalls int
	totals         domain.StoreTotals
	leaderboard    []domain.StaffTotal
	daily          []domain.DailyTotal
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *domain.Sale) error {
	sale.ID = "sale-" + sale.ReceiptNo
	sale.CreatedAt = time.Now()
	r.created = append(r.created, *sale)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ repository.SaleFilter) ([]domain.Sale, error) {
	r.listCalls++
	return r.created, nil
}

func (r *fakeSaleRepo) StoreTotals(_ context.Context, storeID string, _, _ time.Time) (*domain.StoreTotals, error) {
	r.aggregateCalls++
	totals := r.totals
	totals.StoreID = storeID
	return &totals, nil
}

func (r *fakeSaleRepo) StaffLeaderboard(_ context.Context, _ string, _, _ time.Time) ([]domain.StaffTotal, error) {
	return r.leaderboard, nil
}

func (r *fakeSaleRepo) DailySeries(_ context.Context, _ string, _, _ time.Time) ([]domain.DailyTotal, error) {
	return r.daily, nil
}

type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	value, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func member() *domain.ClientIdentity {
	return &domain.ClientIdentity{
		ID:         "staff-1",
		Name:       "李雷",
		Role:       domain.StaffRoleManager,
		StoreIDs:   []string{"S1"},
		StoreNames: []string{"Downtown"},
	}
}

func newSaleFixture() (*service.SaleService, *fakeSaleRepo, *memoryCache) {
	repo := &fakeSaleRepo{}
	store := newMemoryCache()
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()
	worker.StartCacheInvalidationWorker(dispatcher, store, logger)

	svc := service.NewSaleService(repo, store, dispatcher, idgen.New(), logger, 5*time.Minute)
	return svc, repo, store
}

func TestSubmitSaleValidation(t *testing.T) {
	svc, repo, _ := newSaleFixture()
	ctx := context.Background()

	_, err := svc.SubmitSale(ctx, member(), service.SubmitSaleInput{AmountCent: 100})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", util.ToDomainError(err).Code)

	_, err = svc.SubmitSale(ctx, member(), service.SubmitSaleInput{StoreID: "S1", AmountCent: 0})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", util.ToDomainError(err).Code)

	assert.Empty(t, repo.created)
}

func TestSubmitSaleRejectsNonMember(t *testing.T) {
	svc, repo, _ := newSaleFixture()

	_, err := svc.SubmitSale(context.Background(), member(), service.SubmitSaleInput{
		StoreID:    "S9",
		AmountCent: 100,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", util.ToDomainError(err).Code)
	assert.Empty(t, repo.created)
}

func TestSubmitSaleRecordsAndInvalidatesDashboard(t *testing.T) {
	svc, repo, store := newSaleFixture()
	ctx := context.Background()

	// A stale dashboard entry is already cached for the store.
	key := service.DashboardCacheKey("S1")
	store.entries[key] = `{"totals":{"storeId":"S1","amountCents":0,"saleCount":0}}`

	sale, err := svc.SubmitSale(ctx, member(), service.SubmitSaleInput{
		StoreID:    "S1",
		AmountCent: 2500,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sale.ID)
	assert.NotEmpty(t, sale.ReceiptNo)
	assert.Equal(t, "staff-1", sale.StaffID)
	require.Len(t, repo.created, 1)

	// The synchronous invalidation handler dropped the cached entry.
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestStoreDashboardReadThrough(t *testing.T) {
	svc, repo, store := newSaleFixture()
	repo.totals = domain.StoreTotals{AmountCent: 5000, SaleCount: 3}
	repo.leaderboard = []domain.StaffTotal{{StaffID: "staff-1", StaffName: "李雷", AmountCent: 5000, SaleCount: 3}}
	repo.daily = []domain.DailyTotal{{Day: "2026-08-30", AmountCent: 5000, SaleCount: 3}}
	ctx := context.Background()

	first, err := svc.StoreDashboard(ctx, member(), "S1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), first.Totals.AmountCent)
	assert.Equal(t, 1, repo.aggregateCalls)
	assert.Contains(t, store.entries, service.DashboardCacheKey("S1"))

	// Second read is served from the cache without touching the repository.
	second, err := svc.StoreDashboard(ctx, member(), "S1")
	require.NoError(t, err)
	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.Leaderboard, second.Leaderboard)
	assert.Equal(t, 1, repo.aggregateCalls)
}

func TestStoreDashboardRequiresMembership(t *testing.T) {
	svc, _, _ := newSaleFixture()

	_, err := svc.StoreDashboard(context.Background(), member(), "S9")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", util.ToDomainError(err).Code)
}

func TestListStoreSalesRequiresMembership(t *testing.T) {
	svc, repo, _ := newSaleFixture()
	ctx := context.Background()

	_, err := svc.ListStoreSales(ctx, member(), "S9", 10, 0)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", util.ToDomainError(err).Code)
	assert.Zero(t, repo.listCalls)

	_, err = svc.ListStoreSales(ctx, member(), "S1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
}
