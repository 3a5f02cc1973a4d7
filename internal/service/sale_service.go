package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salestrack/sales-service/internal/cache"
	"github.com/salestrack/sales-service/internal/domain"
	"github.com/salestrack/sales-service/internal/events"
	"github.com/salestrack/sales-service/internal/idgen"
	"github.com/salestrack/sales-service/internal/repository"
	util "github.com/salestrack/sales-service/pkg/util"
)

// dashboardWindowDays is the rolling window the cached dashboard covers.
const dashboardWindowDays = 30

// DashboardCacheKey returns the cache key for a store's dashboard.
func DashboardCacheKey(storeID string) string {
	return "dashboard:store:" + storeID
}

// Dashboard bundles the aggregates a manager sees for one store.
type Dashboard struct {
	Totals      domain.StoreTotals  `json:"totals"`
	Leaderboard []domain.StaffTotal `json:"leaderboard"`
	Daily       []domain.DailyTotal `json:"daily"`
	From        time.Time           `json:"from"`
	To          time.Time           `json:"to"`
}

// SubmitSaleInput is a validated sale submission.
type SubmitSaleInput struct {
	StoreID    string
	ProductID  *string
	AmountCent int64
	SoldAt     *time.Time
}

// SaleService records sales and serves dashboards through a read-through
// cache. Writers never update cached values in place; recording a sale
// publishes an event and the invalidation worker deletes the store's entry.
type SaleService struct {
	sales      repository.SaleRepository
	store      cache.Cache
	dispatcher events.Dispatcher
	receipts   *idgen.Generator
	logger     *zap.Logger
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewSaleService builds the service.
func NewSaleService(sales repository.SaleRepository, store cache.Cache, dispatcher events.Dispatcher, receipts *idgen.Generator, logger *zap.Logger, cacheTTL time.Duration) *SaleService {
	return &SaleService{
		sales:      sales,
		store:      store,
		dispatcher: dispatcher,
		receipts:   receipts,
		logger:     logger,
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *SaleService) WithClock(now func() time.Time) *SaleService {
	s.now = now
	return s
}

// SubmitSale records a sale on behalf of the authenticated staff member.
// Staff can only record against stores they belong to.
func (s *SaleService) SubmitSale(ctx context.Context, actor *domain.ClientIdentity, input SubmitSaleInput) (*domain.Sale, error) {
	if input.StoreID == "" {
		return nil, util.NewValidationError("store id required", nil)
	}
	if input.AmountCent <= 0 {
		return nil, util.NewValidationError("amount must be positive", nil)
	}
	if !actor.MemberOf(input.StoreID) {
		return nil, util.NewForbidden("not a member of this store")
	}

	soldAt := s.now()
	if input.SoldAt != nil {
		soldAt = *input.SoldAt
	}

	sale := &domain.Sale{
		ReceiptNo:  s.receipts.Next(),
		StoreID:    input.StoreID,
		StaffID:    actor.ID,
		ProductID:  input.ProductID,
		AmountCent: input.AmountCent,
		SoldAt:     soldAt,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSaleRecorded,
		StoreID:   sale.StoreID,
		Timestamp: s.now(),
		Payload: events.SaleRecordedPayload{
			SaleID:     sale.ID,
			ReceiptNo:  sale.ReceiptNo,
			StaffID:    sale.StaffID,
			ProductID:  sale.ProductID,
			AmountCent: sale.AmountCent,
		},
	})

	return sale, nil
}

// ListOwnSales lists the actor's own sales, newest first.
func (s *SaleService) ListOwnSales(ctx context.Context, actor *domain.ClientIdentity, limit, offset int) ([]domain.Sale, error) {
	return s.sales.List(ctx, repository.SaleFilter{
		StaffID: &actor.ID,
		Limit:   limit,
		Offset:  offset,
	})
}

// ListStoreSales lists a store's sales for a manager of that store.
func (s *SaleService) ListStoreSales(ctx context.Context, actor *domain.ClientIdentity, storeID string, limit, offset int) ([]domain.Sale, error) {
	if !actor.MemberOf(storeID) {
		return nil, util.NewForbidden("not a member of this store")
	}
	return s.sales.List(ctx, repository.SaleFilter{
		StoreID: &storeID,
		Limit:   limit,
		Offset:  offset,
	})
}

// StoreDashboard serves the rolling dashboard for one store. Cache hits skip
// Postgres entirely; misses (or an unreachable cache) fall through to the
// aggregate queries and repopulate the entry.
func (s *SaleService) StoreDashboard(ctx context.Context, actor *domain.ClientIdentity, storeID string) (*Dashboard, error) {
	if !actor.MemberOf(storeID) {
		return nil, util.NewForbidden("not a member of this store")
	}

	key := DashboardCacheKey(storeID)
	if cached, err := s.store.Get(ctx, key); err == nil {
		var dashboard Dashboard
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			return &dashboard, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("dashboard cache read failed", zap.String("store_id", storeID), zap.Error(err))
	}

	to := s.now()
	from := to.AddDate(0, 0, -dashboardWindowDays)

	totals, err := s.sales.StoreTotals(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	leaderboard, err := s.sales.StaffLeaderboard(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.sales.DailySeries(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Totals:      *totals,
		Leaderboard: leaderboard,
		Daily:       daily,
		From:        from,
		To:          to,
	}

	if encoded, err := json.Marshal(dashboard); err == nil {
		if err := s.store.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.String("store_id", storeID), zap.Error(err))
		}
	}

	return dashboard, nil
}
