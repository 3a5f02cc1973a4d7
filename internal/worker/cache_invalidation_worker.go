package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/salestrack/sales-service/internal/cache"
	"github.com/salestrack/sales-service/internal/events"
	"github.com/salestrack/sales-service/internal/service"
)

// StartCacheInvalidationWorker subscribes the delete-on-write invalidation
// handler: any recorded sale drops the store's cached dashboard so the next
// read repopulates it from Postgres.
func StartCacheInvalidationWorker(dispatcher events.Dispatcher, store cache.Cache, logger *zap.Logger) {
	if dispatcher == nil || store == nil {
		return
	}

	dispatcher.Subscribe(events.EventSaleRecorded, func(ctx context.Context, event events.Event) error {
		key := service.DashboardCacheKey(event.StoreID)
		if err := store.Del(ctx, key); err != nil {
			logger.Warn("dashboard cache invalidation failed",
				zap.String("store_id", event.StoreID),
				zap.Error(err))
			return err
		}
		logger.Debug("dashboard cache invalidated", zap.String("store_id", event.StoreID))
		return nil
	})
}
