package service

import (
	"context"
	"errors"
	"time"

	"github.com/storelink/storelink/internal/cache"
	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"

	"gorm.io/gorm"
)

// FulfillmentService 订单履约状态机：状态流转与送达销售入账
type FulfillmentService struct {
	orderRepo repository.OrderRepository
	saleRepo  repository.SaleRepository
}

// NewFulfillmentService 创建履约服务
func NewFulfillmentService(orderRepo repository.OrderRepository, saleRepo repository.SaleRepository) *FulfillmentService {
	return &FulfillmentService{
		orderRepo: orderRepo,
		saleRepo:  saleRepo,
	}
}

// SetStatus 更新订单状态（联表鉴权：订单必须归属该店铺的顾客）。
// 状态为 Delivered 时在同一事务内完成销售入账，且同一订单只入账一次。
func (s *FulfillmentService) SetStatus(ctx context.Context, orderID uint, status string, storeID uint) error {
	if orderID == 0 || storeID == 0 {
		return ErrOrderItemInvalid
	}
	if !constants.OrderStatuses[status] {
		return ErrOrderStatusInvalid
	}

	now := time.Now()
	recorded := false
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		affected, err := orderRepo.UpdateStatusForStore(orderID, storeID, status, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotOwnedByStore
		}
		if status != constants.OrderStatusDelivered {
			return nil
		}

		// 锁定订单行后检查入账标记，重复送达直接跳过
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.SalesRecordedAt != nil {
			logger.Infow("order_sales_already_recorded",
				"order_id", orderID,
				"store_id", storeID,
				"recorded_at", order.SalesRecordedAt,
			)
			return nil
		}

		// 标记缺失但流水已存在（标记引入前的历史数据）：补齐标记，不重复入账
		saleRepo := s.saleRepo.WithTx(tx)
		existingSales, err := saleRepo.CountByOrder(orderID)
		if err != nil {
			return err
		}
		if existingSales > 0 {
			logger.Warnw("order_sales_present_without_flag",
				"order_id", orderID,
				"store_id", storeID,
				"sale_count", existingSales,
			)
			return orderRepo.MarkSalesRecorded(orderID, now)
		}

		sources, err := orderRepo.ListSaleSources(orderID, storeID)
		if err != nil {
			return err
		}
		if len(sources) == 0 {
			return ErrOrderEmpty
		}

		records := make([]models.SaleRecord, 0, len(sources))
		for _, source := range sources {
			records = append(records, models.SaleRecord{
				OrderID:         orderID,
				ProductID:       source.ProductID,
				SaleDate:        source.DateOrdered,
				SaleType:        constants.SaleTypeOnline,
				QuantitySold:    source.Quantity,
				UnitPriceAtSale: source.UnitPrice,
				TotalSaleAmount: source.UnitPrice.MulInt(source.Quantity),
				StoreID:         storeID,
				CustomerID:      source.CustomerID,
			})
		}
		if err := saleRepo.CreateBatch(records); err != nil {
			return err
		}
		if err := orderRepo.MarkSalesRecorded(orderID, now); err != nil {
			return err
		}
		recorded = true
		return nil
	})
	if err != nil {
		for _, known := range []error{ErrOrderNotOwnedByStore, ErrOrderNotFound, ErrOrderEmpty, ErrOrderStatusInvalid} {
			if errors.Is(err, known) {
				return known
			}
		}
		logger.Errorw("order_status_update_failed",
			"order_id", orderID,
			"store_id", storeID,
			"target_status", status,
			"error", err,
		)
		return ErrOrderUpdateFailed
	}

	// 入账改变历史销量，失效畅销榜缓存
	if recorded {
		if err := cache.Del(ctx, storeBestsellersCacheKey(storeID)); err != nil {
			logger.Warnw("bestseller_cache_invalidate_failed", "store_id", storeID, "error", err)
		}
	}
	return nil
}
