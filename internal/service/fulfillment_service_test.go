package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupFulfillmentServiceDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.SaleRecord{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })
	return db
}

func newFulfillmentServiceForTest(db *gorm.DB) *FulfillmentService {
	return NewFulfillmentService(
		repository.NewOrderRepository(db),
		repository.NewSaleRepository(db),
	)
}

// seedFulfillmentOrder 准备 store 2 顾客的一笔待处理订单：2x4.00 + 1x6.50
func seedFulfillmentOrder(t *testing.T, db *gorm.DB) models.Order {
	t.Helper()
	customer := models.Customer{StoreID: 2, Name: "Alice Doe", Email: "alice@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	roll := models.Product{StoreID: 2, Name: "Cinnamon Roll", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.00))}
	bread := models.Product{StoreID: 2, Name: "Sourdough Loaf", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(6.50))}
	if err := db.Create(&roll).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&bread).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	order := models.Order{
		CustomerID:  customer.ID,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(14.50)),
		DateOrdered: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	for _, item := range []models.OrderItem{
		{OrderID: order.ID, ProductID: roll.ID, StoreID: 2, Quantity: 2},
		{OrderID: order.ID, ProductID: bread.ID, StoreID: 2, Quantity: 1},
	} {
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}
	return order
}

func countSales(t *testing.T, db *gorm.DB, orderID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.SaleRecord{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		t.Fatalf("count sale records failed: %v", err)
	}
	return count
}

func TestSetStatusRejectsForeignStore(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_foreign")
	svc := newFulfillmentServiceForTest(db)
	order := seedFulfillmentOrder(t, db)

	err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusDelivered, 9)
	if !errors.Is(err, ErrOrderNotOwnedByStore) {
		t.Fatalf("want ErrOrderNotOwnedByStore got %v", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusPending {
		t.Fatalf("status must not change, got %s", stored.Status)
	}
	if countSales(t, db, order.ID) != 0 {
		t.Fatal("foreign store must not record sales")
	}
}

func TestSetStatusShippedRecordsNoSales(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_shipped")
	svc := newFulfillmentServiceForTest(db)
	order := seedFulfillmentOrder(t, db)

	if err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusShipped, 2); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusShipped {
		t.Fatalf("status want Shipped got %s", stored.Status)
	}
	if stored.SalesRecordedAt != nil {
		t.Fatal("shipped order must not be marked as recorded")
	}
	if countSales(t, db, order.ID) != 0 {
		t.Fatal("shipped order must not create sale records")
	}
}

func TestSetStatusDeliveredRecordsSalesOnce(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_delivered")
	svc := newFulfillmentServiceForTest(db)
	order := seedFulfillmentOrder(t, db)

	if err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusDelivered, 2); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.SalesRecordedAt == nil {
		t.Fatal("delivered order should be marked as recorded")
	}

	var records []models.SaleRecord
	if err := db.Where("order_id = ?", order.ID).Order("product_id").Find(&records).Error; err != nil {
		t.Fatalf("load sale records failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("sale records want 2 got %d", len(records))
	}
	for _, record := range records {
		if record.SaleType != constants.SaleTypeOnline {
			t.Fatalf("sale type want online got %s", record.SaleType)
		}
		if record.StoreID != 2 {
			t.Fatalf("store id want 2 got %d", record.StoreID)
		}
		expected := record.UnitPriceAtSale.Decimal.Mul(decimal.NewFromInt(int64(record.QuantitySold)))
		if !record.TotalSaleAmount.Decimal.Equal(expected) {
			t.Fatalf("line total want %s got %s", expected, record.TotalSaleAmount.Decimal)
		}
	}

	// 重复送达幂等：不报错也不追加销售记录
	if err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusDelivered, 2); err != nil {
		t.Fatalf("repeat delivered failed: %v", err)
	}
	if got := countSales(t, db, order.ID); got != 2 {
		t.Fatalf("repeat delivered must not add records, got %d", got)
	}
}

func TestSetStatusDeliveredBackfillsRecordedFlag(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_backfill")
	svc := newFulfillmentServiceForTest(db)
	order := seedFulfillmentOrder(t, db)

	// 历史数据：流水已存在但订单缺少入账标记
	existing := models.SaleRecord{
		OrderID:         order.ID,
		ProductID:       1,
		SaleDate:        order.DateOrdered,
		SaleType:        constants.SaleTypeOnline,
		QuantitySold:    2,
		UnitPriceAtSale: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.00)),
		TotalSaleAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(8.00)),
		StoreID:         2,
		CustomerID:      order.CustomerID,
	}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("create sale record failed: %v", err)
	}

	if err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusDelivered, 2); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	if got := countSales(t, db, order.ID); got != 1 {
		t.Fatalf("existing sales must not be duplicated, got %d", got)
	}
	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.SalesRecordedAt == nil {
		t.Fatal("recorded flag should be backfilled")
	}
	if stored.Status != constants.OrderStatusDelivered {
		t.Fatalf("status want Delivered got %s", stored.Status)
	}
}

func TestSetStatusDeliveredEmptyOrder(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_empty")
	svc := newFulfillmentServiceForTest(db)

	customer := models.Customer{StoreID: 2, Name: "Bob Roe", Email: "bob@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	order := models.Order{CustomerID: customer.ID, Status: constants.OrderStatusPending, DateOrdered: time.Now()}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	err := svc.SetStatus(context.Background(), order.ID, constants.OrderStatusDelivered, 2)
	if !errors.Is(err, ErrOrderEmpty) {
		t.Fatalf("want ErrOrderEmpty got %v", err)
	}

	// 事务回滚：状态不应停留在 Delivered
	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusPending {
		t.Fatalf("status should roll back to Pending, got %s", stored.Status)
	}
}

func TestSetStatusInvalidStatus(t *testing.T) {
	db := setupFulfillmentServiceDB(t, "fulfillment_invalid")
	svc := newFulfillmentServiceForTest(db)
	order := seedFulfillmentOrder(t, db)

	if err := svc.SetStatus(context.Background(), order.ID, "Teleported", 2); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("want ErrOrderStatusInvalid got %v", err)
	}
}
