package service

import (
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

func setupHistoryServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:history_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestListCustomerOrdersGroupsAndTotals(t *testing.T) {
	db := setupHistoryServiceDB(t)
	svc := NewHistoryService(repository.NewOrderRepository(db))

	bread := models.Product{StoreID: 1, Name: "Sourdough Loaf", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(6.50)), ImageURL: "/img/bread.jpg"}
	roll := models.Product{StoreID: 1, Name: "Cinnamon Roll", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.00))}
	if err := db.Create(&bread).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&roll).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	older := models.Order{CustomerID: 3, Status: constants.OrderStatusDelivered, DateOrdered: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	newer := models.Order{CustomerID: 3, Status: constants.OrderStatusPending, DateOrdered: time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	for _, item := range []models.OrderItem{
		{OrderID: older.ID, ProductID: roll.ID, StoreID: 1, Quantity: 1},
		{OrderID: newer.ID, ProductID: bread.ID, StoreID: 1, Quantity: 2},
		{OrderID: newer.ID, ProductID: roll.ID, StoreID: 1, Quantity: 1},
	} {
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}

	views, err := svc.ListCustomerOrders(3, 1)
	if err != nil {
		t.Fatalf("list customer orders failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views want 2 got %d", len(views))
	}

	// 新订单在前
	first := views[0]
	if first.OrderID != newer.ID || len(first.Items) != 2 {
		t.Fatalf("unexpected first view: %+v", first)
	}
	if first.Items[0].ProductName != "Sourdough Loaf" || first.Items[0].ImageURL != "/img/bread.jpg" {
		t.Fatalf("unexpected first item: %+v", first.Items[0])
	}
	if first.Items[0].ItemTotal.String() != "13.00" {
		t.Fatalf("item total want 13.00 got %s", first.Items[0].ItemTotal.String())
	}
	if first.TotalAmount.String() != "17.00" {
		t.Fatalf("order total want 17.00 got %s", first.TotalAmount.String())
	}

	second := views[1]
	if second.OrderID != older.ID || len(second.Items) != 1 {
		t.Fatalf("unexpected second view: %+v", second)
	}
	if second.TotalAmount.String() != "4.00" {
		t.Fatalf("older total want 4.00 got %s", second.TotalAmount.String())
	}
}

func TestListCustomerOrdersEmpty(t *testing.T) {
	db := setupHistoryServiceDB(t)
	svc := NewHistoryService(repository.NewOrderRepository(db))

	views, err := svc.ListCustomerOrders(42, 1)
	if err != nil {
		t.Fatalf("list customer orders failed: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("want empty list got %+v", views)
	}
}
