package service

import (
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

func setupCheckoutServiceDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })
	return db
}

func newCheckoutServiceForTest(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		repository.NewCartRepository(db),
		repository.NewCartItemRepository(db),
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
	)
}

func checkoutMoney(t *testing.T, value string) *models.Money {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %s failed: %v", value, err)
	}
	m := models.NewMoneyFromDecimal(d)
	return &m
}

func seedCheckoutFixture(t *testing.T, db *gorm.DB) (models.Cart, models.Product, models.Product) {
	t.Helper()
	roll := models.Product{StoreID: 1, Name: "Cinnamon Roll", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.00))}
	brew := models.Product{StoreID: 1, Name: "Cold Brew Coffee", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(5.00))}
	if err := db.Create(&roll).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&brew).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	cart := models.Cart{StoreID: 1, CustomerID: 2, Status: constants.CartStatusActive}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	for _, item := range []models.CartItem{
		{CartID: cart.ID, ProductID: roll.ID, Quantity: 2},
		{CartID: cart.ID, ProductID: brew.ID, Quantity: 1},
	} {
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}
	return cart, roll, brew
}

func TestCheckoutHappyPath(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_happy")
	svc := newCheckoutServiceForTest(db)
	cart, roll, brew := seedCheckoutFixture(t, db)

	order, err := svc.Checkout(CheckoutInput{
		CustomerID:  2,
		StoreID:     1,
		TotalAmount: checkoutMoney(t, "13.00"),
		Items: []CheckoutItemInput{
			{ProductID: roll.ID, Quantity: 2},
			{ProductID: brew.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order == nil || order.ID == 0 {
		t.Fatalf("order should be created, got %+v", order)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("default status want Pending got %s", order.Status)
	}
	if order.TotalAmount.String() != "13.00" {
		t.Fatalf("total want 13.00 got %s", order.TotalAmount.String())
	}

	var itemCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if itemCount != 2 {
		t.Fatalf("order items want 2 got %d", itemCount)
	}

	// 结算后购物车被清空并标记为 completed
	var leftover int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&leftover).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if leftover != 0 {
		t.Fatalf("cart should be cleared, %d items left", leftover)
	}
	var stored models.Cart
	if err := db.First(&stored, cart.ID).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if stored.Status != constants.CartStatusCompleted {
		t.Fatalf("cart status want completed got %s", stored.Status)
	}
}

func TestCheckoutTotalMismatchRollsBack(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_mismatch")
	svc := newCheckoutServiceForTest(db)
	cart, roll, _ := seedCheckoutFixture(t, db)

	_, err := svc.Checkout(CheckoutInput{
		CustomerID:  2,
		StoreID:     1,
		TotalAmount: checkoutMoney(t, "9.99"),
		Items:       []CheckoutItemInput{{ProductID: roll.ID, Quantity: 2}},
	})
	if !errors.Is(err, ErrOrderTotalMismatch) {
		t.Fatalf("want ErrOrderTotalMismatch got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("mismatch must not create orders, got %d", orderCount)
	}
	var stored models.Cart
	if err := db.First(&stored, cart.ID).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if stored.Status != constants.CartStatusActive {
		t.Fatalf("cart should stay active, got %s", stored.Status)
	}
}

func TestCheckoutMergesDuplicateItems(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_merge")
	svc := newCheckoutServiceForTest(db)
	_, roll, _ := seedCheckoutFixture(t, db)

	order, err := svc.Checkout(CheckoutInput{
		CustomerID: 2,
		StoreID:    1,
		Items: []CheckoutItemInput{
			{ProductID: roll.ID, Quantity: 1},
			{ProductID: roll.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.TotalAmount.String() != "12.00" {
		t.Fatalf("total want 12.00 got %s", order.TotalAmount.String())
	}

	var item models.OrderItem
	if err := db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("load order item failed: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("merged quantity want 3 got %d", item.Quantity)
	}
}

func TestCheckoutWithoutActiveCart(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_no_cart")
	svc := newCheckoutServiceForTest(db)

	product := models.Product{StoreID: 1, Name: "Sourdough Loaf", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(6.50))}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	_, err := svc.Checkout(CheckoutInput{
		CustomerID: 2,
		StoreID:    1,
		Items:      []CheckoutItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrNoActiveCart) {
		t.Fatalf("want ErrNoActiveCart got %v", err)
	}
}

func TestCheckoutRejectsForeignStoreProduct(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_foreign_product")
	svc := newCheckoutServiceForTest(db)
	seedCheckoutFixture(t, db)

	foreign := models.Product{StoreID: 9, Name: "Matcha Latte", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(5.50))}
	if err := db.Create(&foreign).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	// 其他店铺的商品不可结算，即便 ID 真实存在
	_, err := svc.Checkout(CheckoutInput{
		CustomerID: 2,
		StoreID:    1,
		Items:      []CheckoutItemInput{{ProductID: foreign.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("foreign product must not create orders, got %d", orderCount)
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	db := setupCheckoutServiceDB(t, "checkout_unknown_product")
	svc := newCheckoutServiceForTest(db)
	seedCheckoutFixture(t, db)

	_, err := svc.Checkout(CheckoutInput{
		CustomerID: 2,
		StoreID:    1,
		Items:      []CheckoutItemInput{{ProductID: 424242, Quantity: 1}},
	})
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
}
