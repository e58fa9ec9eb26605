package main

import (
	"github.com/storelink/storelink/internal/config"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 示例店铺
	store := models.Store{
		Name:        "Corner Bakery",
		Tagline:     "Fresh every morning",
		Description: "Neighbourhood bakery with daily breads and pastries",
		Address:     "12 Baker Street",
		Email:       "hello@cornerbakery.example",
	}
	var existingStore models.Store
	if err := models.DB.Where("name = ?", store.Name).First(&existingStore).Error; err != nil {
		if err := models.DB.Create(&store).Error; err != nil {
			stdLog.Fatalf("Failed to create store: %v", err)
		}
		stdLog.Printf("Created store: %s (id=%d)", store.Name, store.ID)
	} else {
		store = existingStore
		stdLog.Printf("Store already exists: %s (id=%d)", store.Name, store.ID)
	}

	// 示例商品
	products := []models.Product{
		{StoreID: store.ID, Name: "Sourdough Loaf", Category: "Bread", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(6.50)), Description: "Slow fermented sourdough"},
		{StoreID: store.ID, Name: "Butter Croissant", Category: "Pastry", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(3.25)), Description: "Flaky all-butter croissant"},
		{StoreID: store.ID, Name: "Cinnamon Roll", Category: "Pastry", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.00)), Description: "With cream cheese glaze"},
		{StoreID: store.ID, Name: "Cold Brew Coffee", Category: "Drinks", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)), Description: "Steeped 18 hours"},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("store_id = ? AND name = ?", product.StoreID, product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	// 示例顾客
	customers := []models.Customer{
		{StoreID: store.ID, Name: "Alice Doe", Email: "alice@example.com"},
		{StoreID: store.ID, Name: "Bob Roe", Email: "bob@example.com"},
	}
	for _, customer := range customers {
		var existing models.Customer
		if err := models.DB.Where("store_id = ? AND email = ?", customer.StoreID, customer.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&customer).Error; err != nil {
				stdLog.Printf("Failed to create customer %s: %v", customer.Email, err)
			} else {
				stdLog.Printf("Created customer: %s", customer.Email)
			}
		} else {
			stdLog.Printf("Customer already exists: %s", customer.Email)
		}
	}

	stdLog.Printf("Seed finished")
}
