package provider

import (
	"github.com/storelink/storelink/internal/cache"
	"github.com/storelink/storelink/internal/config"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"
	"github.com/storelink/storelink/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	StoreRepo       repository.StoreRepository
	CustomerRepo    repository.CustomerRepository
	ProductRepo     repository.ProductRepository
	CartRepo        repository.CartRepository
	CartItemRepo    repository.CartItemRepository
	OrderRepo       repository.OrderRepository
	SaleRepo        repository.SaleRepository
	FeedbackRepo    repository.FeedbackRepository
	StoreReviewRepo repository.StoreReviewRepository

	// Services
	AuthService        *service.AuthService
	CartService        *service.CartService
	CheckoutService    *service.CheckoutService
	FulfillmentService *service.FulfillmentService
	HistoryService     *service.HistoryService
	StoreService       *service.StoreService
	CatalogService     *service.CatalogService
	FeedbackService    *service.FeedbackService
	ReviewService      *service.ReviewService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StoreRepo = repository.NewStoreRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.CartItemRepo = repository.NewCartItemRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.FeedbackRepo = repository.NewFeedbackRepository(db)
	c.StoreReviewRepo = repository.NewStoreReviewRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config)
	c.CartService = service.NewCartService(c.CartRepo, c.CartItemRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, c.CartItemRepo, c.OrderRepo, c.ProductRepo)
	c.FulfillmentService = service.NewFulfillmentService(c.OrderRepo, c.SaleRepo)
	c.HistoryService = service.NewHistoryService(c.OrderRepo)
	c.StoreService = service.NewStoreService(c.StoreRepo, c.OrderRepo, c.CustomerRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.StoreRepo)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo)
	c.ReviewService = service.NewReviewService(c.StoreReviewRepo, c.CustomerRepo, c.StoreRepo)
}
