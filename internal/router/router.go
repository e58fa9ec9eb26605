package router

import (
	"fmt"
	"strings"

	"github.com/storelink/storelink/internal/cache"
	"github.com/storelink/storelink/internal/config"
	"github.com/storelink/storelink/internal/constants"
	storeadminhandlers "github.com/storelink/storelink/internal/http/handlers/storeadmin"
	storefronthandlers "github.com/storelink/storelink/internal/http/handlers/storefront"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按顾客侧/店主侧分组）
	storefrontHandler := storefronthandlers.New(c)
	storeadminHandler := storeadminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
		Message:       "too many checkout attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	api := r.Group("/api")
	{
		// 购物车
		api.POST("/carts", storefrontHandler.CreateCart)
		api.POST("/cart-items", storefrontHandler.AddCartItem)
		api.GET("/carts/:storeId/:customerId/items", storefrontHandler.ListCartItems)
		api.PUT("/cart-items/:item_id", storefrontHandler.UpdateCartItem)
		api.DELETE("/cart-items/:item_id", storefrontHandler.DeleteCartItem)

		// 结算与订单
		api.POST("/cart/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("customer_id")), storefrontHandler.Checkout)
		api.PUT("/orders/:orderId/status", storefrontHandler.UpdateOrderStatus)
		api.GET("/customer/:customerId/store/:storeId/orders", storefrontHandler.CustomerOrderHistory)

		// 目录与店铺详情
		api.GET("/store/:storeId", storefrontHandler.StoreDetail)
		api.GET("/store/:storeId/products", storefrontHandler.StoreProducts)
		api.GET("/store/:storeId/bestsellers", storefrontHandler.StoreBestsellers)
		api.POST("/reviews", storefrontHandler.SubmitReview)

		// 店主接口
		owner := api.Group("/owner")
		owner.Use(StoreAuthMiddleware(c.AuthService))
		{
			owner.GET("/store", storeadminHandler.GetStore)
			owner.PUT("/store", storeadminHandler.UpdateStore)
			owner.GET("/orders", storeadminHandler.ListOrders)
			owner.GET("/feedback", storeadminHandler.ListFeedback)
			owner.GET("/customers", storeadminHandler.ListCustomers)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
