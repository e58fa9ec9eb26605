package service

import (
	"context"
	"fmt"
	"time"

	"github.com/storelink/storelink/internal/cache"
	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/repository"
)

const catalogCacheTTL = 60 * time.Second

func storeProductsCacheKey(storeID uint) string {
	return fmt.Sprintf("store:%d:products", storeID)
}

func storeBestsellersCacheKey(storeID uint) string {
	return fmt.Sprintf("store:%d:bestsellers", storeID)
}

// CatalogService 店铺商品目录查询（带 Redis 缓存）
type CatalogService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, storeRepo repository.StoreRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// ListProducts 店铺商品列表
func (s *CatalogService) ListProducts(ctx context.Context, storeID uint) ([]models.Product, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}

	cacheKey := storeProductsCacheKey(storeID)
	cached := make([]models.Product, 0)
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, ErrStoreFetchFailed
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	products, err := s.productRepo.ListByStore(storeID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}

	if err := cache.SetJSON(ctx, cacheKey, products, catalogCacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", cacheKey, "error", err)
	}
	return products, nil
}

// ListBestsellers 店铺畅销商品（按历史销量取前 N 名）
func (s *CatalogService) ListBestsellers(ctx context.Context, storeID uint) ([]repository.BestsellerRow, error) {
	if storeID == 0 {
		return nil, ErrStoreNotFound
	}

	cacheKey := storeBestsellersCacheKey(storeID)
	cached := make([]repository.BestsellerRow, 0)
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.productRepo.ListBestsellers(storeID, constants.BestsellerLimitDefault)
	if err != nil {
		return nil, ErrProductFetchFailed
	}

	if err := cache.SetJSON(ctx, cacheKey, rows, catalogCacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "key", cacheKey, "error", err)
	}
	return rows, nil
}
