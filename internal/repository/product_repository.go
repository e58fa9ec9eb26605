package repository

import (
	"errors"

	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	ListByStore(storeID uint) ([]models.Product, error)
	MapPricesByIDs(storeID uint, ids []uint) (map[uint]models.Money, error)
	ListBestsellers(storeID uint, limit int) ([]BestsellerRow, error)
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByID 按ID查询商品，不存在返回 nil
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByStore 查询店铺商品目录
func (r *GormProductRepository) ListByStore(storeID uint) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Where("store_id = ?", storeID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// MapPricesByIDs 批量查询店铺内商品单价。
// 缺失或不属于该店铺的商品不会出现在结果里。
func (r *GormProductRepository) MapPricesByIDs(storeID uint, ids []uint) (map[uint]models.Money, error) {
	prices := make(map[uint]models.Money, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}
	var products []models.Product
	if err := r.db.Select("id", "price").Where("store_id = ? AND id IN ?", storeID, ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, product := range products {
		prices[product.ID] = product.Price
	}
	return prices, nil
}

// ListBestsellers 按历史订单销量取店铺畅销商品
func (r *GormProductRepository) ListBestsellers(storeID uint, limit int) ([]BestsellerRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]BestsellerRow, 0, limit)
	err := r.db.Table("products").
		Select("products.id AS product_id, products.name, products.price, products.image_url, COALESCE(SUM(order_items.quantity), 0) AS total_sold").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.id").
		Where("products.store_id = ?", storeID).
		Group("products.id, products.name, products.price, products.image_url").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
