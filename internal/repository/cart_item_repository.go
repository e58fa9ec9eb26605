package repository

import (
	"errors"

	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// CartItemRepository 购物车项数据访问接口
type CartItemRepository interface {
	GetByCartAndProduct(cartID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	AddQuantity(itemID uint, delta int) error
	UpdateQuantity(itemID uint, quantity int) (int64, error)
	Delete(itemID uint) error
	ClearByCart(cartID uint) error
	ListDetailsByCart(cartID uint) ([]CartItemDetail, error)
	WithTx(tx *gorm.DB) *GormCartItemRepository
}

// GormCartItemRepository GORM 实现
type GormCartItemRepository struct {
	db *gorm.DB
}

// NewCartItemRepository 创建购物车项仓库
func NewCartItemRepository(db *gorm.DB) *GormCartItemRepository {
	return &GormCartItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartItemRepository) WithTx(tx *gorm.DB) *GormCartItemRepository {
	if tx == nil {
		return r
	}
	return &GormCartItemRepository{db: tx}
}

// GetByCartAndProduct 查询购物车内的商品行，不存在返回 nil
func (r *GormCartItemRepository) GetByCartAndProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartItemRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// AddQuantity 原子累加数量，避免并发加购丢失更新
func (r *GormCartItemRepository) AddQuantity(itemID uint, delta int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

// UpdateQuantity 覆盖数量，返回受影响行数
func (r *GormCartItemRepository) UpdateQuantity(itemID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// Delete 删除购物车项（幂等）
func (r *GormCartItemRepository) Delete(itemID uint) error {
	return r.db.Where("id = ?", itemID).Delete(&models.CartItem{}).Error
}

// ClearByCart 清空购物车
func (r *GormCartItemRepository) ClearByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// ListDetailsByCart 联查商品目录返回展示用购物车项
func (r *GormCartItemRepository) ListDetailsByCart(cartID uint) ([]CartItemDetail, error) {
	rows := make([]CartItemDetail, 0)
	err := r.db.Table("cart_items").
		Select("cart_items.id AS item_id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.image_url").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
