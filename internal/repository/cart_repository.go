package repository

import (
	"errors"
	"time"

	"github.com/storelink/storelink/internal/constants"
	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByStoreAndCustomer(storeID, customerID uint) (*models.Cart, error)
	GetActiveByStoreAndCustomer(storeID, customerID uint, forUpdate bool) (*models.Cart, error)
	CreateIfAbsent(cart *models.Cart) (bool, error)
	Reactivate(cartID uint, now time.Time) error
	Complete(cartID uint, now time.Time) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByStoreAndCustomer 按店铺与顾客查询购物车，不存在返回 nil
func (r *GormCartRepository) GetByStoreAndCustomer(storeID, customerID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("store_id = ? AND customer_id = ?", storeID, customerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetActiveByStoreAndCustomer 查询活跃购物车，forUpdate 时加行级锁
func (r *GormCartRepository) GetActiveByStoreAndCustomer(storeID, customerID uint, forUpdate bool) (*models.Cart, error) {
	query := r.db
	if forUpdate {
		query = lockForUpdate(query)
	}
	var cart models.Cart
	err := query.Where("store_id = ? AND customer_id = ? AND status = ?", storeID, customerID, constants.CartStatusActive).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateIfAbsent 创建购物车。并发下同键已被抢先插入时不报唯一索引冲突，
// 而是回读既有行写入 cart。返回是否真正插入了新行。
func (r *GormCartRepository) CreateIfAbsent(cart *models.Cart) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "customer_id"}},
		DoNothing: true,
	}).Create(cart)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}
	existing, err := r.GetByStoreAndCustomer(cart.StoreID, cart.CustomerID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, gorm.ErrRecordNotFound
	}
	*cart = *existing
	return false, nil
}

// Reactivate 将已结算购物车原地复用为活跃状态
func (r *GormCartRepository) Reactivate(cartID uint, now time.Time) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"status":     constants.CartStatusActive,
		"updated_at": now,
	}).Error
}

// Complete 结算购物车
func (r *GormCartRepository) Complete(cartID uint, now time.Time) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Updates(map[string]interface{}{
		"status":     constants.CartStatusCompleted,
		"updated_at": now,
	}).Error
}
