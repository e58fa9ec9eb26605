package repository

import (
	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// StoreReviewRepository 店铺评价数据访问接口
type StoreReviewRepository interface {
	Create(review *models.StoreReview) error
	ListByStore(storeID uint) ([]models.StoreReview, error)
	WithTx(tx *gorm.DB) *GormStoreReviewRepository
}

// GormStoreReviewRepository GORM 实现
type GormStoreReviewRepository struct {
	db *gorm.DB
}

// NewStoreReviewRepository 创建店铺评价仓库
func NewStoreReviewRepository(db *gorm.DB) *GormStoreReviewRepository {
	return &GormStoreReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormStoreReviewRepository) WithTx(tx *gorm.DB) *GormStoreReviewRepository {
	if tx == nil {
		return r
	}
	return &GormStoreReviewRepository{db: tx}
}

// Create 写入店铺评价
func (r *GormStoreReviewRepository) Create(review *models.StoreReview) error {
	return r.db.Create(review).Error
}

// ListByStore 店铺评价列表，按创建时间倒序
func (r *GormStoreReviewRepository) ListByStore(storeID uint) ([]models.StoreReview, error) {
	reviews := make([]models.StoreReview, 0)
	if err := r.db.Where("store_id = ?", storeID).Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
