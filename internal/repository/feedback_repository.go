package repository

import (
	"gorm.io/gorm"
)

// FeedbackRepository 顾客评价数据访问接口
type FeedbackRepository interface {
	ListByStore(storeID uint) ([]FeedbackRow, error)
	WithTx(tx *gorm.DB) *GormFeedbackRepository
}

// GormFeedbackRepository GORM 实现
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建评价仓库
func NewFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFeedbackRepository) WithTx(tx *gorm.DB) *GormFeedbackRepository {
	if tx == nil {
		return r
	}
	return &GormFeedbackRepository{db: tx}
}

// ListByStore 店铺评价列表（联查顾客与商品名称），按评价时间倒序
func (r *GormFeedbackRepository) ListByStore(storeID uint) ([]FeedbackRow, error) {
	rows := make([]FeedbackRow, 0)
	err := r.db.Table("feedbacks").
		Select("feedbacks.id AS feedback_id, customers.name AS customer_name, products.name AS product_name, feedbacks.rating, feedbacks.review, feedbacks.review_date").
		Joins("JOIN customers ON customers.id = feedbacks.customer_id").
		Joins("JOIN products ON products.id = feedbacks.product_id").
		Where("feedbacks.store_id = ?", storeID).
		Order("feedbacks.review_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
