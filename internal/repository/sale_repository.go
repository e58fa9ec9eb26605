package repository

import (
	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// SaleRepository 销售流水数据访问接口
type SaleRepository interface {
	CreateBatch(records []models.SaleRecord) error
	CountByOrder(orderID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormSaleRepository
}

// GormSaleRepository GORM 实现
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售流水仓库
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSaleRepository) WithTx(tx *gorm.DB) *GormSaleRepository {
	if tx == nil {
		return r
	}
	return &GormSaleRepository{db: tx}
}

// CreateBatch 批量写入销售流水
func (r *GormSaleRepository) CreateBatch(records []models.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

// CountByOrder 统计订单已入账的销售流水数
func (r *GormSaleRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SaleRecord{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
