package repository

import (
	"errors"
	"time"

	"github.com/storelink/storelink/internal/models"

	"gorm.io/gorm"
)

// StoreProfileUpdate 店铺资料部分更新结构。
// 未设置（nil）的字段不会进入 UPDATE 语句。
type StoreProfileUpdate struct {
	Name          *string
	Tagline       *string
	Description   *string
	Address       *string
	Email         *string
	InstagramLink *string
	FacebookLink  *string
	LandingImage  *string
	StorePhoto    *string
}

// Changes 收集已设置字段，空则返回空 map
func (u StoreProfileUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	set := func(column string, value *string) {
		if value != nil {
			changes[column] = *value
		}
	}
	set("name", u.Name)
	set("tagline", u.Tagline)
	set("description", u.Description)
	set("address", u.Address)
	set("email", u.Email)
	set("instagram_link", u.InstagramLink)
	set("facebook_link", u.FacebookLink)
	set("landing_image", u.LandingImage)
	set("store_photo", u.StorePhoto)
	return changes
}

// StoreRepository 店铺数据访问接口
type StoreRepository interface {
	GetByID(id uint) (*models.Store, error)
	UpdateProfile(id uint, update StoreProfileUpdate, now time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormStoreRepository
}

// GormStoreRepository GORM 实现
type GormStoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建店铺仓库
func NewStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// WithTx 绑定事务
func (r *GormStoreRepository) WithTx(tx *gorm.DB) *GormStoreRepository {
	if tx == nil {
		return r
	}
	return &GormStoreRepository{db: tx}
}

// GetByID 按ID查询店铺，不存在返回 nil
func (r *GormStoreRepository) GetByID(id uint) (*models.Store, error) {
	var store models.Store
	err := r.db.First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// UpdateProfile 按已设置字段更新店铺资料，返回受影响行数
func (r *GormStoreRepository) UpdateProfile(id uint, update StoreProfileUpdate, now time.Time) (int64, error) {
	changes := update.Changes()
	if len(changes) == 0 {
		return 0, nil
	}
	changes["updated_at"] = now
	result := r.db.Model(&models.Store{}).Where("id = ?", id).Updates(changes)
	return result.RowsAffected, result.Error
}
