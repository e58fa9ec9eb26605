package models

import "time"

// Store 店铺资料表
type Store struct {
	ID            uint      `gorm:"primarykey" json:"store_id"`           // 主键
	Name          string    `gorm:"not null" json:"store_name"`           // 店铺名称
	Tagline       string    `json:"tagline"`                              // 标语
	Description   string    `gorm:"type:text" json:"description"`         // 店铺介绍
	Address       string    `json:"address"`                              // 地址
	Email         string    `gorm:"index" json:"email"`                   // 联系邮箱
	InstagramLink string    `json:"instagram_link"`                       // Instagram 链接
	FacebookLink  string    `json:"facebook_link"`                        // Facebook 链接
	LandingImage  string    `json:"landing_image"`                        // 首页大图
	StorePhoto    string    `json:"store_photo"`                          // 店铺照片
	CreatedAt     time.Time `json:"created_at"`                           // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                           // 更新时间
}

// TableName 指定表名
func (Store) TableName() string {
	return "stores"
}
