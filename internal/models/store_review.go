package models

import "time"

// StoreReview 店铺评价表
// 冗余顾客姓名，店铺详情页直接展示，无需回表联查。
type StoreReview struct {
	ID           uint      `gorm:"primarykey" json:"review_id"`    // 主键
	StoreID      uint      `gorm:"index;not null" json:"store_id"` // 店铺ID
	CustomerName string    `gorm:"not null" json:"customer_name"`  // 顾客姓名（冗余）
	Rating       int       `gorm:"not null" json:"rating"`         // 评分 1-5
	ReviewText   string    `gorm:"type:text" json:"review_text"`   // 评价内容
	CreatedAt    time.Time `gorm:"index" json:"created_at"`        // 创建时间
}

// TableName 指定表名
func (StoreReview) TableName() string {
	return "store_reviews"
}
