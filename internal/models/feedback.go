package models

import "time"

// Feedback 顾客评价表
type Feedback struct {
	ID         uint      `gorm:"primarykey" json:"feedback_id"`     // 主键
	StoreID    uint      `gorm:"index;not null" json:"store_id"`    // 店铺ID
	CustomerID uint      `gorm:"index;not null" json:"customer_id"` // 顾客ID
	ProductID  uint      `gorm:"index;not null" json:"product_id"`  // 商品ID
	Rating     int       `gorm:"not null" json:"rating"`            // 评分 1-5
	Review     string    `gorm:"type:text" json:"review"`           // 评价内容
	ReviewDate time.Time `gorm:"index" json:"review_date"`          // 评价时间
	CreatedAt  time.Time `json:"created_at"`                        // 创建时间
}

// TableName 指定表名
func (Feedback) TableName() string {
	return "feedbacks"
}
