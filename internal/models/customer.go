package models

import "time"

// Customer 顾客表（归属于单个店铺）
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"customer_id"`                                   // 主键
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_customers_store_email" json:"store_id"`  // 店铺ID
	Name      string    `gorm:"not null" json:"customer_name"`                                   // 姓名
	Email     string    `gorm:"not null;uniqueIndex:idx_customers_store_email" json:"email"`     // 邮箱（店铺内唯一）
	CreatedAt time.Time `json:"created_at"`                                                      // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                      // 更新时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
