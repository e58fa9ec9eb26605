package models

import "time"

// Cart 购物车表
// 约束：一个 (store_id, customer_id) 组合至多存在一条记录，结算后原地复用。
type Cart struct {
	ID         uint      `gorm:"primarykey" json:"cart_id"`                                         // 主键
	StoreID    uint      `gorm:"not null;uniqueIndex:idx_carts_store_customer" json:"store_id"`     // 店铺ID
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_carts_store_customer" json:"customer_id"`  // 顾客ID
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`          // active / completed
	CreatedAt  time.Time `json:"created_at"`                                                        // 创建时间
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`                                           // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
