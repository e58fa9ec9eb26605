package models

import "time"

// Order 订单表
// 创建后除 status 与销售入账标记外不可变。
type Order struct {
	ID              uint       `gorm:"primarykey" json:"order_id"`                                 // 主键
	CustomerID      uint       `gorm:"index;not null" json:"customer_id"`                          // 顾客ID
	Status          string     `gorm:"index;not null" json:"status"`                               // 订单状态
	TotalAmount     Money      `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 订单金额
	DateOrdered     time.Time  `gorm:"index;not null" json:"date_ordered"`                         // 下单时间
	SalesRecordedAt *time.Time `gorm:"index" json:"sales_recorded_at,omitempty"`                   // 销售入账时间（送达幂等标记）
	CreatedAt       time.Time  `json:"created_at"`                                                 // 创建时间
	UpdatedAt       time.Time  `json:"updated_at"`                                                 // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
