package models

import "time"

// OrderItem 订单项表（下单时的购物车快照，创建后不可变）
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                 // 主键
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_order_items_order_product" json:"order_id"`   // 订单ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_order_items_order_product" json:"product_id"` // 商品ID
	StoreID   uint      `gorm:"index;not null" json:"store_id"`                                       // 店铺ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                             // 数量
	CreatedAt time.Time `json:"created_at"`                                                           // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
