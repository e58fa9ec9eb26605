package models

import "time"

// SaleRecord 销售流水表（追加写入的审计数据，永不更新）
// 唯一索引 (order_id, product_id) 兜底保证同一订单项只入账一次。
type SaleRecord struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                                  // 主键
	OrderID         uint      `gorm:"not null;uniqueIndex:idx_sale_records_order_product" json:"order_id"`   // 来源订单ID
	ProductID       uint      `gorm:"not null;uniqueIndex:idx_sale_records_order_product" json:"product_id"` // 商品ID
	SaleDate        time.Time `gorm:"index;not null" json:"sale_date"`                                       // 销售日期（取下单时间）
	SaleType        string    `gorm:"type:varchar(20);not null;default:'online'" json:"sale_type"`           // 销售渠道
	QuantitySold    int       `gorm:"not null" json:"quantity_sold"`                                         // 售出数量
	UnitPriceAtSale Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price_at_sale"`       // 成交单价
	TotalSaleAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_sale_amount"`        // 成交总额
	StoreID         uint      `gorm:"index;not null" json:"store_id"`                                        // 店铺ID
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`                                     // 顾客ID
	CreatedAt       time.Time `json:"created_at"`                                                            // 创建时间
}

// TableName 指定表名
func (SaleRecord) TableName() string {
	return "sale_records"
}
