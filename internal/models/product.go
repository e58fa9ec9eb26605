package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"product_id"`                        // 主键
	StoreID     uint      `gorm:"index;not null" json:"store_id"`                      // 店铺ID
	Name        string    `gorm:"not null" json:"name"`                                // 商品名称
	Category    string    `gorm:"index" json:"category"`                               // 分类
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`  // 单价
	ImageURL    string    `json:"image_url"`                                           // 商品图片
	Description string    `gorm:"type:text" json:"description"`                        // 商品描述
	CreatedAt   time.Time `json:"created_at"`                                          // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
