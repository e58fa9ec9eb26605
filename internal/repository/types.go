package repository

import (
	"time"

	"github.com/storelink/storelink/internal/models"
)

// CartItemDetail 购物车项与商品目录联查结果
type CartItemDetail struct {
	ItemID    uint         `json:"item_id"`
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	ImageURL  string       `json:"image_url"`
}

// SaleSource 送达入账所需的订单项联查结果
type SaleSource struct {
	ProductID   uint
	Quantity    int
	UnitPrice   models.Money
	CustomerID  uint
	DateOrdered time.Time
}

// OrderHistoryRow 顾客订单历史的扁平联查行
type OrderHistoryRow struct {
	OrderID     uint
	DateOrdered time.Time
	Status      string
	ProductName string
	Quantity    int
	Price       models.Money
	ImageURL    string
}

// StoreOrderFilter 店铺订单列表过滤条件
type StoreOrderFilter struct {
	StoreID  uint
	Status   string
	Page     int
	PageSize int
}

// StoreOrderRow 店铺订单列表行（含顾客姓名）
type StoreOrderRow struct {
	OrderID      uint         `json:"order_id"`
	DateOrdered  time.Time    `json:"date_ordered"`
	Status       string       `json:"status"`
	TotalAmount  models.Money `json:"total_amount"`
	CustomerID   uint         `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
}

// BestsellerRow 畅销商品行
type BestsellerRow struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	ImageURL  string       `json:"image_url"`
	TotalSold int          `json:"total_sold"`
}

// FeedbackRow 店铺评价列表行（含顾客与商品名称）
type FeedbackRow struct {
	FeedbackID   uint      `json:"feedback_id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Rating       int       `json:"rating"`
	Review       string    `json:"review"`
	ReviewDate   time.Time `json:"review_date"`
}
