package constants

// 购物车状态常量
const (
	CartStatusActive    = "active"
	CartStatusCompleted = "completed"
)

// 订单状态常量（对外使用首字母大写的历史格式）
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses 合法订单状态集合
var OrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// 销售记录类型常量
const (
	SaleTypeOnline  = "online"
	SaleTypeInStore = "in_store"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "sl"
)

// 畅销榜默认条目数
const (
	BestsellerLimitDefault = 5
)
