package storefront

import "github.com/storelink/storelink/internal/provider"

// Handler 顾客侧接口处理器入口
// 说明：该处理器仅用于购物车、结算、订单状态与目录 API。
type Handler struct {
	*provider.Container
}

// New 创建顾客侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
