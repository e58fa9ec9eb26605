package storeadmin

import "github.com/storelink/storelink/internal/provider"

// Handler 店主侧接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建店主侧处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
