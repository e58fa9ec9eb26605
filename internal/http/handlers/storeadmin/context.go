package storeadmin

import (
	"net/http"
	"strconv"

	"github.com/storelink/storelink/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// resolveStoreID 解析店铺身份。
// 携带店主令牌时以上下文中的 store_id 为准，否则回退到 store_id 查询参数。
func resolveStoreID(c *gin.Context) (uint, bool) {
	if _, exists := c.Get("store_id"); exists {
		return shared.GetContextUint(c, "store_id")
	}
	raw := c.Query("store_id")
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		shared.RespondError(c, http.StatusForbidden, "store identity is required", nil)
		return 0, false
	}
	return uint(value), true
}
