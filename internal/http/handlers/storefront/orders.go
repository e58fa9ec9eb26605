package storefront

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	StoreID uint   `json:"storeId"`
}

// UpdateOrderStatus 更新订单状态。
// 携带店主令牌时以令牌中的 store_id 为准，否则使用请求体中的 storeId。
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := shared.ParamUint(c, "orderId")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "status is required", err)
		return
	}

	storeID := req.StoreID
	if value, exists := c.Get("store_id"); exists {
		if claimed, ok := value.(uint); ok && claimed != 0 {
			storeID = claimed
		}
	}
	if storeID == 0 {
		shared.RespondError(c, http.StatusForbidden, "store identity is required", nil)
		return
	}

	if err := h.FulfillmentService.SetStatus(c.Request.Context(), orderID, req.Status, storeID); err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, http.StatusInternalServerError, "order status could not be updated")
		return
	}
	response.Success(c, gin.H{"message": "order status updated"})
}

// CustomerOrderHistory 顾客在某店铺的订单历史
func (h *Handler) CustomerOrderHistory(c *gin.Context) {
	customerID, ok := shared.ParamUint(c, "customerId")
	if !ok {
		return
	}
	storeID, ok := shared.ParamUint(c, "storeId")
	if !ok {
		return
	}

	orders, err := h.HistoryService.ListCustomerOrders(customerID, storeID)
	if err != nil {
		respondWithMappedError(c, err, orderStatusErrorRules, http.StatusInternalServerError, "order history could not be loaded")
		return
	}
	response.Success(c, orders)
}
