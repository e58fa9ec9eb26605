package storefront

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"
	"github.com/storelink/storelink/internal/models"
	"github.com/storelink/storelink/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutItemRequest 结算订单项
type CheckoutItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CheckoutRequest 结算请求。total_amount 可省略，给定时按目录重算结果校验。
type CheckoutRequest struct {
	CustomerID  uint                  `json:"customer_id" binding:"required"`
	StoreID     uint                  `json:"store_id" binding:"required"`
	Status      string                `json:"status"`
	TotalAmount *models.Money         `json:"total_amount"`
	Items       []CheckoutItemRequest `json:"items" binding:"required"`
}

// Checkout 购物车结算为订单
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "customer_id, store_id and items are required", err)
		return
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.CheckoutService.Checkout(service.CheckoutInput{
		CustomerID:  req.CustomerID,
		StoreID:     req.StoreID,
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		Items:       items,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, http.StatusInternalServerError, "order could not be created")
		return
	}

	response.Created(c, gin.H{
		"message":      "order created",
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
	})
}
