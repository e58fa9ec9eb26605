package storefront

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"
	"github.com/storelink/storelink/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCartRequest 获取或创建购物车请求
type CreateCartRequest struct {
	StoreID    uint `json:"store_id" binding:"required"`
	CustomerID uint `json:"customer_id" binding:"required"`
}

// CreateCart 获取或创建购物车。新建返回 201，复用已有购物车返回 200。
func (h *Handler) CreateCart(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "store_id and customer_id are required", err)
		return
	}

	cart, created, err := h.CartService.GetOrCreateCart(service.GetOrCreateCartInput{
		StoreID:    req.StoreID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart could not be created")
		return
	}

	body := gin.H{
		"message": "cart ready",
		"cart_id": cart.ID,
	}
	if created {
		body["message"] = "cart created"
		response.Created(c, body)
		return
	}
	response.Success(c, body)
}

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	CartID    uint `json:"cart_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddCartItem 加购。新增购物车项返回 201，同商品累加数量返回 200。
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "cart_id, product_id and quantity are required", err)
		return
	}

	created, err := h.CartService.AddItem(service.AddCartItemInput{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart item could not be saved")
		return
	}

	if created {
		response.Created(c, gin.H{"message": "item added to cart"})
		return
	}
	response.Success(c, gin.H{"message": "item quantity updated"})
}

// ListCartItems 列出活跃购物车的条目
func (h *Handler) ListCartItems(c *gin.Context) {
	storeID, ok := shared.ParamUint(c, "storeId")
	if !ok {
		return
	}
	customerID, ok := shared.ParamUint(c, "customerId")
	if !ok {
		return
	}

	items, err := h.CartService.ListItems(storeID, customerID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart items could not be loaded")
		return
	}
	response.Success(c, items)
}

// UpdateCartItemRequest 修改购物车项数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartItem 覆盖购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := shared.ParamUint(c, "item_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "quantity is required", err)
		return
	}

	if err := h.CartService.UpdateQuantity(itemID, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart item could not be updated")
		return
	}
	response.Success(c, gin.H{"message": "quantity updated"})
}

// DeleteCartItem 删除购物车项（幂等）
func (h *Handler) DeleteCartItem(c *gin.Context) {
	itemID, ok := shared.ParamUint(c, "item_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(itemID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart item could not be removed")
		return
	}
	response.Success(c, gin.H{"message": "item removed"})
}
