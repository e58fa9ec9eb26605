package storefront

import (
	"errors"
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMessage string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			shared.RespondError(c, rule.status, rule.message, nil)
			return
		}
	}
	shared.RespondError(c, fallbackStatus, fallbackMessage, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartInvalid, status: http.StatusBadRequest, message: "store_id and customer_id are required"},
	{target: service.ErrCartItemInvalid, status: http.StatusBadRequest, message: "cart_id and product_id are required"},
	{target: service.ErrQuantityInvalid, status: http.StatusBadRequest, message: "quantity must be at least 1"},
	{target: service.ErrProductNotAvailable, status: http.StatusBadRequest, message: "product not available"},
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound, message: "cart item not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrOrderItemInvalid, status: http.StatusBadRequest, message: "order items are invalid"},
	{target: service.ErrOrderStatusInvalid, status: http.StatusBadRequest, message: "order status is invalid"},
	{target: service.ErrOrderTotalMismatch, status: http.StatusBadRequest, message: "total amount does not match cart contents"},
	{target: service.ErrProductNotAvailable, status: http.StatusBadRequest, message: "product not available"},
	{target: service.ErrNoActiveCart, status: http.StatusNotFound, message: "no active cart found"},
}

var orderStatusErrorRules = []mappedHandlerError{
	{target: service.ErrOrderStatusInvalid, status: http.StatusBadRequest, message: "order status is invalid"},
	{target: service.ErrOrderItemInvalid, status: http.StatusBadRequest, message: "order_id and store_id are required"},
	{target: service.ErrOrderNotOwnedByStore, status: http.StatusForbidden, message: "order does not belong to this store"},
	{target: service.ErrOrderNotFound, status: http.StatusForbidden, message: "order does not belong to this store"},
	{target: service.ErrOrderEmpty, status: http.StatusConflict, message: "order has no items to record"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrStoreNotFound, status: http.StatusNotFound, message: "store not found"},
}

var reviewErrorRules = []mappedHandlerError{
	{target: service.ErrReviewInvalid, status: http.StatusBadRequest, message: "rating must be 1-5 and review_text must not be empty"},
	{target: service.ErrCustomerNotFound, status: http.StatusNotFound, message: "customer not found"},
	{target: service.ErrStoreNotFound, status: http.StatusNotFound, message: "store not found"},
}
