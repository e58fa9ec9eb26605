package service

import "errors"

// 购物车错误
var (
	ErrCartInvalid      = errors.New("cart input invalid")
	ErrCartFetchFailed  = errors.New("cart fetch failed")
	ErrCartSaveFailed   = errors.New("cart save failed")
	ErrCartItemInvalid  = errors.New("cart item invalid")
	ErrQuantityInvalid  = errors.New("quantity must be at least 1")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrNoActiveCart     = errors.New("no active cart found")
)

// 订单与结算错误
var (
	ErrOrderItemInvalid     = errors.New("order item invalid")
	ErrOrderStatusInvalid   = errors.New("order status invalid")
	ErrOrderTotalMismatch   = errors.New("order total mismatch")
	ErrOrderCreateFailed    = errors.New("order create failed")
	ErrOrderFetchFailed     = errors.New("order fetch failed")
	ErrOrderUpdateFailed    = errors.New("order update failed")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotOwnedByStore = errors.New("order not owned by store")
	ErrOrderEmpty           = errors.New("order has no items")
	ErrSalesRecordFailed    = errors.New("sales record failed")
)

// 商品与店铺错误
var (
	ErrProductNotAvailable = errors.New("product not available")
	ErrProductFetchFailed  = errors.New("product fetch failed")
	ErrStoreNotFound       = errors.New("store not found")
	ErrStoreFetchFailed    = errors.New("store fetch failed")
	ErrStoreUpdateEmpty    = errors.New("store update has no fields")
	ErrStoreUpdateFailed   = errors.New("store update failed")
	ErrCustomerFetchFailed = errors.New("customer fetch failed")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrFeedbackFetchFailed = errors.New("feedback fetch failed")
)

// 店铺评价错误
var (
	ErrReviewInvalid     = errors.New("review input invalid")
	ErrReviewSaveFailed  = errors.New("review save failed")
	ErrReviewFetchFailed = errors.New("review fetch failed")
)

// 认证错误
var (
	ErrTokenInvalid = errors.New("token invalid")
)
