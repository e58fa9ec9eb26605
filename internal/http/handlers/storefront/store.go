package storefront

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"
	"github.com/storelink/storelink/internal/service"

	"github.com/gin-gonic/gin"
)

// StoreDetail 店铺详情：资料与顾客评价一并返回
func (h *Handler) StoreDetail(c *gin.Context) {
	storeID, ok := shared.ParamUint(c, "storeId")
	if !ok {
		return
	}
	store, reviews, err := h.ReviewService.StoreDetail(storeID)
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, http.StatusInternalServerError, "store could not be loaded")
		return
	}
	response.Success(c, gin.H{
		"store":   store,
		"reviews": reviews,
	})
}

// SubmitReviewRequest 提交店铺评价请求
type SubmitReviewRequest struct {
	StoreID    uint   `json:"store_id" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text" binding:"required"`
}

// SubmitReview 顾客提交店铺评价
func (h *Handler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "store_id, customer_id, rating and review_text are required", err)
		return
	}

	review, err := h.ReviewService.SubmitReview(service.SubmitReviewInput{
		StoreID:    req.StoreID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, http.StatusInternalServerError, "review could not be submitted")
		return
	}

	response.Created(c, gin.H{
		"message":   "review submitted",
		"review_id": review.ID,
	})
}
