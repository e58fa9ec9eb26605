package storeadmin

import (
	"net/http"
	"strconv"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"
	"github.com/storelink/storelink/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 店铺订单列表，支持 status 过滤与分页
func (h *Handler) ListOrders(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	rows, total, err := h.StoreService.ListOrders(repository.StoreOrderFilter{
		StoreID:  storeID,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		shared.RespondError(c, http.StatusInternalServerError, "orders could not be loaded", err)
		return
	}

	totalPage := total / int64(pageSize)
	if total%int64(pageSize) > 0 {
		totalPage++
	}
	response.SuccessWithPage(c, rows, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}
