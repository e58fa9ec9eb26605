package storeadmin

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCustomers 店铺顾客列表
func (h *Handler) ListCustomers(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}
	customers, err := h.StoreService.ListCustomers(storeID)
	if err != nil {
		shared.RespondError(c, http.StatusInternalServerError, "customers could not be loaded", err)
		return
	}
	response.Success(c, gin.H{"customers": customers})
}
