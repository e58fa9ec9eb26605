package storefront

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StoreProducts 店铺商品列表
func (h *Handler) StoreProducts(c *gin.Context) {
	storeID, ok := shared.ParamUint(c, "storeId")
	if !ok {
		return
	}
	products, err := h.CatalogService.ListProducts(c.Request.Context(), storeID)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, http.StatusInternalServerError, "products could not be loaded")
		return
	}
	response.Success(c, gin.H{"products": products})
}

// StoreBestsellers 店铺畅销商品
func (h *Handler) StoreBestsellers(c *gin.Context) {
	storeID, ok := shared.ParamUint(c, "storeId")
	if !ok {
		return
	}
	rows, err := h.CatalogService.ListBestsellers(c.Request.Context(), storeID)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, http.StatusInternalServerError, "bestsellers could not be loaded")
		return
	}
	response.Success(c, gin.H{"bestsellers": rows})
}
