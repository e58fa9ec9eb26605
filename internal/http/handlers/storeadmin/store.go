package storeadmin

import (
	"errors"
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"
	"github.com/storelink/storelink/internal/repository"
	"github.com/storelink/storelink/internal/service"

	"github.com/gin-gonic/gin"
)

// GetStore 店铺资料
func (h *Handler) GetStore(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}
	store, err := h.StoreService.GetProfile(storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			shared.RespondError(c, http.StatusNotFound, "store not found", nil)
			return
		}
		shared.RespondError(c, http.StatusInternalServerError, "store could not be loaded", err)
		return
	}
	response.Success(c, store)
}

// UpdateStoreRequest 店铺资料部分更新请求，未出现的字段保持不变
type UpdateStoreRequest struct {
	Name          *string `json:"name"`
	Tagline       *string `json:"tagline"`
	Description   *string `json:"description"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
	InstagramLink *string `json:"instagram_link"`
	FacebookLink  *string `json:"facebook_link"`
	LandingImage  *string `json:"landing_image"`
	StorePhoto    *string `json:"store_photo"`
}

// UpdateStore 部分更新店铺资料
func (h *Handler) UpdateStore(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}
	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, "request body is invalid", err)
		return
	}

	store, err := h.StoreService.UpdateProfile(storeID, repository.StoreProfileUpdate{
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		Address:       req.Address,
		Email:         req.Email,
		InstagramLink: req.InstagramLink,
		FacebookLink:  req.FacebookLink,
		LandingImage:  req.LandingImage,
		StorePhoto:    req.StorePhoto,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreUpdateEmpty):
			shared.RespondError(c, http.StatusBadRequest, "no fields to update", nil)
		case errors.Is(err, service.ErrStoreNotFound):
			shared.RespondError(c, http.StatusNotFound, "store not found", nil)
		default:
			shared.RespondError(c, http.StatusInternalServerError, "store could not be updated", err)
		}
		return
	}
	response.Success(c, gin.H{
		"message": "store updated",
		"store":   store,
	})
}
