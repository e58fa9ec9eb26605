package storeadmin

import (
	"net/http"

	"github.com/storelink/storelink/internal/http/handlers/shared"
	"github.com/storelink/storelink/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListFeedback 店铺评价列表
func (h *Handler) ListFeedback(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}
	rows, err := h.FeedbackService.ListByStore(storeID)
	if err != nil {
		shared.RespondError(c, http.StatusInternalServerError, "feedback could not be loaded", err)
		return
	}
	response.Success(c, gin.H{"feedback": rows})
}
