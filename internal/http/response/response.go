package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// Success 200 响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"pagination": pagination,
	})
}

// Error 错误响应，body 统一为 {"error": ...}
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, attachRequestID(c, gin.H{"error": msg}))
}

func attachRequestID(c *gin.Context, body gin.H) gin.H {
	if c == nil {
		return body
	}
	value, ok := c.Get("request_id")
	if !ok {
		return body
	}
	requestID, ok := value.(string)
	if !ok || requestID == "" {
		return body
	}
	if _, exists := body["request_id"]; !exists {
		body["request_id"] = requestID
	}
	return body
}
