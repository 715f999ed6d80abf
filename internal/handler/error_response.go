package handler

import (
	"net/http"

	"anime-gallery-server/internal/service"

	"github.com/gin-gonic/gin"
)

// RenderError 把服务层错误统一渲染为错误页面。
// 非 ServiceError 一律按 500 + 兜底文案处理。
func RenderError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		c.HTML(ServiceErrorStatus(serviceErr.Code), "error.html", gin.H{
			"title":   "错误",
			"message": serviceErr.Message,
		})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title":   "错误",
		"message": fallbackMessage,
	})
}

// ServiceErrorStatus 错误类别到 HTTP 状态码的集中映射
func ServiceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorStatusOf 取服务层错误对应的状态码，用于在原视图上回显错误
func errorStatusOf(err error) int {
	if serviceErr, ok := service.AsServiceError(err); ok {
		return ServiceErrorStatus(serviceErr.Code)
	}
	return http.StatusInternalServerError
}
