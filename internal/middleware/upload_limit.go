package middleware

import (
	"fmt"
	"net/http"

	"anime-gallery-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// UploadBodyLimit 限制上传接口的请求体大小。
// 超限请求在进入处理器之前就被拒绝。
func UploadBodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(consts.MaxUploadSizeBytes)

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.HTML(http.StatusRequestEntityTooLarge, "error.html", gin.H{
				"title":   "错误",
				"message": fmt.Sprintf("文件大小不能超过 %dMB", maxBytes/1024/1024),
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
