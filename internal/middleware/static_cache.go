package middleware

import "github.com/gin-gonic/gin"

// StaticCacheMiddleware 为上传的静态资源添加 Cache-Control 头
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=86400")
		c.Next()
	}
}
