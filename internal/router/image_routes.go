package router

import (
	"anime-gallery-server/internal/handler"
	"anime-gallery-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/", h.Index)

	// 公开浏览
	r.GET("/images", h.Gallery)
	r.GET("/images/:id", h.ImageDetail)

	// 需要登录的操作
	auth := middleware.RequireAuth()
	r.GET("/upload", auth, h.ShowUpload)
	r.POST("/upload", auth, middleware.UploadBodyLimit(), h.UploadImage)
	r.GET("/my-images", auth, h.MyImages)
	r.GET("/images/:id/edit", auth, h.ShowEditImage)
	r.POST("/images/:id/edit", auth, h.EditImage)
	r.POST("/images/:id/delete", auth, h.DeleteImage)
}
