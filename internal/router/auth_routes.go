package router

import (
	"anime-gallery-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
}
