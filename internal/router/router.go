package router

import (
	"anime-gallery-server/internal/handler"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func New(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	registerAuthRoutes(r, rt.handler)
	registerImageRoutes(r, rt.handler)
}
