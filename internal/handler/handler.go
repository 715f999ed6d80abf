package handler

import "anime-gallery-server/internal/service"

type Handler struct {
	authService  *service.AuthService
	imageService *service.ImageService
}

func New(authService *service.AuthService, imageService *service.ImageService) *Handler {
	return &Handler{
		authService:  authService,
		imageService: imageService,
	}
}
