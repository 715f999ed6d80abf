package handler

import (
	"log"
	"net/http"
	"strings"

	"anime-gallery-server/internal/service"
	"anime-gallery-server/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "登录"})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		c.HTML(errorStatusOf(err), "login.html", gin.H{
			"title": "登录",
			"error": err.Error(),
		})
		return
	}

	if err := session.SetUser(c, session.User{ID: user.ID, Email: user.Email, Username: user.Username}); err != nil {
		log.Printf("Save session error: %v", err)
		RenderError(c, service.NewInternalError("登录失败，请稍后重试"), "登录失败，请稍后重试")
		return
	}

	c.Redirect(http.StatusFound, safeRedirect(c.Query("redirect")))
}

func (h *Handler) Logout(c *gin.Context) {
	if err := session.Destroy(c); err != nil {
		log.Printf("Destroy session error: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "注册"})
}

func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")

	user, err := h.authService.Register(username, email, password, confirmPassword)
	if err != nil {
		c.HTML(errorStatusOf(err), "register.html", gin.H{
			"title": "注册",
			"error": err.Error(),
		})
		return
	}

	// 注册成功即建立会话
	if err := session.SetUser(c, session.User{ID: user.ID, Email: user.Email, Username: user.Username}); err != nil {
		log.Printf("Save session error: %v", err)
		RenderError(c, service.NewInternalError("注册失败，请稍后重试"), "注册失败，请稍后重试")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// safeRedirect 只接受站内相对路径，拒绝开放重定向
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}
