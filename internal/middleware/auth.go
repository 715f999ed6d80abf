package middleware

import (
	"net/http"
	"net/url"

	"anime-gallery-server/internal/session"

	"github.com/gin-gonic/gin"
)

// gin 上下文中存放已认证用户身份的键
const (
	ContextUserID   = "id"
	ContextUsername = "username"
)

// RequireAuth 会话守卫：会话中没有登录用户时重定向到登录页，
// 通过后把用户身份写入 gin 上下文供处理器使用。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := session.Current(c)
		if !ok {
			target := "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Next()
	}
}
