package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"anime-gallery-server/internal/session"
	"anime-gallery-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证会话写入后能读回同一用户，销毁后读取失败。
func TestSessionRoundtrip(t *testing.T) {
	r := testutils.NewTestEngine(t)

	r.GET("/whoami", func(c *gin.Context) {
		user, ok := session.Current(c)
		if !ok {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.String(http.StatusOK, user.Username)
	})
	r.GET("/logout", func(c *gin.Context) {
		if err := session.Destroy(c); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	// 未登录
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	// 登录后读回
	cookie := testutils.SessionCookie(t, session.User{ID: 3, Email: "a@example.com", Username: "alice"})
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "alice" {
		t.Fatalf("期望读回用户 alice，实际为 %d %q", w.Code, w.Body.String())
	}

	// 销毁会话
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Cookie", cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	cleared := ""
	for _, ck := range w.Result().Cookies() {
		if ck.Name == testutils.TestSessionName {
			cleared = ck.String()
		}
	}
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if cleared != "" {
		req.Header.Set("Cookie", cleared)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望销毁后 401，实际为 %d", w.Code)
	}
}
