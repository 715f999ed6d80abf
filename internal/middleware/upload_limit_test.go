package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anime-gallery-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func newLimitedEngine(t *testing.T) *gin.Engine {
	t.Helper()

	r := testutils.NewTestEngine(t)
	r.POST("/upload", UploadBodyLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

// 测试内容：验证声明长度超过 5MB 的请求被直接拒绝。
func TestUploadBodyLimit_RejectsOversize(t *testing.T) {
	r := newLimitedEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("x"))
	req.ContentLength = 6 << 20

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "5MB") {
		t.Fatalf("期望超限提示，实际为 %q", w.Body.String())
	}
}

// 测试内容：验证限制内的请求正常通过。
func TestUploadBodyLimit_PassesSmallBody(t *testing.T) {
	r := newLimitedEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small body"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}
