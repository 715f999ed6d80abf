package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"anime-gallery-server/internal/config"
	"anime-gallery-server/internal/handler"
	"anime-gallery-server/internal/model"
	"anime-gallery-server/internal/repository"
	"anime-gallery-server/internal/router"
	"anime-gallery-server/internal/service"
	"anime-gallery-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// newServer 组装完整的测试服务：数据库、服务层、处理器与全部路由
func newServer(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()

	gdb := testutils.SetupDB(t)
	dir := t.TempDir()

	authService := service.NewAuthService(repository.NewUserRepository(gdb))
	imageService := service.NewImageService(repository.NewImageRepository(gdb), config.UploadConfig{
		Path:      dir,
		URLPrefix: "/uploads/",
	})

	r := testutils.NewTestEngine(t)
	router.New(handler.New(authService, imageService)).Init(r)

	return r, gdb, dir
}

func get(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path, cookie string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookieOf 从响应中提取会话 Cookie，未设置时返回空串
func sessionCookieOf(w *httptest.ResponseRecorder) string {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == testutils.TestSessionName {
			return ck.String()
		}
	}
	return ""
}

func seedImage(t *testing.T, gdb *gorm.DB, userID uint, username, title, tags string) *model.Image {
	t.Helper()

	img := model.Image{
		Title:       title,
		Tags:        tags,
		Orientation: model.OrientationSquare,
		Filename:    title + ".png",
		URL:         "/uploads/" + title + ".png",
		UserID:      userID,
		Username:    username,
	}
	if err := gdb.Create(&img).Error; err != nil {
		t.Fatalf("写入图片失败: %v", err)
	}
	return &img
}
