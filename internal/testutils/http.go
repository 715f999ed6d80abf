package testutils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"anime-gallery-server/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// PNGBytes 生成指定尺寸的 PNG 图片数据
func PNGBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// MultipartBody 构造 multipart 请求体：一个文件字段加若干文本字段。
// 返回请求体与对应的 Content-Type。
func MultipartBody(t *testing.T, fileField, filename, contentType string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if fileField != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

// FileHeader 把字节内容包装成 *multipart.FileHeader，供服务层测试直接调用
func FileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, bodyType := MultipartBody(t, "image", filename, contentType, content, nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", bodyType)

	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	files := req.MultipartForm.File["image"]
	if len(files) != 1 {
		t.Fatalf("期望 1 个文件，实际为 %d", len(files))
	}
	return files[0]
}

// SessionCookie 签发一个已登录用户的会话 Cookie。
// Cookie 存储是无状态的，任何使用相同密钥与名称的引擎都能识别它。
func SessionCookie(t *testing.T, user session.User) string {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(TestSessionName, cookie.NewStore([]byte(TestSessionSecret))))
	r.GET("/", func(c *gin.Context) {
		if err := session.SetUser(c, user); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("签发会话失败: %d", w.Code)
	}

	cookies := w.Result().Cookies()
	for _, ck := range cookies {
		if ck.Name == TestSessionName {
			return ck.String()
		}
	}
	t.Fatalf("未找到会话 Cookie")
	return ""
}
