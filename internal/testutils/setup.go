package testutils

import (
	"fmt"
	"html/template"
	"sync/atomic"
	"testing"

	"anime-gallery-server/internal/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const (
	// TestSessionSecret 测试用会话密钥，所有测试引擎共用以便互认 Cookie
	TestSessionSecret = "test_session_secret"
	TestSessionName   = "gallery_session"
)

var testDBSeq int64

// SetupDB 为每个测试创建独立的内存 SQLite 数据库并完成迁移。
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:agt_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(&model.User{}, &model.Image{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return gdb
}

// 处理器测试使用的占位模板，与 templates/ 下的视图同名
const stubTemplates = `
{{define "index.html"}}index{{end}}
{{define "login.html"}}login {{.error}}{{end}}
{{define "register.html"}}register {{.error}}{{end}}
{{define "upload.html"}}upload {{.error}}{{.success}}{{end}}
{{define "imagelist.html"}}imagelist {{.error}} count={{len .images}}{{end}}
{{define "my-image-list.html"}}my-images count={{len .images}}{{end}}
{{define "imagedetail.html"}}detail {{.image.Title}}{{end}}
{{define "edit-image.html"}}edit {{.image.Title}}{{end}}
{{define "error.html"}}error {{.message}}{{end}}
`

// NewTestEngine 构建带会话中间件与占位模板的测试引擎
func NewTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	store := cookie.NewStore([]byte(TestSessionSecret))
	r.Use(sessions.Sessions(TestSessionName, store))
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(stubTemplates)))

	return r
}
