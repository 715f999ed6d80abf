package session

import (
	"encoding/gob"
	"log"
	"net/http"

	"anime-gallery-server/internal/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// User 会话中保存的登录用户信息
type User struct {
	ID       uint
	Email    string
	Username string
}

func init() {
	gob.Register(User{})
}

// Middleware 按配置构建会话中间件。
// 默认使用签名 Cookie 存储，redis.enabled 时改用 Redis 存储。
func Middleware(cfg config.Config) gin.HandlerFunc {
	secret := []byte(cfg.Session.Secret)

	var store sessions.Store
	if cfg.Redis.Enabled {
		redisStore, err := redis.NewStore(10, "tcp", cfg.Redis.Addr, cfg.Redis.Password, secret)
		if err != nil {
			log.Fatalf("❌ Redis 会话存储初始化失败: %v", err)
		}
		store = redisStore
		log.Println("✅ 会话存储: redis")
	} else {
		store = cookie.NewStore(secret)
	}

	maxAgeHours := cfg.Session.MaxAgeHours
	if maxAgeHours <= 0 {
		maxAgeHours = 72
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	cookieName := cfg.Session.CookieName
	if cookieName == "" {
		cookieName = "gallery_session"
	}
	return sessions.Sessions(cookieName, store)
}

// Current 读取当前会话中的登录用户
func Current(c *gin.Context) (User, bool) {
	s := sessions.Default(c)
	val := s.Get(userKey)
	if val == nil {
		return User{}, false
	}
	user, ok := val.(User)
	return user, ok
}

// SetUser 写入登录用户并保存会话
func SetUser(c *gin.Context, user User) error {
	s := sessions.Default(c)
	s.Set(userKey, user)
	return s.Save()
}

// Destroy 无条件销毁当前会话
func Destroy(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}
