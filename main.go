package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anime-gallery-server/internal/config"
	"anime-gallery-server/internal/consts"
	"anime-gallery-server/internal/db"
	"anime-gallery-server/internal/handler"
	"anime-gallery-server/internal/middleware"
	"anime-gallery-server/internal/repository"
	"anime-gallery-server/internal/router"
	"anime-gallery-server/internal/service"
	"anime-gallery-server/internal/session"
	"anime-gallery-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitConfig("")

	gdb, err := db.Open(config.Get().Database)
	if err != nil {
		log.Fatal("❌ ", err)
	}
	log.Printf("✅ 数据库(%s)连接成功，表结构已同步", config.Get().Database.Type)

	uploadPath := config.Get().Upload.Path
	if err := utils.CheckSecurePath(uploadPath); err != nil {
		log.Fatal("❌ ", err)
	}
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("❌ 无法创建上传目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	r.Use(session.Middleware(config.Get()))
	r.LoadHTMLGlob("templates/*.html")

	// 依赖装配：仓储 -> 服务 -> 处理器
	userStore := repository.NewUserRepository(gdb)
	imageStore := repository.NewImageRepository(gdb)
	h := handler.New(
		service.NewAuthService(userStore),
		service.NewImageService(imageStore, config.Get().Upload),
	)
	router.New(h).Init(r)

	// 使用带缓存控制的静态文件服务
	r.Group(config.Get().Upload.URLPrefix, middleware.StaticCacheMiddleware()).
		StaticFS("", gin.Dir(uploadPath, false))

	// 打印启动欢迎语
	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	log.Println("✅ 服务已退出")
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}
