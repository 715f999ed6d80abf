package config

import (
	"os"
	"testing"
)

// 测试内容：验证初始化配置会设置默认值并写入可用的配置目录。
func TestInitConfig_SetsDefaults(t *testing.T) {
	dir := t.TempDir()

	// 确保不在 release 模式（release 模式下不安全的 secret 可能导致 fatal）。
	t.Setenv("ANIME_GALLERY_SERVER_MODE", "debug")
	t.Setenv("ANIME_GALLERY_SESSION_SECRET", "")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port == "" {
		t.Fatalf("期望 server.port 有默认值")
	}
	if cfg.Session.Secret == "" {
		t.Fatalf("期望非 release 模式下 session secret 被设置")
	}
	if cfg.Upload.Path != "uploads" {
		t.Fatalf("期望默认上传目录 uploads，实际为 %q", cfg.Upload.Path)
	}
	if cfg.Upload.URLPrefix != "/uploads/" {
		t.Fatalf("期望默认 URL 前缀 /uploads/，实际为 %q", cfg.Upload.URLPrefix)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}

	// 写入一个配置文件名以确保目录可写（测试的基本健全性检查）。
	if err := os.WriteFile(dir+string(os.PathSeparator)+"_test_write", []byte("ok"), 0644); err != nil {
		t.Fatalf("期望临时配置目录可写: %v", err)
	}
}

// 测试内容：验证环境变量可以覆盖配置项。
func TestInitConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("ANIME_GALLERY_SERVER_MODE", "debug")
	t.Setenv("ANIME_GALLERY_SERVER_PORT", "9999")
	t.Setenv("ANIME_GALLERY_SESSION_COOKIE_NAME", "custom_session")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port != "9999" {
		t.Fatalf("期望端口 9999，实际为 %q", cfg.Server.Port)
	}
	if cfg.Session.CookieName != "custom_session" {
		t.Fatalf("期望 cookie 名 custom_session，实际为 %q", cfg.Session.CookieName)
	}
}
