package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckSecurePath 校验静态资源目录不会暴露项目源码。
// 目录不能是项目根目录本身，且位于项目内时必须落在白名单子目录下。
func CheckSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录！这会导致源代码泄露", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 项目目录之外的路径不做白名单限制
		return nil
	}

	// 统一路径分隔符为 / 方便匹配
	relSlash := filepath.ToSlash(rel)

	// 允许的安全目录列表
	// 只有位于这些目录下的路径才被允许作为静态资源目录
	allowedDirs := []string{
		"uploads",
		"public",
		"assets",
		"static",
		"tmp",
	}

	firstComponent := strings.Split(relSlash, "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}

	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)", path, relSlash, allowedDirs)
}
