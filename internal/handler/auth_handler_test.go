package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

// 测试内容：验证注册成功后重定向到首页并建立可用会话。
func TestRegister_CreatesSession(t *testing.T) {
	r, _, _ := newServer(t)

	w := postForm(r, "/register", "", url.Values{
		"username":        {"alice"},
		"email":           {"a@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"abc12345"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("期望重定向到首页，实际为 %q", loc)
	}

	cookie := sessionCookieOf(w)
	if cookie == "" {
		t.Fatalf("期望设置会话 Cookie")
	}

	// 带会话访问受保护页面应直接放行
	if got := get(r, "/my-images", cookie); got.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", got.Code)
	}
}

// 测试内容：验证两次密码不一致时在注册页回显错误。
func TestRegister_PasswordMismatch(t *testing.T) {
	r, _, _ := newServer(t)

	w := postForm(r, "/register", "", url.Values{
		"username":        {"alice"},
		"email":           {"a@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"other"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "两次输入的密码不一致") {
		t.Fatalf("期望回显密码不一致提示，实际为 %q", w.Body.String())
	}
}

// 测试内容：验证登录成功后按 redirect 参数跳转，失败时回显统一错误。
func TestLogin(t *testing.T) {
	r, _, _ := newServer(t)

	postForm(r, "/register", "", url.Values{
		"username":        {"alice"},
		"email":           {"a@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"abc12345"},
	})

	// 错误密码：401 且不暴露具体原因
	w := postForm(r, "/login", "", url.Values{
		"email":    {"a@example.com"},
		"password": {"wrongpass"},
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "邮箱或密码错误") {
		t.Fatalf("期望统一错误提示，实际为 %q", w.Body.String())
	}
	// 正确密码：跳转到 redirect 指定的站内路径
	w = postForm(r, "/login?redirect=%2Fupload", "", url.Values{
		"email":    {"a@example.com"},
		"password": {"abc12345"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/upload" {
		t.Fatalf("期望重定向到 /upload，实际为 %q", loc)
	}
}

// 测试内容：验证站外 redirect 目标被替换为首页。
func TestLogin_RejectsOpenRedirect(t *testing.T) {
	r, _, _ := newServer(t)

	postForm(r, "/register", "", url.Values{
		"username":        {"alice"},
		"email":           {"a@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"abc12345"},
	})

	w := postForm(r, "/login?redirect=%2F%2Fevil.example.com", "", url.Values{
		"email":    {"a@example.com"},
		"password": {"abc12345"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("期望回退到首页，实际为 %q", loc)
	}
}

// 测试内容：验证退出登录销毁会话，之后访问受保护页面被重定向。
func TestLogout(t *testing.T) {
	r, _, _ := newServer(t)

	w := postForm(r, "/register", "", url.Values{
		"username":        {"alice"},
		"email":           {"a@example.com"},
		"password":        {"abc12345"},
		"confirmPassword": {"abc12345"},
	})
	cookie := sessionCookieOf(w)

	w = get(r, "/logout", cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("期望重定向到首页，实际为 %q", loc)
	}

	// 使用退出后下发的 Cookie 访问受保护页面应被拦截
	cleared := sessionCookieOf(w)
	w = get(r, "/my-images", cleared)
	if w.Code != http.StatusFound {
		t.Fatalf("期望 302，实际为 %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "/login") {
		t.Fatalf("期望重定向到登录页，实际为 %q", w.Header().Get("Location"))
	}
}
