package handler_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"planner-go/internal/config"
	"planner-go/internal/models"
	"planner-go/internal/router"
	"planner-go/internal/session"
	"planner-go/internal/utils"
	"planner-go/pkg/sessionstore"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidations(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// setupApp 组装完整路由：内存数据库 + 进程内会话存储
func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := models.RunMigrations(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.TemplatesGlob = "../../web/templates/*.html"
	cfg.Planner.Year = 2026
	cfg.Session.CookieName = "planner_session"

	store := sessionstore.NewMemoryStore(time.Minute)
	jwtManager := utils.NewJWTManager("test-secret", time.Minute)
	sessionManager := session.NewManager(store, jwtManager, cfg.Session.CookieName, time.Minute)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return router.SetupRouter(cfg, sessionManager, log, db), db
}

// postForm 提交表单，可附带会话Cookie和Referer
func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie, referer string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser 注册并返回会话Cookie
func registerUser(t *testing.T, r *gin.Engine, username string) []*http.Cookie {
	t.Helper()

	w := postForm(r, "/register", url.Values{
		"username": {username},
		"password": {"password123"},
	}, nil, "")

	if w.Code != http.StatusFound {
		t.Fatalf("注册期望302, 实际 %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/" {
		t.Fatalf("注册后期望跳转 /, 实际 %s", location)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("注册后应建立会话")
	}
	return cookies
}

func TestAnonymousRedirectedToLogin(t *testing.T) {
	r, _ := setupApp(t)

	for _, path := range []string{"/", "/month/0", "/month/0/week/1"} {
		w := get(r, path, nil)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s 未认证期望302到/login, 实际 %d %s", path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	r, _ := setupApp(t)

	cookies := registerUser(t, r, "flow_user")

	// 注册后的会话可以访问首页
	w := get(r, "/", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("首页期望200, 实际 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "يناير") {
		t.Error("首页应包含月份名")
	}

	// 重复注册同一用户名回到注册页并带错误
	w = postForm(r, "/register", url.Values{
		"username": {"flow_user"},
		"password": {"other"},
	}, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("重复注册期望重新渲染, 实际 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "الاسم موجود فعلاً") {
		t.Error("重复注册应显示用户名已存在")
	}

	// 登出后会话失效
	w = get(r, "/logout", cookies)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("登出期望302到/login, 实际 %d", w.Code)
	}
	w = get(r, "/", cookies)
	if w.Code != http.StatusFound {
		t.Error("登出后的会话不应再通过认证")
	}

	// 凭据错误回到登录页
	w = postForm(r, "/login", url.Values{
		"username": {"flow_user"},
		"password": {"wrong"},
	}, nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "بيانات غلط") {
		t.Error("凭据错误应重新渲染登录页并带错误")
	}

	// 正确凭据重新登录
	w = postForm(r, "/login", url.Values{
		"username": {"flow_user"},
		"password": {"password123"},
	}, nil, "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("登录期望302到/, 实际 %d", w.Code)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	r, db := setupApp(t)
	cookies := registerUser(t, r, "task_user")
	weekPage := "/month/0/week/1"

	// 添加任务后跳回来源页
	w := postForm(r, "/add", url.Values{
		"text":        {"مذاكرة"},
		"day":         {"الأحد"},
		"month":       {"0"},
		"weekInMonth": {"1"},
	}, cookies, weekPage)
	if w.Code != http.StatusFound || w.Header().Get("Location") != weekPage {
		t.Fatalf("添加任务期望302回来源页, 实际 %d %s", w.Code, w.Header().Get("Location"))
	}

	// 周视图显示任务和7天日期
	w = get(r, weekPage, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("周视图期望200, 实际 %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "مذاكرة") {
		t.Error("周视图应显示刚添加的任务")
	}
	if !strings.Contains(body, "1/1") || !strings.Contains(body, "7/1") {
		t.Error("一月第一周应显示1/1到7/1")
	}

	// 翻转完成状态
	var task models.Task
	if err := db.First(&task).Error; err != nil {
		t.Fatalf("读取任务失败: %v", err)
	}
	w = postForm(r, fmt.Sprintf("/toggle/%d", task.ID), nil, cookies, weekPage)
	if w.Code != http.StatusFound {
		t.Fatalf("翻转期望302, 实际 %d", w.Code)
	}
	if err := db.First(&task, task.ID).Error; err != nil {
		t.Fatalf("读取任务失败: %v", err)
	}
	if !task.Completed {
		t.Error("翻转后任务应为已完成")
	}

	// 月视图显示该周进度100%
	w = get(r, "/month/0", cookies)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "100%") {
		t.Error("月视图应显示第一周进度100%")
	}
}

func TestSaveNoteOverHTTP(t *testing.T) {
	r, db := setupApp(t)
	cookies := registerUser(t, r, "note_user")

	form := url.Values{
		"content":  {"ملاحظة الأسبوع"},
		"category": {"week"},
		"monthId":  {"2"},
		"weekId":   {"4"},
	}

	// 重复保存同一范围只保留一行
	for i := 0; i < 2; i++ {
		w := postForm(r, "/save-note", form, cookies, "/month/2/week/4")
		if w.Code != http.StatusFound {
			t.Fatalf("保存笔记期望302, 实际 %d", w.Code)
		}
	}

	var count int64
	if err := db.Model(&models.Note{}).Count(&count).Error; err != nil {
		t.Fatalf("统计笔记失败: %v", err)
	}
	if count != 1 {
		t.Errorf("重复保存应只有一行, 实际 %d", count)
	}

	w := get(r, "/month/2/week/4", cookies)
	if !strings.Contains(w.Body.String(), "ملاحظة الأسبوع") {
		t.Error("周视图应显示保存的笔记")
	}

	// 非法类别静默跳回
	w = postForm(r, "/save-note", url.Values{
		"content":  {"x"},
		"category": {"bogus"},
	}, cookies, "/")
	if w.Code != http.StatusFound {
		t.Errorf("非法类别期望302, 实际 %d", w.Code)
	}
}

func TestInvalidPathParamsRedirectHome(t *testing.T) {
	r, _ := setupApp(t)
	cookies := registerUser(t, r, "bounds_user")

	for _, path := range []string{"/month/12", "/month/abc", "/month/0/week/0", "/month/0/week/6"} {
		w := get(r, path, cookies)
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
			t.Errorf("%s 期望302到/, 实际 %d %s", path, w.Code, w.Header().Get("Location"))
		}
	}
}
